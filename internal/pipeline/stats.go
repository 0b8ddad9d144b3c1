package pipeline

// RunStats tracks aggregate counters and output byte totals across a run.
type RunStats struct {
	Total        int
	Current      int
	Extracted    int
	Skipped      int
	Failed       int
	BytesWritten int64
}
