// Package pipeline orchestrates file discovery, per-file extraction, and
// run summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/display"
	"github.com/stillcut/stillcut/internal/extract"
	"github.com/stillcut/stillcut/internal/logging"
)

// Run is the top-level entry point. It dispatches on the input path: a
// regular file gets a single extraction, a directory gets every matching
// video inside it, processed sequentially with per-file failure isolation.
// Returns aggregate stats; the caller maps Failed > 0 to the exit code.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	ex, err := extract.New(cfg, log)
	if err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutputDir, err)
		stats.Failed++
		return stats
	}

	fi, err := os.Stat(cfg.Input)
	if err != nil {
		log.Error("Path not found: %s", cfg.Input)
		stats.Failed++
		return stats
	}

	switch {
	case fi.Mode().IsRegular():
		runSingle(ctx, cfg, log, ex, &stats)
	case fi.IsDir():
		runFolder(ctx, cfg, log, ex, &stats)
	default:
		log.Error("Invalid path (not a file or directory): %s", cfg.Input)
		stats.Failed++
	}
	return stats
}

// runSingle processes one explicitly named video.
func runSingle(ctx context.Context, cfg *config.Config, log *logging.Logger, ex *extract.Extractor, stats *RunStats) {
	stats.Total = 1
	stats.Current = 1
	log.Info("Processing single video: %s", filepath.Base(cfg.Input))
	log.Info("Output folder: %s", absOrRaw(cfg.OutputDir))
	fmt.Println()

	record(ex.Extract(ctx, cfg.Input, cfg.OutputName), stats)
	logSummary(cfg, log, stats)
}

// runFolder enumerates the directory and processes each match sequentially.
// Individual failures never abort the batch.
func runFolder(ctx context.Context, cfg *config.Config, log *logging.Logger, ex *extract.Extractor, stats *RunStats) {
	files, err := Discover(cfg.Input)
	if err != nil {
		log.Error("Cannot read directory %s: %v", cfg.Input, err)
		stats.Failed++
		return
	}
	if len(files) == 0 {
		log.Warn("No video files found in %s", cfg.Input)
		return
	}

	stats.Total = len(files)
	log.Info("Found %d video file(s)", stats.Total)
	log.Info("Output folder: %s", absOrRaw(cfg.OutputDir))
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(path))
		record(ex.Extract(ctx, path, ""), stats)
		fmt.Println()
	}

	logSummary(cfg, log, stats)
}

// record folds one extraction result into the run counters.
func record(res extract.Result, stats *RunStats) {
	switch {
	case res.Skipped:
		stats.Skipped++
	case res.OK:
		stats.Extracted++
		if fi, err := os.Stat(res.OutputPath); err == nil {
			stats.BytesWritten += fi.Size()
		}
	default:
		stats.Failed++
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d extracted, %d skipped, %d failed", stats.Extracted, stats.Skipped, stats.Failed)
	if cfg.DryRun {
		log.Info("  Thumbnails written: none (dry run)")
		return
	}
	log.Info("  Thumbnails written: %s", display.FormatBytes(stats.BytesWritten))
}

// absOrRaw renders a path absolutely when possible, for log readability.
func absOrRaw(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
