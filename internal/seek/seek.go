// Package seek computes the extraction target shared by both backends: the
// point one second before the end of the video, expressed either as a
// continuous timestamp or as a discrete frame index. Both forms denote the
// same wall-clock offset to within one frame's duration, so the two backends
// grab the same picture regardless of mechanism.
package seek

import "math"

// Lookback is how far before the end of the video the thumbnail is taken.
const Lookback = 1.0 // seconds

// Timestamp returns the seek target in seconds for a video of the given
// total duration. Videos shorter than the lookback clamp to zero; the
// result is never negative.
func Timestamp(duration float64) float64 {
	ts := duration - Lookback
	if ts < 0 {
		return 0
	}
	return ts
}

// FrameIndex returns the target frame for a video with the given frame rate
// and total frame count: the frame one second's worth of frames before the
// end. Videos shorter than the lookback clamp to frame zero; the result is
// never negative. Callers must validate fps and totalFrames are positive
// before seeking; this function only does the position arithmetic.
func FrameIndex(fps float64, totalFrames int) int {
	idx := totalFrames - int(math.Round(fps*Lookback))
	if idx < 0 {
		return 0
	}
	return idx
}
