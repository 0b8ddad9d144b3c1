package probe

import (
	"math"
	"strconv"
	"strings"
)

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// VideoStream holds the parsed properties of the primary video stream.
type VideoStream struct {
	Index        int
	Codec        string
	Width        int
	Height       int
	AvgFrameRate string // Rational as reported, e.g. "30000/1001".
	NbFrames     int    // 0 when the container does not report it.
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
}

// FrameRate returns the primary video stream's average frame rate in
// frames/sec, parsed from the "num/den" rational. Returns 0 when there is
// no video stream or the rational is absent or degenerate ("0/0").
func (r *Result) FrameRate() float64 {
	if r.PrimaryVideo == nil {
		return 0
	}
	s := strings.TrimSpace(r.PrimaryVideo.AvgFrameRate)
	if s == "" {
		return 0
	}
	num, den := s, "1"
	if idx := strings.Index(s, "/"); idx >= 0 {
		num, den = s[:idx], s[idx+1:]
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n <= 0 {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d <= 0 {
		return 0
	}
	return n / d
}

// FrameCount returns the total frame count of the primary video stream.
// Containers that report nb_frames (mp4, mov) are taken at their word;
// otherwise the count is estimated from duration and frame rate, which is
// how mkv and webm report length. Returns 0 when neither source is usable.
func (r *Result) FrameCount() int {
	if r.PrimaryVideo == nil {
		return 0
	}
	if r.PrimaryVideo.NbFrames > 0 {
		return r.PrimaryVideo.NbFrames
	}
	fps := r.FrameRate()
	if fps <= 0 || r.Format.Duration <= 0 {
		return 0
	}
	return int(math.Round(r.Format.Duration * fps))
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (r *Result) Resolution() string {
	if r.PrimaryVideo == nil || r.PrimaryVideo.Width <= 0 || r.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(r.PrimaryVideo.Width) + "x" + strconv.Itoa(r.PrimaryVideo.Height)
}
