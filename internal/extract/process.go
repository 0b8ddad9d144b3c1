package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/probe"
	"github.com/stillcut/stillcut/internal/seek"
)

// maxStderr caps how much captured ffmpeg stderr is shown in a failure
// message; full output is available with --verbose.
const maxStderr = 200

// processBackend extracts the frame by invoking the external ffmpeg binary
// with a fast seek: -ss placed before -i positions the demuxer at the target
// timestamp without decoding the file up to it.
type processBackend struct {
	cfg *config.Config
}

func newProcessBackend(cfg *config.Config) *processBackend {
	return &processBackend{cfg: cfg}
}

func (b *processBackend) Name() string { return "process" }

// Grab seeks to one second before the end and writes a single encoded frame.
// The video's container duration must be positive; a missing or zero
// duration is unrecoverable for this file.
func (b *processBackend) Grab(ctx context.Context, src *probe.Result, videoPath, outputPath string) error {
	duration := src.Format.Duration
	if duration <= 0 {
		return fmt.Errorf("could not determine video duration")
	}

	args := b.buildArgs(seek.Timestamp(duration), videoPath, outputPath)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stderrBuf bytes.Buffer
	if b.cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if diag := truncate(stderrBuf.String(), maxStderr); diag != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, diag)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// buildArgs constructs the complete ffmpeg argument slice for one grab.
func (b *processBackend) buildArgs(ts float64, in, out string) []string {
	args := make([]string, 0, 16)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	if b.cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// Fast seek: must come before -i.
	args = append(args, "-ss", strconv.FormatFloat(ts, 'f', 3, 64))
	args = append(args, "-i", in)

	if b.cfg.Width > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:-2:flags=lanczos", b.cfg.Width))
	}

	args = append(args,
		"-frames:v", "1",
		"-q:v", strconv.Itoa(b.cfg.Quality),
	)

	return append(args, out)
}

// truncate trims stderr for display, keeping at most n bytes.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
