// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing or broken.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrFrameGrabFailed = errors.New("ffmpeg found but single-frame extraction test failed")
)

// InstallHint is printed alongside a fatal dependency error so the user knows
// how to fix it before re-running.
const InstallHint = `Install FFmpeg (which also provides ffprobe):
  Ubuntu/Debian: sudo apt-get install ffmpeg
  macOS:         brew install ffmpeg
  Windows:       https://ffmpeg.org/download.html`

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg
// and ffprobe, lists the relevant image encoders, and runs a synthetic
// single-frame extraction. Informational only; it does not stop on failure.
// Returns false if any check failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "ffmpeg")
	ok = checkTool(log, "ffprobe") && ok
	checkImageEncoders(log)
	ok = checkFrameGrab(log) && ok
	return ok
}

// checkTool verifies a binary is on PATH and logs its version string.
func checkTool(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkImageEncoders lists the still-image encoders reported by ffmpeg.
func checkImageEncoders(log Logger) {
	log.Info("Image encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "mjpeg") || strings.Contains(lower, " png") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkFrameGrab runs a minimal synthetic single-frame extraction to verify
// the encode path works end to end.
func checkFrameGrab(log Logger) bool {
	log.Info("Testing single-frame extraction...")
	if runSilent("ffmpeg", frameGrabTestArgs()...) {
		log.Success("Single-frame extraction works")
		return true
	}
	log.Error("Single-frame extraction test failed")
	return false
}

// CheckDeps is the pre-run validation: it verifies that ffmpeg and ffprobe
// are on PATH and that a synthetic single-frame extraction succeeds. Both
// backends need both tools (the decode backend probes via ffprobe and pipes
// frames out of ffmpeg). Returns a sentinel error on failure; a failure here
// is fatal to the whole run, before any file is touched.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", frameGrabTestArgs()...) {
		return ErrFrameGrabFailed
	}
	return nil
}

// frameGrabTestArgs returns the ffmpeg arguments for a minimal synthetic
// frame extraction. Shared by checkFrameGrab and CheckDeps to avoid
// duplicating the argument list.
func frameGrabTestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-frames:v", "1",
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
