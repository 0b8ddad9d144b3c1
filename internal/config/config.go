// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the behavior of the legacy extractor scripts.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// BackendMode selects the extraction mechanism.
type BackendMode string

const (
	BackendProcess BackendMode = "process" // External ffmpeg invocation with fast seek (default).
	BackendDecode  BackendMode = "decode"  // In-process frame decode and image encode.
)

// ImageFormat is the output image encoding.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg" // JPEG output, ".jpg" extension (default).
	FormatPNG  ImageFormat = "png"  // PNG output, maximum compression.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (Input is the positional arg).
	Input     string
	OutputDir string // Default: "thumbnails". Created if absent.

	// Extraction settings.
	Backend     BackendMode
	ImageFormat ImageFormat
	Quality     int    // ffmpeg q:v scale 1-31, lower is better. Default: 2.
	Width       int    // Thumbnail width in pixels; 0 keeps the source size.
	OutputName  string // Custom output name for single-file runs.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: false (existing thumbnails are overwritten).

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
	CheckOnly bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// extractor scripts. Used as the base before [ParseFlags] applies CLI
// overrides.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "thumbnails",
		Backend:      BackendProcess,
		ImageFormat:  FormatJPEG,
		Quality:      2,
		Width:        0,
		DryRun:       false,
		SkipExisting: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// Validate checks enum fields and numeric ranges. When not in CheckOnly mode
// it also requires a non-empty input path.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendProcess, BackendDecode:
		// valid
	default:
		return errors.New("invalid backend (use 'process' or 'decode')")
	}

	switch c.ImageFormat {
	case FormatJPEG, FormatPNG:
		// valid
	default:
		return errors.New("invalid format (use 'jpeg' or 'png')")
	}

	if c.Quality < 1 || c.Quality > 31 {
		return fmt.Errorf("quality must be between 1 and 31 (got %d)", c.Quality)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative (got %d)", c.Width)
	}

	if c.CheckOnly {
		return nil
	}
	if c.Input == "" {
		return errors.New("need an input video file or directory")
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
