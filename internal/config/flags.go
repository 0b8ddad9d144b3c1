package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into extraction, output, behavior, display, and utility.
// Exit-triggering flags (--help, --version) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is the single source of truth shown in --version, help, and the
// runtime banner; override at build time with
// -ldflags "-X github.com/stillcut/stillcut/internal/config.Version=...".
var Version = "1.0.0"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("stillcut", flag.ContinueOnError)
	fs.Usage = func() { printUsage(os.Stderr) }

	var exits exitFlags

	defineExtractionFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &exits)
	defineUtilityFlags(fs, cfg, &exits)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if exits.showHelp {
		printUsage(os.Stderr)
		os.Exit(0)
	}
	if exits.showVersion {
		fmt.Fprintln(os.Stdout, "stillcut v"+Version)
		os.Exit(0)
	}

	if exits.noColor {
		cfg.ColorMode = ColorNever
	} else if exits.forceColor {
		cfg.ColorMode = ColorAlways
	}

	return parsePositionalArgs(fs, cfg)
}

// exitFlags holds boolean flags that are applied after Parse.
// These either override a default (forceColor, noColor) or trigger exit (showHelp, showVersion).
type exitFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineExtractionFlags registers -b/--backend, -f/--format, -q/--quality, -w/--width.
func defineExtractionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&backendValue{&cfg.Backend}, "backend", "Extraction backend: process | decode")
	fs.Var(&backendValue{&cfg.Backend}, "b", "Same as --backend")
	fs.Var(&imageFormatValue{&cfg.ImageFormat}, "format", "Output image format: jpeg | png")
	fs.Var(&imageFormatValue{&cfg.ImageFormat}, "f", "Same as --format")
	fs.IntVar(&cfg.Quality, "quality", cfg.Quality, "Quality 1-31, lower is better")
	fs.IntVar(&cfg.Quality, "q", cfg.Quality, "Same as --quality")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Thumbnail width in pixels (0 = source size)")
	fs.IntVar(&cfg.Width, "w", cfg.Width, "Same as --width")
}

// defineOutputFlags registers -o/--output and -n/--name.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output folder for thumbnails")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output")
	fs.StringVar(&cfg.OutputName, "name", "", "Custom output name (single-file input only)")
	fs.StringVar(&cfg.OutputName, "n", "", "Same as --name")
}

// defineBehaviorFlags registers -d/--dry-run and --skip-existing.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not write thumbnails")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", false, "Skip files whose thumbnail already exists")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, e *exitFlags) {
	fs.BoolVar(&e.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&e.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (includes ffmpeg stderr)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, e *exitFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&e.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&e.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&e.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&e.showHelp, "h", false, "Same as --help")
}

// parsePositionalArgs sets Input from the single positional arg when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input path (video file or directory)")
	}
	cfg.Input = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "stillcut v" + Version + " — last-second video thumbnail extractor"},
		{"", ""},
		{"  stillcut [OPTIONS] <video-or-directory>", ""},
		{"", ""},
		{"Extraction", ""},
		{"  -b, --backend <mode>", "process (external ffmpeg) or decode (in-process), default: process"},
		{"  -f, --format <jpeg|png>", "Output image format (default: jpeg)"},
		{"  -q, --quality <1-31>", "Quality, lower is better (default: 2)"},
		{"  -w, --width <pixels>", "Downscale thumbnails to this width (default: source size)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <dir>", "Output folder (default: thumbnails)"},
		{"  -n, --name <file>", "Custom output name (single-file input only)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not write thumbnails"},
		{"  --skip-existing", "Skip files whose thumbnail already exists"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (includes ffmpeg stderr)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, image encoders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (BackendMode, ImageFormat) with flag.Var.

type backendValue struct{ p *BackendMode }

func (b *backendValue) String() string {
	if b.p == nil {
		return ""
	}
	return string(*b.p)
}

func (b *backendValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "process":
		*b.p = BackendProcess
	case "decode":
		*b.p = BackendDecode
	default:
		return fmt.Errorf("invalid backend %q (use 'process' or 'decode')", s)
	}
	return nil
}

type imageFormatValue struct{ p *ImageFormat }

func (f *imageFormatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}

func (f *imageFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "jpeg", "jpg":
		*f.p = FormatJPEG
	case "png":
		*f.p = FormatPNG
	default:
		return fmt.Errorf("invalid format %q (use 'jpeg' or 'png')", s)
	}
	return nil
}
