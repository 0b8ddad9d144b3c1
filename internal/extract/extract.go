// Package extract implements single-file thumbnail extraction: one logical
// contract ("grab the frame one second before the end") with two backends
// selected at construction, an external ffmpeg invocation or an in-process
// decode. All per-file failures are reported and converted into a Result;
// nothing propagates to the caller.
package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/display"
	"github.com/stillcut/stillcut/internal/logging"
	"github.com/stillcut/stillcut/internal/naming"
	"github.com/stillcut/stillcut/internal/probe"
	"github.com/stillcut/stillcut/internal/seek"
)

// Supported video file extensions (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
}

// IsSupported reports whether the path carries a supported video extension.
// Matching is case-insensitive.
func IsSupported(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// Result is the outcome of one extraction. Extraction is atomic from the
// caller's perspective: either OK is set and the thumbnail exists at
// OutputPath, or OK is false and OutputPath is empty.
type Result struct {
	OK         bool
	Skipped    bool // Thumbnail already existed and --skip-existing was set.
	OutputPath string
}

// Backend is the mechanism that grabs one frame from a probed video and
// writes it to outputPath. Implementations validate their own readiness
// requirements from the probe result (duration vs. fps and frame count)
// and release any acquired resource before returning.
type Backend interface {
	Name() string
	Grab(ctx context.Context, src *probe.Result, videoPath, outputPath string) error
}

// Extractor validates inputs, resolves output names, and delegates the
// actual frame grab to its backend.
type Extractor struct {
	cfg      *config.Config
	log      *logging.Logger
	backend  Backend
	resolver *naming.CollisionResolver
}

// New builds an Extractor with the backend selected by cfg and creates the
// output directory (including parents, idempotently).
func New(cfg *config.Config, log *logging.Logger) (*Extractor, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	var b Backend
	switch cfg.Backend {
	case config.BackendDecode:
		b = newDecodeBackend(cfg)
	default:
		b = newProcessBackend(cfg)
	}

	return &Extractor{
		cfg:      cfg,
		log:      log,
		backend:  b,
		resolver: naming.NewCollisionResolver(),
	}, nil
}

// BackendName returns the name of the selected backend, for startup logging.
func (e *Extractor) BackendName() string { return e.backend.Name() }

// Extract produces one thumbnail for videoPath. Preconditions are checked in
// order, short-circuiting on the first failure: the file must exist, carry a
// supported extension, and probe successfully. outputName overrides the
// derived "<stem>_thumbnail.<ext>" name; it may be empty.
func (e *Extractor) Extract(ctx context.Context, videoPath, outputName string) Result {
	base := filepath.Base(videoPath)

	if _, err := os.Stat(videoPath); err != nil {
		e.log.Error("Video file not found: %s", videoPath)
		return Result{}
	}
	if !IsSupported(videoPath) {
		e.log.Warn("Unsupported format: %s", base)
		return Result{}
	}

	src, err := probe.Probe(ctx, videoPath)
	if err != nil {
		e.log.Error("Cannot probe %s (possibly corrupt): %v", base, err)
		return Result{}
	}

	name := naming.OutputName(videoPath, outputName, e.cfg.ImageFormat)
	outPath := e.resolver.Resolve(videoPath, naming.OutputPath(e.cfg.OutputDir, name))

	ts := seek.Timestamp(src.Format.Duration)
	e.log.Debug(e.cfg.Verbose, "  Source: %s | %.3f fps | target %s",
		src.Resolution(), src.FrameRate(), display.FormatTimestamp(ts))

	if e.cfg.SkipExisting {
		if _, err := os.Stat(outPath); err == nil {
			e.log.Warn("Skip (exists): %s", filepath.Base(outPath))
			return Result{OK: true, Skipped: true, OutputPath: outPath}
		}
	}

	if e.cfg.DryRun {
		e.log.Success("[DRY] Would extract frame at %s -> %s",
			display.FormatTimestamp(ts), filepath.Base(outPath))
		return Result{OK: true, OutputPath: outPath}
	}

	if err := e.backend.Grab(ctx, src, videoPath, outPath); err != nil {
		e.log.Error("Extraction failed for %s: %v", base, err)
		return Result{}
	}

	// The backend reported success; the contract is that the file exists.
	if _, err := os.Stat(outPath); err != nil {
		e.log.Error("Thumbnail was not created for %s", base)
		return Result{}
	}

	e.log.Success("Saved thumbnail: %s", outPath)
	return Result{OK: true, OutputPath: outPath}
}
