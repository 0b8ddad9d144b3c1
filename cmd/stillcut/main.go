// Command stillcut is the CLI entrypoint for the last-second thumbnail
// extractor.
//
// It parses flags, validates configuration and the input path, and either
// runs system diagnostics (--check) or the extraction run: one thumbnail per
// input video, taken one second before the end.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stillcut/stillcut/internal/check"
	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/display"
	"github.com/stillcut/stillcut/internal/logging"
	"github.com/stillcut/stillcut/internal/pipeline"
)

// commit is injected at build time via -ldflags; the version string lives in
// config.Version so --version, help, and the banner all agree.
var commit = "unknown"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "stillcut: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "stillcut: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stillcut: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	log.Info("=== stillcut v%s (%s) ===", config.Version, commit)
	log.Info("Backend: %s | Format: %s | Quality: %d", cfg.Backend, cfg.ImageFormat, cfg.Quality)
	if cfg.DryRun {
		log.Warn("DRY RUN — no thumbnails will be written")
	}
	log.Info("")

	// Fail fast if ffmpeg/ffprobe are unavailable: nothing can succeed
	// without them, so this is fatal before any file is touched.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		fmt.Fprintln(os.Stderr, check.InstallHint)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// run can stop between files without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run extraction (single file or directory).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
