package pipeline

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/logging"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscover_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4")
	touch(t, dir, "b.mkv")
	touch(t, dir, "MOVIE.MKV")
	touch(t, dir, "c.WebM")
	touch(t, dir, "notes.txt")
	touch(t, dir, "song.mp3")
	touch(t, dir, "noext")

	files, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 4 {
		t.Fatalf("Discover found %d files, want 4: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Errorf("results not sorted: %v", files)
		}
	}
}

func TestDiscover_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.mp4")
	sub := filepath.Join(dir, "nested.mp4")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "inner.mp4")

	files, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.mp4" {
		t.Errorf("Discover = %v, want only top.mp4", files)
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("Discover on empty dir = %v, want none", files)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Discover of a missing directory should fail")
	}
}

func newTestLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRun_PathNotFound(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "missing")
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Failed != 1 || stats.Extracted != 0 {
		t.Errorf("stats = %+v, want Failed=1", stats)
	}
}

func TestRun_EmptyFolder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input = t.TempDir()
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Extracted != 0 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty run wrote %d files, want 0", len(entries))
	}
}

func TestRun_FolderWithOnlyUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")
	touch(t, dir, "track.mp3")

	cfg := config.DefaultConfig()
	cfg.Input = dir
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Total != 0 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Total=0 Failed=0", stats)
	}
}

// Integration tests below need real ffmpeg/ffprobe binaries.

func requireTools(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}
}

func genVideo(t *testing.T, dir, name string) {
	t.Helper()
	gen := exec.Command("ffmpeg",
		"-f", "lavfi", "-i", "testsrc=duration=2:size=320x240:rate=24",
		"-pix_fmt", "yuv420p",
		"-y", filepath.Join(dir, name),
	)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Fatalf("generate %s: %v\n%s", name, err, out)
	}
}

func TestRun_Folder(t *testing.T) {
	requireTools(t)

	dir := t.TempDir()
	genVideo(t, dir, "one.mp4")
	genVideo(t, dir, "two.mp4")
	genVideo(t, dir, "three.mkv")
	// A file with a video extension but garbage content must fail on its
	// own without aborting the batch.
	touch(t, dir, "bad.mp4")

	cfg := config.DefaultConfig()
	cfg.Input = dir
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Extracted != 3 {
		t.Errorf("Extracted = %d, want 3", stats.Extracted)
	}
	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if stats.BytesWritten == 0 {
		t.Error("BytesWritten = 0, want > 0")
	}

	for _, want := range []string{"one_thumbnail.jpg", "two_thumbnail.jpg", "three_thumbnail.jpg"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, want)); err != nil {
			t.Errorf("missing thumbnail %s: %v", want, err)
		}
	}
}

func TestRun_SingleFile(t *testing.T) {
	requireTools(t)

	dir := t.TempDir()
	genVideo(t, dir, "clip.mp4")

	cfg := config.DefaultConfig()
	cfg.Input = filepath.Join(dir, "clip.mp4")
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Extracted != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Extracted=1 Failed=0", stats)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "clip_thumbnail.jpg")); err != nil {
		t.Errorf("missing thumbnail: %v", err)
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	requireTools(t)

	dir := t.TempDir()
	genVideo(t, dir, "clip.mp4")

	cfg := config.DefaultConfig()
	cfg.Input = dir
	cfg.OutputDir = t.TempDir()
	cfg.DryRun = true
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Extracted != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Extracted=1 Failed=0", stats)
	}
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d files, want 0", len(entries))
	}
}

func TestRun_SameStemDifferentContainers(t *testing.T) {
	requireTools(t)

	dir := t.TempDir()
	genVideo(t, dir, "clip.mp4")
	genVideo(t, dir, "clip.mkv")

	cfg := config.DefaultConfig()
	cfg.Input = dir
	cfg.OutputDir = t.TempDir()
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)
	if stats.Extracted != 2 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Extracted=2 Failed=0", stats)
	}
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("wrote %d thumbnails, want 2 distinct names: %v", len(entries), entries)
	}
}
