package naming

import (
	"path/filepath"
	"testing"

	"github.com/stillcut/stillcut/internal/config"
)

func TestExtension(t *testing.T) {
	if got := Extension(config.FormatJPEG); got != "jpg" {
		t.Errorf("Extension(jpeg) = %q, want %q", got, "jpg")
	}
	if got := Extension(config.FormatPNG); got != "png" {
		t.Errorf("Extension(png) = %q, want %q", got, "png")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		video    string
		explicit string
		format   config.ImageFormat
		want     string
	}{
		{"derived jpeg default", "clip.mp4", "", config.FormatJPEG, "clip_thumbnail.jpg"},
		{"derived png", "clip.mp4", "", config.FormatPNG, "clip_thumbnail.png"},
		{"derived strips directory", "/videos/holiday.mkv", "", config.FormatJPEG, "holiday_thumbnail.jpg"},
		{"derived keeps inner dots", "my.best.clip.mov", "", config.FormatJPEG, "my.best.clip_thumbnail.jpg"},
		{"explicit with jpg kept", "clip.mp4", "cover.jpg", config.FormatJPEG, "cover.jpg"},
		{"explicit with jpeg kept", "clip.mp4", "cover.jpeg", config.FormatJPEG, "cover.jpeg"},
		{"explicit with png kept", "clip.mp4", "cover.png", config.FormatJPEG, "cover.png"},
		{"explicit uppercase ext kept", "clip.mp4", "cover.PNG", config.FormatJPEG, "cover.PNG"},
		{"explicit without ext gets default", "clip.mp4", "cover", config.FormatJPEG, "cover.jpg"},
		{"explicit without ext gets png default", "clip.mp4", "cover", config.FormatPNG, "cover.png"},
		{"explicit with foreign ext gets default", "clip.mp4", "cover.txt", config.FormatJPEG, "cover.txt.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputName(tt.video, tt.explicit, tt.format)
			if got != tt.want {
				t.Errorf("OutputName(%q, %q, %v) = %q, want %q",
					tt.video, tt.explicit, tt.format, got, tt.want)
			}
		})
	}
}

func TestOutputPath_StaysInsideOutputDir(t *testing.T) {
	got := OutputPath("thumbnails", filepath.Join("..", "evil.jpg"))
	want := filepath.Join("thumbnails", "evil.jpg")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()
	out := filepath.Join("thumbs", "a_thumbnail.jpg")

	// First claim wins unchanged; same input resolves identically.
	if got := cr.Resolve("a.mp4", out); got != out {
		t.Errorf("first Resolve = %q, want %q", got, out)
	}
	if got := cr.Resolve("a.mp4", out); got != out {
		t.Errorf("repeat Resolve for owner = %q, want %q", got, out)
	}

	// A different input colliding on the same output gets a dup suffix.
	got := cr.Resolve("a.mkv", out)
	want := filepath.Join("thumbs", "a_thumbnail - dup1.jpg")
	if got != want {
		t.Errorf("colliding Resolve = %q, want %q", got, want)
	}

	// Third video with the same stem gets the next counter.
	got = cr.Resolve("a.webm", out)
	want = filepath.Join("thumbs", "a_thumbnail - dup2.jpg")
	if got != want {
		t.Errorf("second colliding Resolve = %q, want %q", got, want)
	}
}
