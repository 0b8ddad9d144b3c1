package extract

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/stillcut/stillcut/internal/config"
	"github.com/stillcut/stillcut/internal/probe"
	"github.com/stillcut/stillcut/internal/seek"
)

// decodeBackend extracts the frame in-process: it seeks by discrete frame
// index, pipes exactly one decoded frame into memory, and encodes the final
// image itself. Slower than the process backend but frame-accurate.
type decodeBackend struct {
	cfg *config.Config
}

func newDecodeBackend(cfg *config.Config) *decodeBackend {
	ffmpeg.LogCompiledCommand = cfg.Verbose
	return &decodeBackend{cfg: cfg}
}

func (b *decodeBackend) Name() string { return "decode" }

// Grab selects the frame one second's worth of frames before the end and
// writes it through the in-process image pipeline. Frame rate and frame
// count must both be resolvable and non-zero; either missing is
// unrecoverable for this file.
func (b *decodeBackend) Grab(ctx context.Context, src *probe.Result, videoPath, outputPath string) error {
	fps := src.FrameRate()
	frames := src.FrameCount()
	if fps <= 0 || frames <= 0 {
		return fmt.Errorf("invalid video properties (fps=%.3f, frames=%d)", fps, frames)
	}

	idx := seek.FrameIndex(fps, frames)

	// One near-lossless intermediate frame over the pipe; the user-facing
	// quality setting applies at the final encode below.
	buf := &bytes.Buffer{}
	err := ffmpeg.Input(videoPath).
		Filter("select", ffmpeg.Args{fmt.Sprintf("gte(n,%d)", idx)}).
		Output("pipe:", ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "mjpeg", "q:v": 2}).
		WithOutput(buf).
		Run()
	if err != nil {
		return fmt.Errorf("decode frame %d: %w", idx, err)
	}

	img, err := imaging.Decode(buf)
	if err != nil {
		return fmt.Errorf("decode frame %d into image: %w", idx, err)
	}

	if b.cfg.Width > 0 {
		img = imaging.Resize(img, b.cfg.Width, 0, imaging.Lanczos)
	}

	return imaging.Save(img, outputPath, b.encodeOptions()...)
}

// encodeOptions maps the configured format and quality onto imaging encoder
// options. PNG always uses maximum compression.
func (b *decodeBackend) encodeOptions() []imaging.EncodeOption {
	if b.cfg.ImageFormat == config.FormatPNG {
		return []imaging.EncodeOption{imaging.PNGCompressionLevel(png.BestCompression)}
	}
	return []imaging.EncodeOption{imaging.JPEGQuality(JPEGQuality(b.cfg.Quality))}
}

// JPEGQuality maps the ffmpeg 1-31 quality scale (lower is better) onto the
// JPEG 1-100 scale (higher is better). The default q=2 lands at 97.
func JPEGQuality(q int) int {
	jq := 100 - (q-1)*3
	if jq < 1 {
		return 1
	}
	if jq > 100 {
		return 100
	}
	return jq
}
