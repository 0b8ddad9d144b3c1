// Package naming derives thumbnail file names from video paths and resolves
// output-name collisions within a run.
package naming

import (
	"path/filepath"
	"strings"

	"github.com/stillcut/stillcut/internal/config"
)

// Extension returns the file extension (without dot) for an image format.
// JPEG output uses the short "jpg" form.
func Extension(format config.ImageFormat) string {
	if format == config.FormatPNG {
		return "png"
	}
	return "jpg"
}

// recognizedImageExts are the extensions accepted on an explicit output name.
// Anything else gets the configured default appended.
var recognizedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// OutputName returns the thumbnail file name for a video. With no explicit
// name the result is "<stem>_thumbnail.<ext>". An explicit name is kept
// as-is when it already carries a recognized image extension; otherwise the
// configured default extension is appended.
func OutputName(videoPath, explicit string, format config.ImageFormat) string {
	if explicit == "" {
		base := filepath.Base(videoPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return stem + "_thumbnail." + Extension(format)
	}
	if recognizedImageExts[strings.ToLower(filepath.Ext(explicit))] {
		return explicit
	}
	return explicit + "." + Extension(format)
}

// OutputPath joins the output directory and the resolved thumbnail name.
// The result is always inside outputDir.
func OutputPath(outputDir, name string) string {
	return filepath.Join(outputDir, filepath.Base(name))
}
