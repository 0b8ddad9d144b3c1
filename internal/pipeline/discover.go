package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/stillcut/stillcut/internal/extract"
)

// Discover lists the video files directly inside dir (non-recursive),
// matched case-insensitively against the supported-format allowlist and
// sorted lexicographically for deterministic processing order. Each
// directory entry is considered exactly once, so case-variant names can
// never double-count a file.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if extract.IsSupported(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
