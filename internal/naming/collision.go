package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks which input file owns each output path and hands
// out " - dupN" variants on conflict. Two videos with the same stem but
// different containers (a.mp4, a.mkv) would otherwise both claim
// a_thumbnail.jpg and silently overwrite each other. Goroutine-safe.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // output path → input path that owns it
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Resolve returns the final output path for input. The requested path is
// returned as-is when unclaimed or already owned by input; asking again for
// the same input is idempotent. On conflict the first free " - dupN" variant
// is claimed instead.
func (cr *CollisionResolver) Resolve(input, requestedOutput string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.claim(input, requestedOutput) {
		return requestedOutput
	}

	ext := filepath.Ext(requestedOutput)
	stem := strings.TrimSuffix(requestedOutput, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s - dup%d%s", stem, n, ext)
		if cr.claim(input, candidate) {
			return candidate
		}
	}
}

// claim records input as the owner of path. Returns false when the path is
// already owned by a different input. Callers must hold cr.mu.
func (cr *CollisionResolver) claim(input, path string) bool {
	if owner, taken := cr.owners[path]; taken && owner != input {
		return false
	}
	cr.owners[path] = input
	return true
}
