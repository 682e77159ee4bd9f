package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Extensions lists the file extensions accepted as phototable candidates.
// Matching is case-insensitive.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".heic", ".gif"}

// IsCandidate reports whether name has one of the accepted extensions.
func IsCandidate(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// ListCandidates returns the names of regular files in dir whose extension
// is accepted, sorted lexicographically.
func ListCandidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsCandidate(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
