package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFile locates a vendor document in the catalog directory by a
// case-insensitive filename keyword. When exts are given the match must
// also carry one of them. A missing document is reported via
// os.ErrNotExist so callers can degrade to an empty result.
func FindFile(dir, keyword string, exts ...string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read catalog dir %s: %w", dir, err)
	}

	kw := strings.ToLower(keyword)
	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.Contains(strings.ToLower(name), kw) {
			continue
		}
		if len(exts) > 0 && !hasExt(name, exts) {
			continue
		}
		if !IsSupportedExtension(name) {
			continue
		}
		candidates = append(candidates, name)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no document matching %q in %s: %w", keyword, dir, os.ErrNotExist)
	}
	// Deterministic choice when several files match (e.g. yearly revisions).
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[len(candidates)-1]), nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
