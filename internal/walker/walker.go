// Package walker enumerates candidate files under a root directory.
// Traversal is depth-first and alphabetical, so the same tree always
// yields the same list and reports stay byte-identical across runs.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs is pruned before descending: version-control metadata,
// dependency caches, build output and IDE state. Pruned subtrees are never
// visited.
var DefaultIgnoreDirs = map[string]struct{}{
	".git":         {},
	".github":      {},
	"__pycache__":  {},
	"node_modules": {},
	"venv":         {},
	"env":          {},
	"dist":         {},
	"build":        {},
	".idea":        {},
	".vscode":      {},
}

// Walker enumerates regular files under ignore-directory rules.
type Walker struct {
	ignoreDirs map[string]struct{}
}

// New returns a Walker using DefaultIgnoreDirs plus any extra directory
// names.
func New(extraIgnoreDirs []string) *Walker {
	ignore := make(map[string]struct{}, len(DefaultIgnoreDirs)+len(extraIgnoreDirs))
	for name := range DefaultIgnoreDirs {
		ignore[name] = struct{}{}
	}
	for _, name := range extraIgnoreDirs {
		ignore[name] = struct{}{}
	}
	return &Walker{ignoreDirs: ignore}
}

// Walk returns the slash-separated paths of every candidate file under
// root, relative to root, in deterministic order. Directories in the
// ignore set are pruned before descent; hidden entries are skipped except
// the root itself. A missing or non-directory root is the only error.
func (w *Walker) Walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if _, skip := w.ignoreDirs[name]; skip {
				return fs.SkipDir
			}
			if strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
