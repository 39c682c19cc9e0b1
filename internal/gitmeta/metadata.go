// Package gitmeta collects version-control context for the scanned tree.
// Everything here is best-effort: a scan target that is not a git
// repository simply yields empty metadata.
package gitmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Metadata describes the repository containing the scan root.
type Metadata struct {
	Remote string
	Branch string
	Commit string
}

// Collect opens the repository enclosing root and reads the origin remote,
// branch and HEAD commit. Returns an error when root is not inside a git
// repository.
func Collect(root string) (*Metadata, error) {
	repoRoot, err := findRepositoryRoot(root)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	md := &Metadata{}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			md.Branch = head.Name().Short()
		}
		md.Commit = head.Hash().String()
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			md.Remote = strings.TrimSuffix(cfg.URLs[0], ".git")
		}
	}

	return md, nil
}

// findRepositoryRoot walks up from dir until it finds a .git entry.
func findRepositoryRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no git repository found above %q", dir)
		}
		abs = parent
	}
}
