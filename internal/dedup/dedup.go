// Package dedup flags files whose leading content duplicates a file seen
// earlier in the same run. Hashing only a bounded prefix keeps the cost per
// file constant regardless of file size; duplicated suffixes are missed,
// which is an accepted recall/throughput tradeoff on large trees.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

const (
	// MinLines is the minimum number of non-blank lines a file needs
	// before it participates in duplicate detection. Shorter files
	// produce too many false positives.
	MinLines = 12

	// PrefixLines bounds how many non-blank lines feed the fingerprint.
	PrefixLines = 40
)

// Fingerprint hashes the first PrefixLines stripped non-blank lines.
// Returns ok=false when fewer than MinLines remain after dropping blanks.
func Fingerprint(lines []string) (string, bool) {
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			stripped = append(stripped, trimmed)
		}
	}
	if len(stripped) < MinLines {
		return "", false
	}
	if len(stripped) > PrefixLines {
		stripped = stripped[:PrefixLines]
	}
	sum := sha256.Sum256([]byte(strings.Join(stripped, "\n")))
	return hex.EncodeToString(sum[:]), true
}

// Index maps fingerprints to the first path that produced them. Entries
// are written once and never overwritten; the index lives for one scan run.
type Index struct {
	mu   sync.Mutex
	seen map[string]string
}

// NewIndex returns an empty fingerprint index.
func NewIndex() *Index {
	return &Index{seen: make(map[string]string)}
}

// Check records the fingerprint for path if unseen and returns nil.
// When the fingerprint is already present it returns a duplication finding
// referencing the origin path and leaves the index entry untouched.
// The insert-if-absent is atomic, so first occurrence wins under
// concurrent callers.
func (idx *Index) Check(path, lang, fingerprint string) *findings.Finding {
	idx.mu.Lock()
	origin, dup := idx.seen[fingerprint]
	if !dup {
		idx.seen[fingerprint] = path
	}
	idx.mu.Unlock()

	if !dup {
		return nil
	}
	return &findings.Finding{
		FilePath: path,
		Category: findings.CategoryDuplicateBlock,
		Rule:     "duplicate-prefix",
		Language: lang,
		Message:  fmt.Sprintf("Code duplication with %s", origin),
	}
}

// Len reports how many distinct fingerprints have been recorded.
func (idx *Index) Len() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.seen)
}
