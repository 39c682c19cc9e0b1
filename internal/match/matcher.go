// Package match applies the rule catalog to file content line by line.
// Line mode is the only mode: whole-file matching loses the location and
// produces reports nobody can act on.
package match

import (
	"fmt"

	"github.com/polyscan-dev/polyscan/internal/classify"
	"github.com/polyscan-dev/polyscan/internal/findings"
	"github.com/polyscan-dev/polyscan/internal/rules"
)

// Matcher tests every enabled category against every line of a file.
type Matcher struct {
	catalog *rules.Catalog
}

// New returns a Matcher bound to the given catalog.
func New(catalog *rules.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// MatchLines yields one finding per matching (line, category, pattern)
// triple, in line order then catalog order then pattern order. A line
// matching several patterns of the same category produces several
// findings. Line numbers are 1-based.
func (m *Matcher) MatchLines(path string, lang classify.Language, lines []string) []findings.Finding {
	var found []findings.Finding
	for i, line := range lines {
		for _, cat := range m.catalog.Categories() {
			for _, rule := range cat.Rules {
				if rule.Regexp.MatchString(line) {
					found = append(found, findings.Finding{
						FilePath: path,
						Line:     i + 1,
						Category: cat.Category,
						Rule:     rule.Pattern,
						Language: lang.String(),
						Message:  fmt.Sprintf("%s (pattern %s)", cat.Message, rule.Pattern),
					})
				}
			}
		}
	}
	return found
}
