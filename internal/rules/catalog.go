// Package rules holds the detection catalog: ordered regex pattern sets
// keyed by category. The catalog is assembled once at startup and is
// read-only afterwards; a pattern that fails to compile is a programming
// error and panics at init, it is not a runtime condition.
package rules

import (
	"regexp"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

// Rule is one compiled pattern inside a category. Pattern keeps the
// original expression text for reporting.
type Rule struct {
	Pattern string
	Regexp  *regexp.Regexp
}

// CategoryRules is the ordered pattern list of one category together with
// its report message and default enablement.
type CategoryRules struct {
	Category findings.Category
	Message  string
	Rules    []Rule
	Enabled  bool
}

// All rule patterns are case-sensitive except PASSWORD, which is matched
// case-insensitively: password literals appear with varied casing of the
// key name. The asymmetry is intentional.
var builtins = []CategoryRules{
	{
		Category: findings.CategorySecret,
		Message:  "Hard-coded API key",
		Enabled:  true,
		Rules: compile(
			`AKIA[0-9A-Z]{16}`,
			`AIza[0-9A-Za-z\-_]{35}`,
			`sk_live_[0-9a-zA-Z]{24}`,
			`eyJ[a-zA-Z0-9_-]+\.eyJ`,
		),
	},
	{
		Category: findings.CategoryPassword,
		Message:  "Plaintext password",
		Enabled:  true,
		Rules: compile(
			`(?i)password\s*=\s*['"].+['"]`,
			`(?i)passwd\s*=\s*['"].+['"]`,
			`(?i)pwd\s*=\s*['"].+['"]`,
		),
	},
	{
		Category: findings.CategoryDangerousCall,
		Message:  "Dangerous code",
		Enabled:  true,
		Rules: compile(
			`os\.system`,
			`subprocess`,
			`exec\(`,
			`eval\(`,
			`Process\.run`,
			`Runtime\.getRuntime`,
		),
	},
	{
		Category: findings.CategoryBackdoor,
		Message:  "Possible backdoor pattern",
		Enabled:  true,
		Rules: compile(
			`__import__`,
			`compile\(`,
			`globals\(`,
			`base64`,
		),
	},
	{
		Category: findings.CategoryOpenEndpoint,
		Message:  "Open / insecure endpoint",
		Enabled:  true,
		Rules: compile(
			`0\.0\.0\.0`,
			`app\.run\(.*debug\s*=\s*True`,
			`listen\(\d+,\s*['"]0\.0\.0\.0`,
		),
	},
	{
		Category: findings.CategoryBrokenLoop,
		Message:  "Potential infinite loop",
		Enabled:  true,
		Rules: compile(
			`while\s*\(\s*true\s*\)`,
			`while\s+True\s*:`,
			`for\s*\(;;\)`,
		),
	},
	{
		Category: findings.CategoryTodoMarker,
		Message:  "Leftover work marker",
		Enabled:  false,
		Rules: compile(
			`\bTODO\b`,
			`\bFIXME\b`,
			`\bXXX\b`,
		),
	},
	{
		Category: findings.CategoryTrailingWhitespace,
		Message:  "Trailing whitespace",
		Enabled:  false,
		Rules: compile(
			`[ \t]+\r?$`,
		),
	},
}

func compile(patterns ...string) []Rule {
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, Rule{Pattern: p, Regexp: regexp.MustCompile(p)})
	}
	return rules
}

// Catalog is the immutable table of detection categories used by the
// matcher. Build it once per run with New.
type Catalog struct {
	categories []CategoryRules
}

// New returns the built-in catalog with the listed categories toggled.
// Names in enable/disable that match no category are ignored.
func New(enable, disable []string) *Catalog {
	enabled := toSet(enable)
	disabled := toSet(disable)

	categories := make([]CategoryRules, len(builtins))
	copy(categories, builtins)
	for i := range categories {
		name := string(categories[i].Category)
		if _, ok := enabled[name]; ok {
			categories[i].Enabled = true
		}
		if _, ok := disabled[name]; ok {
			categories[i].Enabled = false
		}
	}
	return &Catalog{categories: categories}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Categories returns the enabled categories in catalog order.
func (c *Catalog) Categories() []CategoryRules {
	active := make([]CategoryRules, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.Enabled {
			active = append(active, cat)
		}
	}
	return active
}

// AllCategories returns every category regardless of enablement, in
// catalog order. Used by the rules listing command.
func (c *Catalog) AllCategories() []CategoryRules {
	out := make([]CategoryRules, len(c.categories))
	copy(out, c.categories)
	return out
}
