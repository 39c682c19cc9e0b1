package report

import (
	"fmt"
	"sort"
	"strings"
)

// RenderText serializes the report as the human-readable sink format:
// one line per finding, then a per-category summary.
func (r *Report) RenderText() string {
	var b strings.Builder

	if !r.HasFindings() {
		fmt.Fprintf(&b, "No issues found in %s (%d files scanned)\n", r.Root, r.TotalFiles)
		return b.String()
	}

	for _, f := range r.Findings {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Summary: %d finding(s) across %d file(s)\n", len(r.Findings), r.TotalFiles)
	for _, category := range sortedCategories(r.Summary) {
		fmt.Fprintf(&b, "  %s: %d\n", category, r.Summary[category])
	}
	return b.String()
}

// RenderMarkdown serializes the report as the issue body published to the
// tracker sink.
func (r *Report) RenderMarkdown() string {
	var b strings.Builder
	b.WriteString("## Issues Detected (Language-Inclusive Scan)\n\n")
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "- %s\n", f.String())
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "_%d finding(s) across %d scanned file(s), run `%s`_\n", len(r.Findings), r.TotalFiles, r.RunID)
	return b.String()
}

func sortedCategories(summary map[string]int) []string {
	categories := make([]string, 0, len(summary))
	for c := range summary {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
