package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

func sampleFindings() []findings.Finding {
	return []findings.Finding{
		{FilePath: "a.py", Line: 3, Category: findings.CategorySecret, Rule: "AKIA[0-9A-Z]{16}", Language: "python", Message: "Hard-coded API key"},
		{FilePath: "a.py", Line: 7, Category: findings.CategoryPassword, Rule: `(?i)password\s*=`, Language: "python", Message: "Plaintext password"},
		{FilePath: "b.js", Category: findings.CategoryDuplicateBlock, Rule: "duplicate-prefix", Language: "javascript", Message: "Code duplication with a.js"},
	}
}

func TestAggregatorSummaryCounts(t *testing.T) {
	agg := NewAggregator("/repo")
	agg.CountFile(false)
	agg.CountFile(true)
	agg.Append(sampleFindings()...)

	r := agg.Finalize()

	assert.Equal(t, 2, r.TotalFiles)
	assert.Equal(t, 1, r.BinarySkipped)
	assert.Equal(t, 1, r.Summary["SECRET"])
	assert.Equal(t, 1, r.Summary["PASSWORD"])
	assert.Equal(t, 1, r.Summary["DUPLICATE_BLOCK"])
	assert.True(t, r.HasFindings())
	assert.NotEmpty(t, r.RunID)
}

func TestEmptyReport(t *testing.T) {
	agg := NewAggregator("/repo")
	agg.CountFile(false)
	r := agg.Finalize()

	assert.False(t, r.HasFindings())
	assert.Contains(t, r.RenderText(), "No issues found")
}

func TestRenderTextPreservesOrder(t *testing.T) {
	agg := NewAggregator("/repo")
	agg.Append(sampleFindings()...)
	r := agg.Finalize()

	text := r.RenderText()
	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "a.py:3 → [python] Secret: Hard-coded API key", lines[0])
	assert.Equal(t, "a.py:7 → [python] Password: Plaintext password", lines[1])
	assert.Equal(t, "b.js → [javascript] Duplicate Block: Code duplication with a.js", lines[2])
	assert.Contains(t, text, "Summary: 3 finding(s)")
}

func TestRenderMarkdownListsFindings(t *testing.T) {
	agg := NewAggregator("/repo")
	agg.Append(sampleFindings()...)
	r := agg.Finalize()

	md := r.RenderMarkdown()
	assert.True(t, strings.HasPrefix(md, "## Issues Detected"))
	assert.Contains(t, md, "- a.py:3")
	assert.Contains(t, md, r.RunID)
}
