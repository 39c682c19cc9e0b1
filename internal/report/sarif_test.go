package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

func TestToSarifRulesAndResults(t *testing.T) {
	agg := NewAggregator("/repo")
	agg.Append(
		findings.Finding{FilePath: "a.py", Line: 3, Category: findings.CategorySecret, Language: "python", Message: "Hard-coded API key"},
		findings.Finding{FilePath: "a.py", Line: 9, Category: findings.CategorySecret, Language: "python", Message: "Hard-coded API key"},
		findings.Finding{FilePath: "b.js", Category: findings.CategoryDuplicateBlock, Language: "javascript", Message: "Code duplication with a.js"},
	)
	r := agg.Finalize()

	doc, err := r.ToSarif()
	require.NoError(t, err)
	require.Len(t, doc.Runs, 1)

	run := doc.Runs[0]
	assert.Equal(t, "polyscan", run.Tool.Driver.Name)
	// One rule per category, not per finding.
	assert.Len(t, run.Tool.Driver.Rules, 2)
	require.Len(t, run.Results, 3)

	first := run.Results[0]
	require.NotNil(t, first.RuleID)
	assert.Equal(t, "SECRET", *first.RuleID)
	require.Len(t, first.Locations, 1)
	region := first.Locations[0].PhysicalLocation.Region
	require.NotNil(t, region)
	require.NotNil(t, region.StartLine)
	assert.Equal(t, 3, *region.StartLine)

	// File-wide findings carry no region.
	dup := run.Results[2]
	assert.Nil(t, dup.Locations[0].PhysicalLocation.Region)
}

func TestToSarifEmptyReport(t *testing.T) {
	r := NewAggregator("/repo").Finalize()
	doc, err := r.ToSarif()
	require.NoError(t, err)
	require.Len(t, doc.Runs, 1)
	assert.Empty(t, doc.Runs[0].Results)
}
