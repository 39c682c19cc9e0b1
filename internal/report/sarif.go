package report

import (
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

const informationURI = "https://github.com/polyscan-dev/polyscan"

// ToSarif converts the report into a SARIF 2.1.0 document with one rule
// per category and one result per finding.
func (r *Report) ToSarif() (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("polyscan", informationURI)

	seenRules := map[string]bool{}
	for _, f := range r.Findings {
		ruleID := string(f.Category)
		if !seenRules[ruleID] {
			run.AddRule(ruleID).
				WithDescription(f.Category.Label()).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: categoryLevel(f.Category),
				})
			seenRules[ruleID] = true
		}

		physical := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.FilePath))
		if f.Line > 0 {
			physical = physical.WithRegion(sarif.NewRegion().WithStartLine(f.Line))
		}
		location := sarif.NewLocation().WithPhysicalLocation(physical)

		result := sarif.NewRuleResult(ruleID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(categoryLevel(f.Category)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	doc.AddRun(run)
	return doc, nil
}

func categoryLevel(c findings.Category) string {
	switch c {
	case findings.CategorySecret, findings.CategoryPassword, findings.CategoryBackdoor:
		return "error"
	case findings.CategoryDangerousCall, findings.CategoryOpenEndpoint, findings.CategorySyntaxError:
		return "warning"
	default:
		return "note"
	}
}
