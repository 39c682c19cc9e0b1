package scan

import (
	"encoding/json"
	"fmt"

	"github.com/polyscan-dev/polyscan/internal/report"
)

// serializeReport renders the report in the requested output format.
func serializeReport(rep *report.Report, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(rep.RenderText()), nil
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return append(data, '\n'), nil
	case "sarif":
		doc, err := rep.ToSarif()
		if err != nil {
			return nil, fmt.Errorf("failed to convert report to SARIF: %w", err)
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal SARIF report: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}
