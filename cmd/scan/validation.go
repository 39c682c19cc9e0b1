package scan

import (
	"fmt"
	"strings"
)

// validateScanArgs validates the scan command options and resolves the
// positional root argument.
func validateScanArgs(options *RunOptions, args []string) error {
	var issues []string

	switch len(args) {
	case 0:
		options.Root = "."
	case 1:
		options.Root = args[0]
	default:
		issues = append(issues, fmt.Sprintf("unexpected positional arguments: %s", strings.Join(args[1:], ", ")))
	}

	switch options.Format {
	case "text", "json", "sarif":
	default:
		issues = append(issues, fmt.Sprintf("invalid report format: %q", options.Format))
	}

	if options.Workers < 0 {
		issues = append(issues, "'jobs' cannot be negative")
	}
	if options.Timeout < 0 {
		issues = append(issues, "'timeout' cannot be negative")
	}

	if len(issues) > 0 {
		return fmt.Errorf(strings.Join(issues, "; "))
	}

	return nil
}
