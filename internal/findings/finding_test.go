package findings

import "testing"

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategorySecret, "Secret"},
		{CategoryDangerousCall, "Dangerous Call"},
		{CategoryOpenEndpoint, "Open Endpoint"},
		{CategoryTrailingWhitespace, "Trailing Whitespace"},
		{CategorySyntaxError, "Syntax Error"},
	}

	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.expected {
			t.Errorf("Label(%s): expected %q, got %q", tt.category, tt.expected, got)
		}
	}
}

func TestFindingStringWithLine(t *testing.T) {
	f := Finding{
		FilePath: "app/main.py",
		Line:     5,
		Category: CategorySecret,
		Rule:     `AKIA[0-9A-Z]{16}`,
		Language: "python",
		Message:  "Hard-coded API key",
	}
	expected := "app/main.py:5 → [python] Secret: Hard-coded API key"
	if got := f.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestFindingStringFileWide(t *testing.T) {
	f := Finding{
		FilePath: "lib/util.js",
		Category: CategoryDuplicateBlock,
		Language: "javascript",
		Message:  "Code duplication with lib/helper.js",
	}
	expected := "lib/util.js → [javascript] Duplicate Block: Code duplication with lib/helper.js"
	if got := f.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
