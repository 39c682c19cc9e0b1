package findings

import (
	"fmt"
	"strings"
)

// Category is a closed set of detection classes. The catalog assigns
// patterns to categories; the analyzer emits DuplicateBlock and SyntaxError
// itself.
type Category string

const (
	CategorySecret             Category = "SECRET"
	CategoryPassword           Category = "PASSWORD"
	CategoryDangerousCall      Category = "DANGEROUS_CALL"
	CategoryBackdoor           Category = "BACKDOOR"
	CategoryOpenEndpoint       Category = "OPEN_ENDPOINT"
	CategoryBrokenLoop         Category = "BROKEN_LOOP"
	CategoryTodoMarker         Category = "TODO_MARKER"
	CategoryTrailingWhitespace Category = "TRAILING_WHITESPACE"
	CategoryDuplicateBlock     Category = "DUPLICATE_BLOCK"
	CategorySyntaxError        Category = "SYNTAX_ERROR"
)

// Label returns the human-readable form of a category name,
// e.g. "DANGEROUS_CALL" -> "Dangerous Call".
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Finding is one reported instance of a detected pattern or condition.
// Line is 1-based; zero means the finding applies to the whole file.
// Findings are never mutated after creation.
type Finding struct {
	FilePath string   `json:"file_path"`
	Line     int      `json:"line,omitempty"`
	Category Category `json:"category"`
	Rule     string   `json:"rule"`
	Language string   `json:"language"`
	Message  string   `json:"message"`
}

// String renders the finding in the report's one-line format.
func (f Finding) String() string {
	location := f.FilePath
	if f.Line > 0 {
		location = fmt.Sprintf("%s:%d", f.FilePath, f.Line)
	}
	return fmt.Sprintf("%s → [%s] %s: %s", location, f.Language, f.Category.Label(), f.Message)
}
