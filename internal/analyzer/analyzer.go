// Package analyzer runs the per-file pipeline: classification, line-aware
// pattern matching, duplicate fingerprinting and external syntax
// validation. One file in, findings out; nothing in here aborts a scan.
package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/classify"
	"github.com/polyscan-dev/polyscan/internal/dedup"
	"github.com/polyscan-dev/polyscan/internal/findings"
	"github.com/polyscan-dev/polyscan/internal/match"
	"github.com/polyscan-dev/polyscan/internal/validator"
)

// Result carries everything one file contributed to the scan. The
// fingerprint is resolved against the shared index later, in enumeration
// order, so duplicate findings stay deterministic under parallel analysis.
type Result struct {
	Path          string
	Language      string
	Binary        bool
	Findings      []findings.Finding
	Fingerprint   string
	Fingerprinted bool
}

// Analyzer orchestrates the per-file collaborators.
type Analyzer struct {
	classifier *classify.Classifier
	matcher    *match.Matcher
	validators *validator.Registry
	logger     hclog.Logger

	// MaxFileSize, when positive, skips files larger than this many
	// bytes without reading them.
	MaxFileSize int64
}

// New assembles an Analyzer. validators may be nil to disable syntax
// validation entirely.
func New(classifier *classify.Classifier, matcher *match.Matcher, validators *validator.Registry, logger hclog.Logger) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		matcher:    matcher,
		validators: validators,
		logger:     logger,
	}
}

// Analyze inspects one file. relPath is the slash-separated path used in
// findings; root+relPath locates the file on disk. Binary files are never
// opened; unreadable files produce an empty result and are skipped
// silently.
func (a *Analyzer) Analyze(ctx context.Context, root, relPath string) Result {
	result := Result{Path: relPath}

	isBinary, lang := a.classifier.Classify(relPath)
	result.Language = lang.String()
	if isBinary {
		result.Binary = true
		return result
	}

	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	if a.MaxFileSize > 0 {
		if info, err := os.Stat(fullPath); err == nil && info.Size() > a.MaxFileSize {
			a.logger.Debug("skipping oversized file", "path", relPath, "size", info.Size())
			return result
		}
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		a.logger.Debug("skipping unreadable file", "path", relPath, "error", err)
		return result
	}

	// Lossy decode: invalid byte sequences are replaced, never fatal.
	content := strings.ToValidUTF8(string(data), "�")
	lines := strings.Split(content, "\n")

	result.Findings = a.matcher.MatchLines(relPath, lang, lines)

	if fp, ok := dedup.Fingerprint(lines); ok {
		result.Fingerprint = fp
		result.Fingerprinted = true
	}

	if a.validators != nil && a.validators.Supports(lang) {
		switch res := a.validators.Validate(ctx, lang, fullPath); res.Outcome {
		case validator.Failed:
			message := "Syntax error"
			if res.Diagnostic != "" {
				message = "Syntax error: " + res.Diagnostic
			}
			result.Findings = append(result.Findings, findings.Finding{
				FilePath: relPath,
				Category: findings.CategorySyntaxError,
				Rule:     "external-validator",
				Language: lang.String(),
				Message:  message,
			})
		case validator.Unavailable:
			a.logger.Debug("validator unavailable", "path", relPath, "language", lang)
		}
	}

	return result
}
