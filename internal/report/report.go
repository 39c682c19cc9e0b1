// Package report owns the finding collection. The aggregator collects in
// emission order, tallies per-category counts and freezes the result; a
// finalized Report is never mutated again and the process exit decision is
// purely "is it empty".
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/polyscan-dev/polyscan/internal/findings"
)

// RepoInfo is the optional version-control context of the scanned tree.
type RepoInfo struct {
	Remote string `json:"remote,omitempty"`
	Branch string `json:"branch,omitempty"`
	Commit string `json:"commit,omitempty"`
}

// Report is the finalized outcome of one scan run.
type Report struct {
	RunID         string             `json:"run_id"`
	Root          string             `json:"root"`
	StartedAt     time.Time          `json:"started_at"`
	Duration      time.Duration      `json:"duration_ns"`
	TotalFiles    int                `json:"total_files"`
	BinarySkipped int                `json:"binary_skipped"`
	Repo          *RepoInfo          `json:"repo,omitempty"`
	Findings      []findings.Finding `json:"findings"`
	Summary       map[string]int     `json:"summary"`
}

// HasFindings reports whether the scan flagged anything. This is the CI
// integration point: an empty report means exit code 0.
func (r *Report) HasFindings() bool {
	return len(r.Findings) > 0
}

// Aggregator builds a Report. Not safe for concurrent use; the runner
// appends in enumeration order from a single goroutine.
type Aggregator struct {
	report *Report
}

// NewAggregator starts a run rooted at root, stamped with a fresh run ID.
func NewAggregator(root string) *Aggregator {
	return &Aggregator{report: &Report{
		RunID:     uuid.NewString(),
		Root:      root,
		StartedAt: time.Now().UTC(),
		Summary:   make(map[string]int),
	}}
}

// SetRepoInfo attaches version-control context to the report.
func (a *Aggregator) SetRepoInfo(info *RepoInfo) {
	a.report.Repo = info
}

// CountFile records one analyzed file; binary marks files skipped unread.
func (a *Aggregator) CountFile(binary bool) {
	a.report.TotalFiles++
	if binary {
		a.report.BinarySkipped++
	}
}

// Append adds findings preserving their order.
func (a *Aggregator) Append(found ...findings.Finding) {
	for _, f := range found {
		a.report.Findings = append(a.report.Findings, f)
		a.report.Summary[string(f.Category)]++
	}
}

// Finalize freezes and returns the report. The aggregator must not be
// used afterwards.
func (a *Aggregator) Finalize() *Report {
	r := a.report
	r.Duration = time.Since(r.StartedAt)
	a.report = nil
	return r
}
