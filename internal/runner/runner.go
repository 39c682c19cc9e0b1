// Package runner drives a scan: enumerate, analyze on a bounded worker
// pool, then finalize in enumeration order. Per-file analysis is
// embarrassingly parallel; only the fingerprint index and the aggregator
// are shared, and both are touched from the single finalize pass so report
// order and duplicate attribution never depend on goroutine scheduling.
package runner

import (
	"context"
	"runtime"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/analyzer"
	"github.com/polyscan-dev/polyscan/internal/dedup"
	"github.com/polyscan-dev/polyscan/internal/report"
	"github.com/polyscan-dev/polyscan/internal/walker"
)

// Runner owns one scan run's collaborators.
type Runner struct {
	walker   *walker.Walker
	analyzer *analyzer.Analyzer
	workers  int
	logger   hclog.Logger
}

// New builds a Runner. workers <= 0 means one worker per CPU.
func New(w *walker.Walker, a *analyzer.Analyzer, workers int, logger hclog.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{walker: w, analyzer: a, workers: workers, logger: logger}
}

// Run scans the tree under root and returns the finalized report. repo may
// be nil when the tree has no version-control context. The only error is a
// bad root; everything below that degrades per-file.
func (r *Runner) Run(ctx context.Context, root string, repo *report.RepoInfo) (*report.Report, error) {
	paths, err := r.walker.Walk(root)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("enumeration complete", "files", len(paths), "workers", r.workers)

	results := make([]analyzer.Result, len(paths))

	guard := make(chan struct{}, r.workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		guard <- struct{}{}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = r.analyzer.Analyze(ctx, root, path)
			<-guard
		}(i, path)
	}
	wg.Wait()

	// Finalize sequentially in enumeration order: the fingerprint index
	// must see files in walker order so the first-enumerated file owns
	// each fingerprint no matter which worker finished first.
	index := dedup.NewIndex()
	agg := report.NewAggregator(root)
	agg.SetRepoInfo(repo)
	for _, res := range results {
		agg.CountFile(res.Binary)
		agg.Append(res.Findings...)
		if res.Fingerprinted {
			if dup := index.Check(res.Path, res.Language, res.Fingerprint); dup != nil {
				agg.Append(*dup)
			}
		}
	}

	rep := agg.Finalize()
	r.logger.Info("scan finished", "files", rep.TotalFiles, "findings", len(rep.Findings))
	return rep, nil
}
