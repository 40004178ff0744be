// Package indexer builds a cross-reference graph (pkg/xref) from a
// source tree, following the four-phase pipeline described in spec
// §4.C: discover files, parse them in parallel, populate the graph in
// batches, then finalize.
package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// ProgressCallback reports progress during a pipeline run.
// phase is one of "discovering", "parsing", "populating".
type ProgressCallback func(current, total int64, phase string)

// Config controls one indexing run.
type Config struct {
	Root       string   // repository root to walk
	IgnoreDirs []string // directory names to prune during discovery
	Workers    int      // parse worker count; <=0 selects runtime.NumCPU()
}

// Result summarizes a completed indexing run.
type Result struct {
	FilesDiscovered int
	FilesIndexed    int
	ParseErrors     int
	SymbolCount     int
	FileCount       int
	Duration        time.Duration
}

// Pipeline drives one end-to-end indexing run into a fresh xref.Graph.
type Pipeline struct {
	config     Config
	logger     *slog.Logger
	onProgress ProgressCallback
}

// New creates a Pipeline. A nil logger falls back to slog.Default().
func New(config Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
		if config.Workers <= 0 {
			config.Workers = 4
		}
	}
	return &Pipeline{config: config, logger: logger}
}

// SetProgressCallback installs an optional progress reporter.
func (p *Pipeline) SetProgressCallback(cb ProgressCallback) {
	p.onProgress = cb
}

func (p *Pipeline) reportProgress(current, total int64, phase string) {
	if p.onProgress != nil {
		p.onProgress(current, total, phase)
	}
}

// Run executes all four phases and returns the populated, finalized
// graph along with a summary of the run.
func (p *Pipeline) Run(ctx context.Context) (*xref.Graph, *Result, error) {
	runStart := time.Now()

	p.logger.Info("indexer.phase.discover", "root", p.config.Root)
	discovered, err := Discover(p.config.Root, p.config.IgnoreDirs)
	if err != nil {
		return nil, nil, fmt.Errorf("discover: %w", err)
	}
	p.reportProgress(int64(len(discovered)), int64(len(discovered)), "discovering")
	p.logger.Info("indexer.phase.discover.complete", "files", len(discovered))

	p.logger.Info("indexer.phase.parse", "files", len(discovered), "workers", p.config.Workers)
	parseStart := time.Now()
	results, parseErrors := extractFilesParallel(ctx, discovered, p.config.Workers, func(current, total int64, phase string) {
		p.reportProgress(current, total, phase)
	})
	p.logger.Info("indexer.phase.parse.complete",
		"files", len(discovered),
		"parse_errors", parseErrors,
		"duration_ms", time.Since(parseStart).Milliseconds(),
	)

	for _, r := range results {
		if r.parseErr != nil {
			parseErrorsTotal.Inc()
			p.logger.Warn("indexer.file.parse_error", "path", r.path, "err", r.parseErr)
			continue
		}
		filesIndexedTotal.Inc()
	}

	// Phase 1 guaranteed a deterministic sort, but keep the explicit
	// invariant here since Phase 3 batching correctness depends on it.
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	batchSize := BatchSize(len(discovered))
	p.logger.Info("indexer.phase.populate", "batch_size", batchSize)
	populateStart := time.Now()

	g := xref.New()
	idx := newShortNameIndex()
	populated := 0
	for start := 0; start < len(results); start += batchSize {
		end := start + batchSize
		if end > len(results) {
			end = len(results)
		}
		batch := results[start:end]
		validBatch := make([]fileResult, 0, len(batch))
		for _, r := range batch {
			if r.parseErr == nil {
				validBatch = append(validBatch, r)
			}
		}
		populateBatch(g, idx, validBatch)
		populated += len(validBatch)
		p.reportProgress(int64(populated), int64(len(discovered)), "populating")
	}
	symbolsIndexedTotal.Add(float64(g.SymbolCount()))
	p.logger.Info("indexer.phase.populate.complete",
		"symbols", g.SymbolCount(),
		"files", g.FileCount(),
		"duration_ms", time.Since(populateStart).Milliseconds(),
	)

	g.Finalize()
	p.logger.Info("indexer.phase.finalize.complete")

	result := &Result{
		FilesDiscovered: len(discovered),
		FilesIndexed:    len(discovered) - parseErrors,
		ParseErrors:     parseErrors,
		SymbolCount:     g.SymbolCount(),
		FileCount:       g.FileCount(),
		Duration:        time.Since(runStart),
	}

	p.logger.Info("indexer.run.complete",
		"files_discovered", result.FilesDiscovered,
		"files_indexed", result.FilesIndexed,
		"parse_errors", result.ParseErrors,
		"symbols", result.SymbolCount,
		"total_duration_ms", result.Duration.Milliseconds(),
	)

	return g, result, nil
}

// DefaultIgnoreDirs are pruned during discovery unless overridden.
func DefaultIgnoreDirs() []string {
	return []string{"node_modules", "vendor", "build", "dist", ".git"}
}
