package source

import (
	"context"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/checks"
)

// FileResult holds the warnings found in one file.
type FileResult struct {
	Path     string         `json:"path"`
	Lines    int            `json:"lines"`
	Warnings []lint.Warning `json:"warnings"`
}

// Runner lints files in parallel.
type Runner struct {
	Analyzer    *checks.Analyzer
	Concurrency int // Max files linted at once; 0 means GOMAXPROCS
	Logger      *slog.Logger
}

// NewRunner creates a runner around an analyzer.
func NewRunner(analyzer *checks.Analyzer, logger *slog.Logger) *Runner {
	if analyzer == nil {
		analyzer = checks.NewAnalyzer(nil, logger)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{Analyzer: analyzer, Logger: logger}
}

// Run lints every file and returns one result per file, sorted by path.
// The first read error cancels the remaining work and is returned.
func (r *Runner) Run(ctx context.Context, files []string) ([]FileResult, error) {
	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, path := range files {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			lines, err := ReadLines(path)
			if err != nil {
				return err
			}

			r.Logger.Debug("linting file", "file", path, "lines", len(lines))
			results[i] = FileResult{
				Path:     path,
				Lines:    len(lines),
				Warnings: r.Analyzer.Analyze(lines),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// CountWarnings returns the total number of warnings across results.
func CountWarnings(results []FileResult) int {
	total := 0
	for _, r := range results {
		total += len(r.Warnings)
	}
	return total
}
