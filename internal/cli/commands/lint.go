package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/checks"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/source"
)

// ErrWarningsFound is returned by lint when at least one warning was reported.
var ErrWarningsFound = errors.New("warnings found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths     []string // Files or directories to lint
	Skip      []string // Check names to skip
	Exclude   []string // Paths to leave out
	Recursive bool     // Descend into subdirectories
	Quiet     bool     // Only print warnings
	Watch     bool     // Re-lint on change
}

// lintSettings is the merged view of config file, env and flags.
type lintSettings struct {
	paths       []string
	skip        []lint.LintKind
	exclude     []string
	recursive   bool
	quiet       bool
	concurrency int
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check env files for problems",
		Long: `Check .env files for problems such as duplicated keys, missing values,
lowercase keys and unordered keys.

Directories are searched for files named .env, .env.* or *.env.
Checks can be switched off for a range of lines with control comments:

  # dotenv-linter:off LowercaseKey, UnorderedKey
  ...
  # dotenv-linter:on LowercaseKey

A control comment without names switches every check.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint env files in the current directory
  dotenv-linter lint

  # Lint specific files
  dotenv-linter lint .env .env.production

  # Lint a tree, skipping some checks
  dotenv-linter lint -r --skip UnorderedKey,LowercaseKey ./services

  # Output as JSON
  dotenv-linter lint -o json

  # Re-lint whenever a file changes
  dotenv-linter lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Skip, "skip", nil, "Checks to skip (comma separated)")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Files or directories to exclude")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Search directories recursively")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print warnings")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint when env files change")

	_ = cmd.RegisterFlagCompletionFunc("skip", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return checkNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd)

	settings, err := resolveLintSettings(cmd, cmdCtx, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return watchAndLint(ctx, cmdCtx, settings)
	}

	results, err := lintOnce(ctx, cmdCtx, settings)
	if err != nil {
		return err
	}
	if err := cmdCtx.Renderer.RenderLint(results, settings.quiet); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	if source.CountWarnings(results) > 0 {
		return ErrWarningsFound
	}
	return nil
}

// resolveLintSettings merges the loaded configuration with flags set on cmd.
// Flags win; an unknown check name in --skip is an error.
func resolveLintSettings(cmd *cobra.Command, cmdCtx *CommandContext, opts *LintOptions) (lintSettings, error) {
	cfg := cmdCtx.Cfg
	settings := lintSettings{
		paths:       opts.Paths,
		skip:        cfg.Skip,
		exclude:     cfg.Exclude,
		recursive:   cfg.Recursive,
		quiet:       cfg.Quiet,
		concurrency: cfg.Concurrency,
	}
	if len(settings.paths) == 0 {
		settings.paths = []string{"."}
	}

	flags := cmd.Flags()
	if flags.Changed("skip") {
		skip, err := parseSkipList(opts.Skip)
		if err != nil {
			return settings, err
		}
		settings.skip = skip
	}
	if flags.Changed("exclude") {
		settings.exclude = opts.Exclude
	}
	if flags.Changed("recursive") {
		settings.recursive = opts.Recursive
	}
	if flags.Changed("quiet") {
		settings.quiet = opts.Quiet
	}

	return settings, nil
}

// parseSkipList converts check names to kinds.
func parseSkipList(names []string) ([]lint.LintKind, error) {
	kinds := make([]lint.LintKind, 0, len(names))
	var unknown []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kind, ok := lint.ParseLintKind(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		kinds = append(kinds, kind)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown check %s: run 'dotenv-linter list' to see available checks",
			strings.Join(quoteAll(unknown), ", "))
	}
	return kinds, nil
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return quoted
}

// lintOnce discovers and lints every file once.
func lintOnce(ctx context.Context, cmdCtx *CommandContext, settings lintSettings) ([]source.FileResult, error) {
	files, err := source.Discover(ctx, settings.paths, source.DiscoverOptions{
		Recursive: settings.recursive,
		Exclude:   settings.exclude,
	})
	if err != nil {
		return nil, err
	}
	cmdCtx.Logger.Debug("discovered env files", "count", len(files), "paths", settings.paths)

	analyzer := checks.NewAnalyzer(checks.NewConfig().Skip(settings.skip...), cmdCtx.Logger)
	runner := source.NewRunner(analyzer, cmdCtx.Logger)
	runner.Concurrency = settings.concurrency

	return runner.Run(ctx, files)
}

func checkNames() []string {
	kinds := checks.AvailableNames()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
