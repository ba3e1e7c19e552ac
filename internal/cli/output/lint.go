package output

import (
	"fmt"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/source"
)

// LintSummary counts the results of a lint run.
type LintSummary struct {
	FilesChecked      int `json:"files_checked"`
	FilesWithWarnings int `json:"files_with_warnings"`
	Warnings          int `json:"warnings"`
}

// LintFileResult is the JSON form of one linted file.
type LintFileResult struct {
	Path     string         `json:"path"`
	Warnings []lint.Warning `json:"warnings"`
}

// LintOutput is the JSON document written by `lint --output json`.
type LintOutput struct {
	Files   []LintFileResult `json:"files"`
	Summary LintSummary      `json:"summary"`
}

// Summarize counts files and warnings.
func Summarize(results []source.FileResult) LintSummary {
	summary := LintSummary{FilesChecked: len(results)}
	for _, res := range results {
		if len(res.Warnings) > 0 {
			summary.FilesWithWarnings++
			summary.Warnings += len(res.Warnings)
		}
	}
	return summary
}

// RenderLint writes lint results in the effective mode. In quiet mode only
// warnings are written; the summary and success line are left out.
func (r *Renderer) RenderLint(results []source.FileResult, quiet bool) error {
	summary := Summarize(results)

	if r.EffectiveMode() == ModeJSON {
		doc := LintOutput{Files: make([]LintFileResult, 0, len(results)), Summary: summary}
		for _, res := range results {
			warnings := res.Warnings
			if warnings == nil {
				warnings = []lint.Warning{}
			}
			doc.Files = append(doc.Files, LintFileResult{Path: res.Path, Warnings: warnings})
		}
		return r.JSON(doc)
	}

	markdown := r.EffectiveMode() == ModeMarkdown
	for _, res := range results {
		if len(res.Warnings) == 0 {
			continue
		}
		if markdown {
			r.Println(FormatHeader(2, res.Path))
			r.Println("")
			for _, w := range res.Warnings {
				r.Printf("- `%s:%d` **%s**: %s\n", res.Path, w.Line, w.Kind, w.Message)
			}
		} else {
			r.Println(r.styles.FilePath.Render(res.Path))
			for _, w := range res.Warnings {
				r.Printf("%s %s: %s\n",
					r.styles.Muted.Render(fmt.Sprintf("%s:%d", res.Path, w.Line)),
					r.styles.Check.Render(w.Kind.String()),
					w.Message,
				)
			}
		}
		r.Println("")
	}

	if quiet {
		return nil
	}

	if summary.Warnings == 0 {
		r.Success(fmt.Sprintf("No problems found (%s checked)", plural(summary.FilesChecked, "file")))
		return nil
	}

	line := fmt.Sprintf("Found %s in %s",
		plural(summary.Warnings, "problem"),
		plural(summary.FilesWithWarnings, "file"),
	)
	if markdown {
		r.Println(FormatKeyValue("Summary", line))
		return nil
	}
	r.Println(r.styles.Warning.Render(line))
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
