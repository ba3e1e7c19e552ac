package output_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/output"
	"github.com/leapstack-labs/dotenv-linter/internal/cli/testutil"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/source"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in    string
		want  output.OutputMode
		valid bool
	}{
		{"", output.ModeAuto, true},
		{"auto", output.ModeAuto, true},
		{"TEXT", output.ModeText, true},
		{"md", output.ModeMarkdown, true},
		{"markdown", output.ModeMarkdown, true},
		{"json", output.ModeJSON, true},
		{"yaml", output.OutputMode("yaml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := output.Mode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.Valid())
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  output.OutputMode
		isTTY bool
		want  output.OutputMode
	}{
		{"auto on tty", output.ModeAuto, true, output.ModeText},
		{"auto piped", output.ModeAuto, false, output.ModeMarkdown},
		{"explicit text piped", output.ModeText, false, output.ModeText},
		{"explicit json on tty", output.ModeJSON, true, output.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.NewTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func sampleResults() []source.FileResult {
	return []source.FileResult{
		{
			Path:  ".env",
			Lines: 3,
			Warnings: []lint.Warning{
				{File: ".env", Line: 2, Kind: lint.DuplicatedKey, Message: "The FOO key is duplicated"},
			},
		},
		{Path: ".env.clean", Lines: 2},
	}
}

func TestRenderLint_Markdown(t *testing.T) {
	r := testutil.NewTestRendererAuto()
	require.NoError(t, r.RenderLint(sampleResults(), false))

	out := r.Output()
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "## .env\n")
	assert.Contains(t, out, "- `.env:2` **DuplicatedKey**: The FOO key is duplicated")
	assert.NotContains(t, out, ".env.clean")
	assert.Contains(t, out, "Found 1 problem in 1 file")
}

func TestRenderLint_Text(t *testing.T) {
	r := testutil.NewTestRendererText()
	r.SetNoColor(true)
	require.NoError(t, r.RenderLint(sampleResults(), false))

	out := r.Output()
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, ".env:2 DuplicatedKey: The FOO key is duplicated")
	assert.Contains(t, out, "Found 1 problem in 1 file")
}

func TestRenderLint_Quiet(t *testing.T) {
	r := testutil.NewTestRendererMarkdown()
	require.NoError(t, r.RenderLint(sampleResults(), true))
	assert.NotContains(t, r.Output(), "Found")

	r.Reset()
	require.NoError(t, r.RenderLint([]source.FileResult{{Path: ".env"}}, true))
	assert.Empty(t, r.Output())
}

func TestRenderLint_NoProblems(t *testing.T) {
	r := testutil.NewTestRendererMarkdown()
	require.NoError(t, r.RenderLint([]source.FileResult{{Path: ".env"}, {Path: ".env.test"}}, false))
	assert.Contains(t, r.Output(), "No problems found (2 files checked)")
}

func TestRenderLint_JSON(t *testing.T) {
	r := testutil.NewTestRendererJSON()
	require.NoError(t, r.RenderLint(sampleResults(), false))
	testutil.AssertNoANSI(t, r.Output())

	var doc struct {
		Files []struct {
			Path     string `json:"path"`
			Warnings []struct {
				File    string `json:"file"`
				Line    int    `json:"line"`
				Check   string `json:"check"`
				Message string `json:"message"`
			} `json:"warnings"`
		} `json:"files"`
		Summary output.LintSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(r.Out.Bytes(), &doc))

	require.Len(t, doc.Files, 2)
	require.Len(t, doc.Files[0].Warnings, 1)
	assert.Equal(t, "DuplicatedKey", doc.Files[0].Warnings[0].Check)
	assert.Equal(t, 2, doc.Files[0].Warnings[0].Line)
	assert.NotNil(t, doc.Files[1].Warnings)
	assert.Empty(t, doc.Files[1].Warnings)
	assert.Equal(t, output.LintSummary{FilesChecked: 2, FilesWithWarnings: 1, Warnings: 1}, doc.Summary)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Checks", output.FormatHeader(1, "Checks"))
	assert.Equal(t, "## .env", output.FormatHeader(2, ".env"))
	assert.Equal(t, "# x", output.FormatHeader(0, "x"))
	assert.Equal(t, "- **Summary:** ok", output.FormatKeyValue("Summary", "ok"))
}
