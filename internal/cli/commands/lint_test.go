package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/config"
	"github.com/leapstack-labs/dotenv-linter/internal/testutil"
)

func runLintCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewLintCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestLintCommand(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		args      []string
		wantErr   error
		errSubstr string
		wantOut   []string
		notOut    []string
	}{
		{
			name:    "clean file",
			files:   map[string]string{".env": "A=1\nB=2\n"},
			wantOut: []string{"No problems found (1 file checked)"},
		},
		{
			name:    "duplicated key",
			files:   map[string]string{".env": "FOO=1\nFOO=2\n"},
			wantErr: ErrWarningsFound,
			wantOut: []string{"**DuplicatedKey**: The FOO key is duplicated", "Found 1 problem in 1 file"},
		},
		{
			name:  "skip flag",
			files: map[string]string{".env": "FOO=1\nFOO=2\n"},
			args:  []string{"--skip", "DuplicatedKey"},
		},
		{
			name:      "unknown skip name",
			files:     map[string]string{".env": "A=1\n"},
			args:      []string{"--skip", "Typo"},
			errSubstr: `unknown check "Typo"`,
		},
		{
			name: "control comment disables a check",
			files: map[string]string{".env": "# dotenv-linter:off LowercaseKey\nfoo=1\n# dotenv-linter:on LowercaseKey\nbar=2\n"},
			wantErr: ErrWarningsFound,
			wantOut: []string{"The bar key should be in uppercase"},
			notOut:  []string{"The foo key"},
		},
		{
			name: "non env files ignored",
			files: map[string]string{
				".env":      "A=1\n",
				"notes.txt": "lower=case",
			},
			wantOut: []string{"1 file checked"},
		},
		{
			name: "recursive",
			files: map[string]string{
				".env":         "A=1\n",
				"svc/.env.dev": "a=1\n",
			},
			args:    []string{"-r"},
			wantErr: ErrWarningsFound,
			wantOut: []string{"The a key should be in uppercase"},
		},
		{
			name: "quiet omits summary",
			files: map[string]string{
				".env": "FOO=1\nFOO=2\n",
			},
			args:    []string{"-q"},
			wantErr: ErrWarningsFound,
			wantOut: []string{"DuplicatedKey"},
			notOut:  []string{"Found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.EnvTree(t, tt.files)
			args := append(append([]string{}, tt.args...), dir)

			out, err := runLintCommand(t, args...)
			switch {
			case tt.errSubstr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}

			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.notOut {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestLintCommand_ExcludeAndExplicitFiles(t *testing.T) {
	dir := testutil.EnvTree(t, map[string]string{
		".env":       "A=1\n",
		".env.local": "a=1\n",
		"custom":     "B=2\n",
	})

	out, err := runLintCommand(t, "--exclude", filepath.Join(dir, ".env.local"), dir, filepath.Join(dir, "custom"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 files checked")
}

func TestLintCommand_MissingPath(t *testing.T) {
	_, err := runLintCommand(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWarningsFound)
}
