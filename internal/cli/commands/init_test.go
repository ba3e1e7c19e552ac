package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/config"
	"github.com/leapstack-labs/dotenv-linter/internal/testutil"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T, dir string) // setup before running
		args     []string
		wantErr  error
	}{
		{
			name: "init empty directory",
			args: []string{},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, ".dotenv-linter.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: ErrConfigExists,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, ".dotenv-linter.yaml"), []byte("existing"), 0600)
			},
			args: []string{"--force"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetConfig()
			tmpDir := t.TempDir()
			testutil.Chdir(t, tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			_, err = os.Stat(filepath.Join(tmpDir, ".dotenv-linter.yaml"))
			assert.NoError(t, err, "expected config file to exist")
			assert.Contains(t, buf.String(), "Created")
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
}

func TestInitCreatesLoadableConfig(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "project")

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{target})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(target, ".dotenv-linter.yaml"))
	require.NoError(t, err, "failed to read .dotenv-linter.yaml")

	for _, want := range []string{"# dotenv-linter configuration", "skip: []", "exclude: []", "recursive: false", "output: auto"} {
		assert.Contains(t, string(content), want)
	}

	cfg, err := config.LoadConfig(filepath.Join(target, ".dotenv-linter.yaml"), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Skip)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	config.ResetConfig()
}
