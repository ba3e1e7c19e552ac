package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"skip", "exclude", "recursive", "quiet", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "r", cmd.Flags().Lookup("recursive").Shorthand)
	assert.Equal(t, "q", cmd.Flags().Lookup("quiet").Shorthand)
	assert.Equal(t, "w", cmd.Flags().Lookup("watch").Shorthand)
}

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.Aliases, "checks")
}

func TestParseSkipList(t *testing.T) {
	tests := []struct {
		name      string
		in        []string
		wantLen   int
		errSubstr string
	}{
		{name: "empty", in: nil},
		{name: "known names", in: []string{"LowercaseKey", " UnorderedKey "}, wantLen: 2},
		{name: "blank entries ignored", in: []string{"", "LowercaseKey"}, wantLen: 1},
		{name: "unknown name", in: []string{"LowercaseKey", "Nope"}, errSubstr: `unknown check "Nope"`},
		{name: "case sensitive", in: []string{"lowercasekey"}, errSubstr: "lowercasekey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSkipList(tt.in)
			if tt.errSubstr != "" {
				assert.ErrorContains(t, err, tt.errSubstr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestCheckNames(t *testing.T) {
	names := checkNames()
	assert.Len(t, names, 13)
	assert.Equal(t, "DuplicatedKey", names[0])
	assert.Contains(t, names, "ValueWithoutQuotes")
}
