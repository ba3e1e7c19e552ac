package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaultCommand(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: []string{}, want: []string{"lint"}},
		{name: "paths only", args: []string{".env", "api/.env"}, want: []string{"lint", ".env", "api/.env"}},
		{name: "global flag only", args: []string{"-o", "json"}, want: []string{"lint", "-o", "json"}},
		{name: "explicit lint", args: []string{"lint", ".env"}, want: []string{"lint", ".env"}},
		{name: "other command", args: []string{"list"}, want: []string{"list"}},
		{name: "help", args: []string{"--help"}, want: []string{"--help"}},
		{name: "version flag", args: []string{"--version"}, want: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withDefaultCommand(root, tt.args))
		})
	}
}

func TestNewRootCmd_Flags(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"config", "verbose", "output", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "flag %q should exist", name)
	}

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"lint", "list", "init", "version", "completion"})
}
