package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(number, total int, raw string) LineEntry {
	return LineEntry{Number: number, File: FileEntry{Path: ".env", TotalLines: total}, Raw: raw}
}

func TestLineEntry_Classification(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantBlank   bool
		wantComment bool
	}{
		{name: "empty", raw: "", wantBlank: true},
		{name: "whitespace", raw: " \t ", wantBlank: true},
		{name: "assignment", raw: "FOO=BAR"},
		{name: "comment", raw: "# note", wantComment: true},
		{name: "indented comment", raw: "   # note", wantComment: true},
		{name: "hash in value", raw: "FOO=#bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := entry(1, 1, tt.raw)
			assert.Equal(t, tt.wantBlank, l.IsBlank())
			assert.Equal(t, tt.wantComment, l.IsComment())
		})
	}
}

func TestLineEntry_KeyValue(t *testing.T) {
	tests := []struct {
		raw       string
		wantKey   string
		keyOK     bool
		wantValue string
		valueOK   bool
	}{
		{raw: "FOO=BAR", wantKey: "FOO", keyOK: true, wantValue: "BAR", valueOK: true},
		{raw: "FOO", wantKey: "FOO", keyOK: true},
		{raw: "  FOO  ", wantKey: "FOO", keyOK: true},
		{raw: "FOO=", wantKey: "FOO", keyOK: true, wantValue: "", valueOK: true},
		{raw: "FOO=a=b", wantKey: "FOO", keyOK: true, wantValue: "a=b", valueOK: true},
		{raw: "export FOO=BAR", wantKey: "FOO", keyOK: true, wantValue: "BAR", valueOK: true},
		{raw: "FOO =BAR", wantKey: "FOO ", keyOK: true, wantValue: "BAR", valueOK: true},
		{raw: "# FOO=BAR"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			l := entry(1, 1, tt.raw)
			key, ok := l.Key()
			assert.Equal(t, tt.keyOK, ok)
			assert.Equal(t, tt.wantKey, key)

			value, ok := l.Value()
			assert.Equal(t, tt.valueOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestLineEntry_IsLastLine(t *testing.T) {
	assert.True(t, entry(2, 2, "").IsLastLine())
	assert.False(t, entry(1, 2, "FOO=BAR").IsLastLine())
}

func TestLineEntry_ControlComment(t *testing.T) {
	c, ok := entry(1, 1, "# dotenv-linter:off LowercaseKey").ControlComment()
	assert.True(t, ok)
	assert.Equal(t, ControlComment{Directive: DirectiveOff, Checks: []LintKind{LowercaseKey}}, c)

	_, ok = entry(1, 1, "FOO=dotenv-linter:off").ControlComment()
	assert.False(t, ok, "assignments are never directives")
}

func TestWarning_String(t *testing.T) {
	w := NewWarning(entry(4, 5, "foo=bar"), LowercaseKey, "The foo key should be in uppercase")
	assert.Equal(t, ".env:4 LowercaseKey: The foo key should be in uppercase", w.String())

	w.File = ""
	assert.Equal(t, "4 LowercaseKey: The foo key should be in uppercase", w.String())
}
