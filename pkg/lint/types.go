package lint

import (
	"fmt"
	"strings"
)

// FileEntry identifies the file a line belongs to.
type FileEntry struct {
	Path       string // Path as given by the caller, e.g. ".env.local"
	TotalLines int    // Number of LineEntry values produced for the file
}

// LineEntry is one physical line of an env file.
// It is a value type; checks receive copies and never modify them.
type LineEntry struct {
	Number int       // 1-based line number
	File   FileEntry // File the line belongs to
	Raw    string    // Line text without the line terminator
}

// Trimmed returns the line without surrounding whitespace.
func (l LineEntry) Trimmed() string {
	return strings.TrimSpace(l.Raw)
}

// IsBlank reports whether the line has no content besides whitespace.
func (l LineEntry) IsBlank() bool {
	return l.Trimmed() == ""
}

// IsComment reports whether the line starts with '#' after leading whitespace.
func (l LineEntry) IsComment() bool {
	return strings.HasPrefix(l.Trimmed(), "#")
}

// IsLastLine reports whether this is the final line of its file.
func (l LineEntry) IsLastLine() bool {
	return l.Number == l.File.TotalLines
}

// ControlComment returns the directive carried by the line, if any.
func (l LineEntry) ControlComment() (ControlComment, bool) {
	if !l.IsComment() {
		return ControlComment{}, false
	}
	return ParseControlComment(l.Raw)
}

// Key returns the variable name of an assignment line.
// An optional "export " prefix is removed. Lines without '=' return the
// whole trimmed text. Blank lines and comments have no key.
func (l LineEntry) Key() (string, bool) {
	if l.IsBlank() || l.IsComment() {
		return "", false
	}
	s := l.strippedExport()
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return s[:idx], true
	}
	return s, true
}

// Value returns everything after the first '=' of an assignment line.
func (l LineEntry) Value() (string, bool) {
	if l.IsBlank() || l.IsComment() {
		return "", false
	}
	idx := strings.IndexByte(l.Raw, '=')
	if idx < 0 {
		return "", false
	}
	return l.Raw[idx+1:], true
}

func (l LineEntry) strippedExport() string {
	trimmed := l.Trimmed()
	if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
		return strings.TrimSpace(rest)
	}
	return trimmed
}

// Warning is a single finding produced by a check.
type Warning struct {
	File    string   `json:"file"`
	Line    int      `json:"line"`
	Kind    LintKind `json:"check"`
	Message string   `json:"message"`
}

// NewWarning creates a warning for the given line.
func NewWarning(line LineEntry, kind LintKind, message string) Warning {
	return Warning{
		File:    line.File.Path,
		Line:    line.Number,
		Kind:    kind,
		Message: message,
	}
}

// String formats the warning the way the text renderer prints it.
func (w Warning) String() string {
	if w.File == "" {
		return fmt.Sprintf("%d %s: %s", w.Line, w.Kind, w.Message)
	}
	return fmt.Sprintf("%s:%d %s: %s", w.File, w.Line, w.Kind, w.Message)
}
