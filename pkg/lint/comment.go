package lint

import (
	"strings"
	"unicode"
)

// ControlMarker is the token that introduces a control comment.
const ControlMarker = "dotenv-linter:"

// Directive is the action requested by a control comment.
type Directive uint8

// Control comment directives.
const (
	DirectiveOff Directive = iota
	DirectiveOn
)

// String returns the keyword used in comments.
func (d Directive) String() string {
	if d == DirectiveOn {
		return "on"
	}
	return "off"
}

// ControlComment is a parsed "# dotenv-linter:on|off [checks]" directive.
type ControlComment struct {
	Directive Directive
	// Checks named by the comment. Empty means every known check; the
	// dispatcher expands it.
	Checks []LintKind
}

// IsDisabled reports whether the comment switches checks off.
func (c ControlComment) IsDisabled() bool {
	return c.Directive == DirectiveOff
}

// ParseControlComment recognizes a control comment in text.
//
// The comment must start with '#', followed by optional whitespace, the
// marker, the keyword on or off and an optional list of check names
// separated by commas and/or whitespace. Unknown names are dropped; a
// comment that names only unknown checks is not a directive, so a typo
// never widens into "all checks".
func ParseControlComment(text string) (ControlComment, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), "#")
	if !ok {
		return ControlComment{}, false
	}
	rest, ok = strings.CutPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), ControlMarker)
	if !ok {
		return ControlComment{}, false
	}

	var directive Directive
	switch {
	case strings.HasPrefix(rest, "off"):
		directive, rest = DirectiveOff, rest[len("off"):]
	case strings.HasPrefix(rest, "on"):
		directive, rest = DirectiveOn, rest[len("on"):]
	default:
		return ControlComment{}, false
	}

	// "offset", "online" and friends are not directives
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return ControlComment{}, false
	}

	names := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(names) == 0 {
		return ControlComment{Directive: directive}, true
	}

	var kinds []LintKind
	seen := make(map[LintKind]bool, len(names))
	for _, name := range names {
		kind, ok := ParseLintKind(name)
		if !ok || seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return ControlComment{}, false
	}

	return ControlComment{Directive: directive, Checks: kinds}, true
}
