package checks

import (
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type leadingCharacterChecker struct {
	base
}

func newLeadingCharacterChecker() *leadingCharacterChecker {
	return &leadingCharacterChecker{base: base{kind: lint.LeadingCharacter}}
}

func (c *leadingCharacterChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if line.IsBlank() {
		return none()
	}
	if !hasValidLeadingChar(line.Raw) {
		return c.warn(line, "Invalid leading character detected")
	}
	return none()
}

// hasValidLeadingChar reports whether s starts with a letter or '_'.
func hasValidLeadingChar(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r)
}
