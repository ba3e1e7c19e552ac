package checks

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type spaceCharacterChecker struct {
	base
}

func newSpaceCharacterChecker() *spaceCharacterChecker {
	return &spaceCharacterChecker{base: base{kind: lint.SpaceCharacter}}
}

func (c *spaceCharacterChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if line.IsBlank() {
		return none()
	}
	key, value, found := strings.Cut(line.Raw, "=")
	if !found {
		return none()
	}
	if endsWithSpace(key) || startsWithSpace(value) {
		return c.warn(line, "The line has spaces around equal sign")
	}
	return none()
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeftFunc(s, unicode.IsSpace) != s
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRightFunc(s, unicode.IsSpace) != s
}
