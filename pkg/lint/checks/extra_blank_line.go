package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type extraBlankLineChecker struct {
	base
	lastBlank int // number of the previous blank line, 0 if none
}

func newExtraBlankLineChecker() *extraBlankLineChecker {
	return &extraBlankLineChecker{base: base{kind: lint.ExtraBlankLine}}
}

func (c *extraBlankLineChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if !line.IsBlank() {
		return none()
	}
	previous := c.lastBlank
	c.lastBlank = line.Number
	if previous != 0 && previous+1 == line.Number {
		return c.warn(line, "Extra blank line detected")
	}
	return none()
}
