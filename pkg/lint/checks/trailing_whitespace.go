package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type trailingWhitespaceChecker struct {
	base
}

func newTrailingWhitespaceChecker() *trailingWhitespaceChecker {
	return &trailingWhitespaceChecker{base: base{kind: lint.TrailingWhitespace}}
}

// SkipComments is false: comments are reported too.
func (c *trailingWhitespaceChecker) SkipComments() bool { return false }

func (c *trailingWhitespaceChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if endsWithSpace(line.Raw) {
		return c.warn(line, "Trailing whitespace detected")
	}
	return none()
}
