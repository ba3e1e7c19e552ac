package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// endingBlankLineChecker reports files whose last line is not blank,
// i.e. files that do not end with a newline.
type endingBlankLineChecker struct {
	base
}

func newEndingBlankLineChecker() *endingBlankLineChecker {
	return &endingBlankLineChecker{base: base{kind: lint.EndingBlankLine}}
}

// SkipComments is false: a trailing comment still needs a newline after it.
func (c *endingBlankLineChecker) SkipComments() bool { return false }

func (c *endingBlankLineChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if line.IsLastLine() && !line.IsBlank() {
		return c.warn(line, "No blank line at the end of the file")
	}
	return none()
}
