package checks

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// quoteCharacterChecker reports quotes around values that do not need them.
// Values containing whitespace are left to valueWithoutQuotesChecker.
type quoteCharacterChecker struct {
	base
}

func newQuoteCharacterChecker() *quoteCharacterChecker {
	return &quoteCharacterChecker{base: base{kind: lint.QuoteCharacter}}
}

func (c *quoteCharacterChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	value, ok := line.Value()
	if !ok {
		return none()
	}
	value = strings.TrimSpace(value)
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return none()
	}
	if strings.ContainsAny(value, `'"`) {
		return c.warn(line, `The value has quote characters (', ")`)
	}
	return none()
}
