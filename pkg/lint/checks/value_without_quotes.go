package checks

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type valueWithoutQuotesChecker struct {
	base
}

func newValueWithoutQuotesChecker() *valueWithoutQuotesChecker {
	return &valueWithoutQuotesChecker{base: base{kind: lint.ValueWithoutQuotes}}
}

func (c *valueWithoutQuotesChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	value, ok := line.Value()
	if !ok {
		return none()
	}
	value = strings.TrimSpace(value)
	if isQuoted(value) || !strings.ContainsFunc(value, unicode.IsSpace) {
		return none()
	}
	return c.warn(line, "This value needs to be surrounded in quotes")
}

// isQuoted reports whether s is wrapped in a matching pair of quotes.
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'')
}
