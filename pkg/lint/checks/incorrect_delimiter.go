package checks

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type incorrectDelimiterChecker struct {
	base
}

func newIncorrectDelimiterChecker() *incorrectDelimiterChecker {
	return &incorrectDelimiterChecker{base: base{kind: lint.IncorrectDelimiter}}
}

func (c *incorrectDelimiterChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	key, ok := line.Key()
	if !ok {
		return none()
	}
	trimmed := strings.TrimSpace(key)
	if strings.IndexFunc(trimmed, isInvalidKeyRune) >= 0 {
		return c.warn(line, fmt.Sprintf("The %s key has incorrect delimiter", trimmed))
	}
	return none()
}

func isInvalidKeyRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
