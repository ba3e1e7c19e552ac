package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// substitutionKeyChecker reports malformed variable substitutions such as
// "${FOO", "$FOO}" or "${}". Single-quoted values are literal and skipped.
type substitutionKeyChecker struct {
	base
}

func newSubstitutionKeyChecker() *substitutionKeyChecker {
	return &substitutionKeyChecker{base: base{kind: lint.SubstitutionKey}}
}

func (c *substitutionKeyChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	value, ok := line.Value()
	if !ok {
		return none()
	}
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "'") || validSubstitutions(value) {
		return none()
	}
	key, _ := line.Key()
	return c.warn(line, fmt.Sprintf("The %s key is not assigned properly", strings.TrimSpace(key)))
}

// validSubstitutions walks every unescaped '$' in s.
// Accepted forms are $NAME, ${NAME} and ${NAME:modifier} / ${NAME-default}.
func validSubstitutions(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || isEscaped(s[:i]) {
			continue
		}
		rest := s[i+1:]

		if strings.HasPrefix(rest, "{") {
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return false
			}
			inner := rest[1:end]
			n := nameLen(inner)
			if n == 0 {
				return false
			}
			if n < len(inner) && inner[n] != ':' && inner[n] != '-' {
				return false
			}
			i += end + 1
			continue
		}

		n := nameLen(rest)
		if n > 0 && n < len(rest) && rest[n] == '}' {
			return false
		}
		i += n
	}
	return true
}

// isEscaped reports whether the character following prefix is escaped by
// an odd number of backslashes.
func isEscaped(prefix string) bool {
	count := 0
	for i := len(prefix) - 1; i >= 0 && prefix[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// nameLen returns the length of the variable name at the start of s.
func nameLen(s string) int {
	n := 0
	for n < len(s) {
		b := s[n]
		if b != '_' && (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			break
		}
		n++
	}
	return n
}
