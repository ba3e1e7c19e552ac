package checks

import (
	"fmt"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// unorderedKeyChecker reports keys that sort before a key seen earlier in
// the same group. Blank lines and control comments start a new group.
type unorderedKeyChecker struct {
	base
	keys []string
}

func newUnorderedKeyChecker() *unorderedKeyChecker {
	return &unorderedKeyChecker{base: base{kind: lint.UnorderedKey}}
}

// SkipComments is false: control comments separate groups.
func (c *unorderedKeyChecker) SkipComments() bool { return false }

func (c *unorderedKeyChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	if line.IsBlank() {
		c.keys = c.keys[:0]
		return none()
	}
	if _, ok := line.ControlComment(); ok {
		c.keys = c.keys[:0]
		return none()
	}

	key, ok := line.Key()
	// Keys with an invalid leading character are reported by LeadingCharacter.
	if !ok || !hasValidLeadingChar(key) {
		return none()
	}

	next, found := "", false
	for _, k := range c.keys {
		if k > key && (!found || k < next) {
			next, found = k, true
		}
	}
	c.keys = append(c.keys, key)

	if found {
		return c.warn(line, fmt.Sprintf("The %s key should go before the %s key", key, next))
	}
	return none()
}
