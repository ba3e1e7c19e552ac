package checks

import (
	"fmt"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// duplicatedKeyChecker reports keys assigned more than once in a file.
type duplicatedKeyChecker struct {
	base
	keys map[string]struct{}
}

func newDuplicatedKeyChecker() *duplicatedKeyChecker {
	return &duplicatedKeyChecker{
		base: base{kind: lint.DuplicatedKey},
		keys: make(map[string]struct{}),
	}
}

func (c *duplicatedKeyChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	key, ok := line.Key()
	if !ok {
		return none()
	}
	if _, seen := c.keys[key]; seen {
		return c.warn(line, fmt.Sprintf("The %s key is duplicated", key))
	}
	c.keys[key] = struct{}{}
	return none()
}
