package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type lowercaseKeyChecker struct {
	base
}

func newLowercaseKeyChecker() *lowercaseKeyChecker {
	return &lowercaseKeyChecker{base: base{kind: lint.LowercaseKey}}
}

func (c *lowercaseKeyChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	key, ok := line.Key()
	if !ok || strings.ToUpper(key) == key {
		return none()
	}
	return c.warn(line, fmt.Sprintf("The %s key should be in uppercase", key))
}
