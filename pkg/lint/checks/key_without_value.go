package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

type keyWithoutValueChecker struct {
	base
}

func newKeyWithoutValueChecker() *keyWithoutValueChecker {
	return &keyWithoutValueChecker{base: base{kind: lint.KeyWithoutValue}}
}

func (c *keyWithoutValueChecker) Run(line lint.LineEntry) (lint.Warning, bool) {
	key, ok := line.Key()
	if !ok || strings.Contains(line.Raw, "=") {
		return none()
	}
	return c.warn(line, fmt.Sprintf("The %s key should be with a value or have an equal sign", key))
}
