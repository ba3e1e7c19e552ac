// Package checks provides the dotenv-linter checks, the ordered registry
// that instantiates them and the dispatch loop that runs them over a file.
//
// Checks in this package:
//   - DuplicatedKey: a key is assigned more than once
//   - EndingBlankLine: the file does not end with a newline
//   - ExtraBlankLine: two or more consecutive blank lines
//   - IncorrectDelimiter: a key uses a delimiter other than '_'
//   - KeyWithoutValue: a line has no '=' sign
//   - LeadingCharacter: a line starts with something other than a letter or '_'
//   - LowercaseKey: a key is not upper case
//   - QuoteCharacter: a value contains unnecessary quotes
//   - SpaceCharacter: whitespace around the '=' sign
//   - SubstitutionKey: a malformed ${VAR} substitution
//   - TrailingWhitespace: whitespace at the end of a line
//   - UnorderedKey: keys of a group are not sorted
//   - ValueWithoutQuotes: a value with whitespace is not quoted
package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// Check inspects one line at a time.
//
// Run may keep state between calls; an instance only ever sees the lines of
// a single file, in order. Run must accept any line, however malformed, and
// must not perform I/O.
type Check interface {
	// Run returns a warning for the line, if any.
	Run(line lint.LineEntry) (lint.Warning, bool)

	// Name returns the kind this check reports.
	Name() lint.LintKind

	// SkipComments reports whether comment lines should bypass the check.
	SkipComments() bool
}

// base carries the identity every check shares.
type base struct {
	kind lint.LintKind
}

func (b base) Name() lint.LintKind { return b.kind }
func (b base) SkipComments() bool  { return true }

func (b base) warn(line lint.LineEntry, message string) (lint.Warning, bool) {
	return lint.NewWarning(line, b.kind, message), true
}

func none() (lint.Warning, bool) {
	return lint.Warning{}, false
}
