package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// Run lints the lines of one file and returns the warnings in line order,
// then registry order within a line.
//
// Checks named in skip are excluded for the whole run. Control comments in
// the file switch the remaining checks off and on for the lines that follow.
func Run(lines []lint.LineEntry, skip []lint.LintKind) []lint.Warning {
	return dispatch(lines, skip, nil)
}

// directiveFunc observes every control comment the dispatcher applies.
type directiveFunc func(line lint.LineEntry, comment lint.ControlComment)

func dispatch(lines []lint.LineEntry, skip []lint.LintKind, onDirective directiveFunc) []lint.Warning {
	active := enabledChecks(skip)

	// Multiset of checks switched off by comments. An "on" directive deletes
	// the entry no matter how many "off" directives added to it.
	disabled := make(map[lint.LintKind]int)

	warnings := make([]lint.Warning, 0)

	for _, line := range lines {
		if comment, ok := line.ControlComment(); ok {
			targets := comment.Checks
			if len(targets) == 0 {
				targets = lint.AllKinds()
			}
			for _, kind := range targets {
				if comment.IsDisabled() {
					disabled[kind]++
				} else {
					delete(disabled, kind)
				}
			}
			if onDirective != nil {
				onDirective(line, comment)
			}
		}

		isComment := line.IsComment()
		for _, c := range active {
			if isComment && c.SkipComments() {
				continue
			}
			if disabled[c.Name()] > 0 {
				continue
			}
			if w, ok := c.Run(line); ok {
				warnings = append(warnings, w)
			}
		}
	}

	return warnings
}

// enabledChecks builds the checklist without the skipped checks.
func enabledChecks(skip []lint.LintKind) []Check {
	skipped := make(map[lint.LintKind]bool, len(skip))
	for _, kind := range skip {
		skipped[kind] = true
	}

	all := checklist()
	active := all[:0]
	for _, c := range all {
		if !skipped[c.Name()] {
			active = append(active, c)
		}
	}
	return active
}
