// Package lint provides the shared model of the dotenv linter.
//
// # Architecture
//
// The lint packages follow a layered layout:
//
//  1. Root package (pkg/lint/): check identities, the line model, warnings and
//     the control-comment parser
//  2. Checks subsystem (pkg/lint/checks/): the Check contract, the ordered
//     registry, the dispatch loop and the concrete checks
//  3. Source subsystem (pkg/lint/source/): file discovery, line splitting and
//     the parallel per-file runner
//
// # Lines
//
// A file is turned into an ordered slice of LineEntry values, one per
// physical line. Line numbers start at 1. A file whose content ends with a
// newline has a final blank entry, which is what EndingBlankLine looks for:
//
//	lines := source.SplitLines(".env", "FOO=BAR\n")
//	// lines[0].Raw == "FOO=BAR", lines[1].IsBlank() == true
//
// # Control Comments
//
// Checks can be switched off and on for a region of a file:
//
//	# dotenv-linter:off LowercaseKey, UnorderedKey
//	foo=bar
//	# dotenv-linter:on LowercaseKey
//
// A directive without names applies to every check. Names must match the
// identifiers returned by LintKind.String exactly; unknown names are ignored.
//
// # Running
//
// The dispatcher lives in the checks package:
//
//	warnings := checks.Run(lines, []lint.LintKind{lint.UnorderedKey})
package lint
