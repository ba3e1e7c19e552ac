package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// checklist returns a fresh instance of every check in registry order.
// Adding a check means adding a lint.LintKind and one entry here.
func checklist() []Check {
	return []Check{
		newDuplicatedKeyChecker(),
		newEndingBlankLineChecker(),
		newExtraBlankLineChecker(),
		newIncorrectDelimiterChecker(),
		newKeyWithoutValueChecker(),
		newLeadingCharacterChecker(),
		newLowercaseKeyChecker(),
		newQuoteCharacterChecker(),
		newSpaceCharacterChecker(),
		newSubstitutionKeyChecker(),
		newTrailingWhitespaceChecker(),
		newUnorderedKeyChecker(),
		newValueWithoutQuotesChecker(),
	}
}

// AvailableNames returns the kind of every registered check in registry order.
func AvailableNames() []lint.LintKind {
	list := checklist()
	names := make([]lint.LintKind, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name())
	}
	return names
}

var descriptions = map[lint.LintKind]string{
	lint.DuplicatedKey:      "A key is assigned more than once",
	lint.EndingBlankLine:    "The file does not end with a blank line",
	lint.ExtraBlankLine:     "Two or more consecutive blank lines",
	lint.IncorrectDelimiter: "A key uses a delimiter other than an underscore",
	lint.KeyWithoutValue:    "A key has neither a value nor an equal sign",
	lint.LeadingCharacter:   "A line starts with a character other than a letter or underscore",
	lint.LowercaseKey:       "A key contains lowercase characters",
	lint.QuoteCharacter:     "A value contains quote characters it does not need",
	lint.SpaceCharacter:     "Whitespace around the equal sign",
	lint.SubstitutionKey:    "A variable substitution is not written as $VAR or ${VAR}",
	lint.TrailingWhitespace: "A line ends with whitespace",
	lint.UnorderedKey:       "Keys within a group are not in alphabetical order",
	lint.ValueWithoutQuotes: "A value containing whitespace is not surrounded by quotes",
}

// Describe returns a one-line description of the check.
func Describe(kind lint.LintKind) string {
	return descriptions[kind]
}
