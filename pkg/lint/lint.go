package lint

import (
	"fmt"
)

// LintKind identifies a check. The set is closed; every check in the
// registry reports exactly one of these kinds.
type LintKind uint8

// Known check kinds, in registry order.
const (
	DuplicatedKey LintKind = iota
	EndingBlankLine
	ExtraBlankLine
	IncorrectDelimiter
	KeyWithoutValue
	LeadingCharacter
	LowercaseKey
	QuoteCharacter
	SpaceCharacter
	SubstitutionKey
	TrailingWhitespace
	UnorderedKey
	ValueWithoutQuotes

	kindCount
)

var kindNames = [kindCount]string{
	DuplicatedKey:      "DuplicatedKey",
	EndingBlankLine:    "EndingBlankLine",
	ExtraBlankLine:     "ExtraBlankLine",
	IncorrectDelimiter: "IncorrectDelimiter",
	KeyWithoutValue:    "KeyWithoutValue",
	LeadingCharacter:   "LeadingCharacter",
	LowercaseKey:       "LowercaseKey",
	QuoteCharacter:     "QuoteCharacter",
	SpaceCharacter:     "SpaceCharacter",
	SubstitutionKey:    "SubstitutionKey",
	TrailingWhitespace: "TrailingWhitespace",
	UnorderedKey:       "UnorderedKey",
	ValueWithoutQuotes: "ValueWithoutQuotes",
}

// String returns the identifier used in control comments and on the command line.
func (k LintKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("LintKind(%d)", uint8(k))
}

// Valid reports whether k is one of the known kinds.
func (k LintKind) Valid() bool {
	return k < kindCount
}

// AllKinds returns every known kind in registry order.
func AllKinds() []LintKind {
	kinds := make([]LintKind, 0, kindCount)
	for k := LintKind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseLintKind returns the kind whose identifier is exactly name.
func ParseLintKind(name string) (LintKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return LintKind(k), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (k LintKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid lint kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LintKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseLintKind(string(text))
	if !ok {
		return fmt.Errorf("unknown check %q", string(text))
	}
	*k = parsed
	return nil
}
