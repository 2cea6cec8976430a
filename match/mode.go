package match

import (
	"strings"

	"golang.org/x/text/cases"
)

//go:generate go tool stringer -type=Mode

// Mode selects how a keyword is compared against the text of a candidate
// value. The zero Mode is Exact
type Mode uint8

// Comparison modes
const (
	Exact Mode = iota
	ExactFold
	Contains
	ContainsFold
)

// ModeOf maps the explicit and ignore-case switches onto a single Mode
func ModeOf(explicit, ignoreCase bool) Mode {
	switch {
	case explicit && ignoreCase:
		return ExactFold
	case explicit:
		return Exact
	case ignoreCase:
		return ContainsFold
	default:
		return Contains
	}
}

// Folds reports whether the Mode compares case-folded text
func (m Mode) Folds() bool {
	return m == ExactFold || m == ContainsFold
}

// Explicit reports whether the Mode requires the whole candidate to equal the
// keyword, as opposed to containing it
func (m Mode) Explicit() bool {
	return m == Exact || m == ExactFold
}

// Prepare normalizes a keyword for repeated use with Match. Folding happens
// here once rather than for every candidate
func (m Mode) Prepare(keyword string) string {
	if m.Folds() {
		return Fold(keyword)
	}
	return keyword
}

// Match compares a candidate's text against a keyword that has already been
// passed through Prepare
func (m Mode) Match(candidate, keyword string) bool {
	switch m {
	case Exact:
		return candidate == keyword
	case ExactFold:
		return Fold(candidate) == keyword
	case Contains:
		return strings.Contains(candidate, keyword)
	case ContainsFold:
		return strings.Contains(Fold(candidate), keyword)
	default:
		return false
	}
}

// Fold returns the Unicode case-folded form of s
func Fold(s string) string {
	return cases.Fold().String(s)
}
