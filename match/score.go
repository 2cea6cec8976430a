package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

type (
	// Scorer rates the similarity of two strings. Scores fall in [0, 1],
	// where 1 means the strings are identical
	Scorer interface {
		Score(a, b string) float64
	}

	// ScorerFunc adapts a plain function to the Scorer interface
	ScorerFunc func(a, b string) float64

	// Match is a candidate that scored at or above a cutoff
	Match[T any] struct {
		Value T
		Text  string
		Score float64
	}
)

var (
	// SequenceRatio scores with the Ratcliff/Obershelp "gestalt" ratio: twice
	// the number of matching runes divided by the total number of runes
	SequenceRatio Scorer = ScorerFunc(sequenceRatio)

	// EditRatio scores with a normalized Levenshtein distance
	EditRatio Scorer = ScorerFunc(editRatio)
)

// Score calls f(a, b)
func (f ScorerFunc) Score(a, b string) float64 {
	return f(a, b)
}

// CloseMatches returns up to n candidates whose text scores at least cutoff
// against word, best first. Equal scores are ordered by text, descending. If
// n is less than one, every qualifying candidate is returned
func CloseMatches[T any](
	word string, candidates []T, text func(T) string, n int,
	cutoff float64, s Scorer,
) []Match[T] {
	var res []Match[T]
	for _, c := range candidates {
		t := text(c)
		if score := s.Score(t, word); score >= cutoff {
			res = append(res, Match[T]{Value: c, Text: t, Score: score})
		}
	}
	slices.SortStableFunc(res, func(l, r Match[T]) int {
		if c := cmp.Compare(r.Score, l.Score); c != 0 {
			return c
		}
		return strings.Compare(r.Text, l.Text)
	})
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

func sequenceRatio(a, b string) float64 {
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

func editRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// splitRunes breaks s into one element per rune, the sequence shape that the
// difflib matcher compares
func splitRunes(s string) []string {
	return strings.Split(s, "")
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
