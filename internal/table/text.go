package table

import "fmt"

// text returns the form of a value used by case-folding, substring, and fuzzy
// comparisons
func text[V any](v V) string {
	switch v := any(v).(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
