package table

import (
	"cmp"
	"fmt"
	"strconv"
)

type (
	// Column identifies a field position within a Row, either by name or
	// directly by position
	Column interface {
		fmt.Stringer

		// Resolve returns the field position that the Column identifies
		// under the provided mapping
		Resolve(Columns) (int, bool)

		column()
	}

	// ColumnName is exactly what you think it is. A name that isn't in the
	// mapping is read as a position only when the mapping is empty
	ColumnName string

	// ColumnIndex is a literal field position
	ColumnIndex int

	// Columns maps column names to field positions
	Columns map[string]int
)

// Resolve returns the field position of the named Column
func (n ColumnName) Resolve(c Columns) (int, bool) {
	if p, ok := c[string(n)]; ok {
		return p, true
	}
	if len(c) != 0 {
		return 0, false
	}
	if p, err := strconv.Atoi(string(n)); err == nil && p >= 0 {
		return p, true
	}
	return 0, false
}

func (n ColumnName) String() string {
	return string(n)
}

func (ColumnName) column() {}

// Resolve returns the position itself, provided it is not negative
func (i ColumnIndex) Resolve(Columns) (int, bool) {
	return int(i), i >= 0
}

func (i ColumnIndex) String() string {
	return strconv.Itoa(int(i))
}

func (ColumnIndex) column() {}

// Validate checks that every position in the mapping is usable
func (c Columns) Validate() error {
	for n, p := range c {
		if p < 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidSchema, n, p)
		}
	}
	return nil
}

// CompareBy builds a comparison for SortByColumn that converts each value
// into an ordered key first
func CompareBy[V any, K cmp.Ordered](key func(V) K) func(a, b V) int {
	return func(a, b V) int {
		return cmp.Compare(key(a), key(b))
	}
}
