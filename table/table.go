package table

import (
	"errors"
	"slices"

	"github.com/kode4food/tabula/table/config"
)

type (
	// Table is an ordered sequence of Rows with an optional mapping of column
	// names to field positions. A Row's position is its identity, and that
	// position shifts when the Table is structurally changed
	Table[V comparable] interface {
		// Len returns the number of Rows in the Table
		Len() int

		// Columns returns a copy of the Table's column mapping
		Columns() Columns

		// Rows returns copies of the Table's Rows, in order
		Rows() []Row[V]

		// Range calls fn for each Row in order. If fn returns false,
		// iteration stops
		Range(fn func(int, Row[V]) bool)

		// Row returns the Row at the given position. Negative positions
		// count back from the end of the Table
		Row(int) (Row[V], error)

		// GetRow is Row, but returns the provided default instead of an
		// error
		GetRow(int, Row[V]) Row[V]

		// Column returns the value of a column from every Row that is long
		// enough to have one
		Column(Column) ([]V, error)

		// GetColumn is Column, but returns the provided default instead of
		// an error
		GetColumn(Column, []V) []V

		// Cell returns a single field value, or the provided default if
		// either the row or column is out of range
		Cell(int, Column, V) V

		// Append adds a Row to the end of the Table
		Append(Row[V])

		// Extend adds Rows to the end of the Table
		Extend(...Row[V])

		// Insert places a Row before the given position. Inserting at Len
		// is the same as Append
		Insert(int, Row[V]) error

		// Set replaces the Row at the given position
		Set(int, Row[V]) error

		// Pop removes and returns the last Row
		Pop() (Row[V], error)

		// PopAt removes and returns the Row at the given position
		PopAt(int) (Row[V], error)

		// Remove deletes the first Row equal to the one provided
		Remove(Row[V]) error

		// Sort stably sorts the Rows using the provided comparison
		Sort(func(a, b Row[V]) int)

		// SortByColumn stably sorts the Rows by comparing the values of a
		// single column. Every Row must have the column
		SortByColumn(Column, func(a, b V) int, bool) error

		// Reverse reverses the order of the Rows
		Reverse()

		// Clear removes every Row, but keeps the column mapping
		Clear()

		// String renders fields separated by spaces and Rows by newlines
		String() string
	}

	// Indexed is a Table that maintains an inverted index of every field
	// value to the positions of the Rows that contain it. The index is kept
	// consistent by every mutating method before it returns
	Indexed[V comparable] interface {
		Table[V]

		// Copy returns an independent Indexed Table with the same Rows,
		// column mapping, and defaults
		Copy() Indexed[V]

		// HasValue reports whether any indexed value matches
		HasValue(V, ...config.Option) bool

		// HasPair reports whether a value matches within a single column
		HasPair(Column, V, ...config.Option) bool

		// IndicesOfValueByKeyword returns the positions of every indexed
		// value that matches the keyword, one run per matched value. The
		// positions are not deduplicated across matched values
		IndicesOfValueByKeyword(V, ...config.Option) []int

		// ValueByKeyword materializes IndicesOfValueByKeyword
		ValueByKeyword(V, ...config.Option) Result[V]

		// IndicesOfSearch returns the deduplicated positions of Rows that
		// match any keyword or, with config.And, every keyword
		IndicesOfSearch([]V, ...config.Option) []int

		// Search materializes IndicesOfSearch
		Search([]V, ...config.Option) Result[V]

		// IndicesOfSearchByColumn is IndicesOfSearch restricted to a single
		// column
		IndicesOfSearchByColumn(Column, []V, ...config.Option) []int

		// SearchByColumn materializes IndicesOfSearchByColumn
		SearchByColumn(Column, []V, ...config.Option) Result[V]

		// IndicesOfCorrelation returns the positions of Rows that satisfy
		// every Predicate
		IndicesOfCorrelation(...Predicate[V]) []int

		// IndicesOfCorrelationWith is IndicesOfCorrelation with call-level
		// Options that each Predicate's own Options override
		IndicesOfCorrelationWith([]config.Option, ...Predicate[V]) []int

		// Correlation materializes IndicesOfCorrelation
		Correlation(...Predicate[V]) Result[V]

		// CorrelationWith materializes IndicesOfCorrelationWith
		CorrelationWith([]config.Option, ...Predicate[V]) Result[V]

		// IndicesOfIncompleteRowSearch discards tokens that are not indexed
		// and performs an And search with the rest. It returns false if too
		// few tokens survive for the search to proceed
		IndicesOfIncompleteRowSearch([]V, ...config.Option) ([]int, bool)

		// IncompleteRowSearch materializes IndicesOfIncompleteRowSearch. An
		// aborted search produces a single empty Row and sets Aborted
		IncompleteRowSearch([]V, ...config.Option) Result[V]

		// FuzzyHasValue reports whether any indexed value is similar enough
		// to the keyword
		FuzzyHasValue(V, ...config.Option) bool

		// FuzzyGetValues returns the indexed values similar enough to the
		// keyword, most similar first
		FuzzyGetValues(V, ...config.Option) []V

		// FuzzyHasPair is FuzzyHasValue restricted to a single column
		FuzzyHasPair(Column, V, ...config.Option) bool

		// FuzzyGetPairs is FuzzyGetValues restricted to a single column
		FuzzyGetPairs(Column, V, ...config.Option) []V

		// IndicesOfFuzzySearch is IndicesOfSearch using similarity instead
		// of equality or containment
		IndicesOfFuzzySearch([]V, ...config.Option) []int

		// FuzzySearch materializes IndicesOfFuzzySearch
		FuzzySearch([]V, ...config.Option) Result[V]

		// IndicesOfFuzzyColumn is IndicesOfSearchByColumn using similarity
		IndicesOfFuzzyColumn(Column, []V, ...config.Option) []int

		// FuzzyColumn materializes IndicesOfFuzzyColumn
		FuzzyColumn(Column, []V, ...config.Option) Result[V]

		// IndicesOfFuzzyCorrelation is IndicesOfCorrelation using
		// similarity
		IndicesOfFuzzyCorrelation(...Predicate[V]) []int

		// IndicesOfFuzzyCorrelationWith is IndicesOfCorrelationWith using
		// similarity
		IndicesOfFuzzyCorrelationWith([]config.Option, ...Predicate[V]) []int

		// FuzzyCorrelation materializes IndicesOfFuzzyCorrelation
		FuzzyCorrelation(...Predicate[V]) Result[V]

		// FuzzyCorrelationWith materializes IndicesOfFuzzyCorrelationWith
		FuzzyCorrelationWith([]config.Option, ...Predicate[V]) Result[V]
	}

	// Row is a single record, an ordered sequence of field values. Rows are
	// copied whenever they enter or leave a Table, so modifying one never
	// reaches a Table's contents
	Row[V comparable] []V

	// Result is the outcome of a materializing query. Table is only set when
	// the query was configured to Convert its Rows
	Result[V comparable] struct {
		Table   Indexed[V]
		Rows    []Row[V]
		Aborted bool
	}

	// Predicate scopes a set of keywords to a single column. Its Options
	// override those of the query it participates in
	Predicate[V comparable] struct {
		Column   Column
		Keywords []V
		Options  []config.Option
	}
)

// Error messages
var (
	ErrInvalidSchema      = errors.New("column positions must not be negative")
	ErrOutOfRange         = errors.New("row index out of range")
	ErrUnresolvableColumn = errors.New("column not found in table")
	ErrRowNotFound        = errors.New("row not found in table")
)

// Clone returns a copy of the Row
func (r Row[V]) Clone() Row[V] {
	return slices.Clone(r)
}

// Len returns the number of materialized Rows
func (r Result[V]) Len() int {
	return len(r.Rows)
}

// Pair constructs a Predicate that uses the Options of the query it
// participates in
func Pair[V comparable](c Column, keywords ...V) Predicate[V] {
	return Predicate[V]{
		Column:   c,
		Keywords: keywords,
	}
}

// With returns a copy of the Predicate with additional Options
func (p Predicate[V]) With(o ...config.Option) Predicate[V] {
	p.Options = append(slices.Clone(p.Options), o...)
	return p
}
