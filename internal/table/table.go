package table

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kode4food/tabula/table"
)

// Table is the internal implementation of a table.Table. It stores Rows and
// resolves Columns, but maintains no index
type Table[V comparable] struct {
	columns table.Columns
	rows    []table.Row[V]
}

// MakeTable instantiates a new internal Table. The Rows are copied
func MakeTable[V comparable](
	cols table.Columns, rows []table.Row[V],
) (*Table[V], error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	return &Table[V]{
		columns: maps.Clone(cols),
		rows:    cloneRows(rows),
	}, nil
}

// cloneRows copies a set of Rows along with their fields
func cloneRows[V comparable](rows []table.Row[V]) []table.Row[V] {
	res := make([]table.Row[V], len(rows))
	for i, r := range rows {
		res[i] = r.Clone()
	}
	return res
}

func (t *Table[_]) Len() int {
	return len(t.rows)
}

func (t *Table[_]) Columns() table.Columns {
	return maps.Clone(t.columns)
}

func (t *Table[V]) Rows() []table.Row[V] {
	return cloneRows(t.rows)
}

func (t *Table[V]) Range(fn func(int, table.Row[V]) bool) {
	for i, r := range t.rows {
		if !fn(i, r.Clone()) {
			return
		}
	}
}

func (t *Table[V]) Row(i int) (table.Row[V], error) {
	if p, ok := t.position(i); ok {
		return t.rows[p].Clone(), nil
	}
	return nil, fmt.Errorf("%w: %d", table.ErrOutOfRange, i)
}

func (t *Table[V]) GetRow(i int, def table.Row[V]) table.Row[V] {
	if r, err := t.Row(i); err == nil {
		return r
	}
	return def
}

func (t *Table[V]) Column(c table.Column) ([]V, error) {
	p, ok := t.resolve(c)
	if !ok {
		return nil, fmt.Errorf("%w: %v", table.ErrUnresolvableColumn, c)
	}
	res := make([]V, 0, len(t.rows))
	for _, r := range t.rows {
		if p < len(r) {
			res = append(res, r[p])
		}
	}
	return res, nil
}

func (t *Table[V]) GetColumn(c table.Column, def []V) []V {
	if res, err := t.Column(c); err == nil {
		return res
	}
	return def
}

func (t *Table[V]) Cell(row int, c table.Column, def V) V {
	r, ok := t.position(row)
	if !ok {
		return def
	}
	p, ok := t.resolve(c)
	if !ok || p >= len(t.rows[r]) {
		return def
	}
	return t.rows[r][p]
}

func (t *Table[V]) Append(r table.Row[V]) {
	t.rows = append(t.rows, r.Clone())
}

func (t *Table[V]) Extend(rows ...table.Row[V]) {
	for _, r := range rows {
		t.Append(r)
	}
}

func (t *Table[V]) Insert(i int, r table.Row[V]) error {
	if i < 0 || i > len(t.rows) {
		return fmt.Errorf("%w: %d", table.ErrOutOfRange, i)
	}
	t.rows = slices.Insert(t.rows, i, r.Clone())
	return nil
}

func (t *Table[V]) Set(i int, r table.Row[V]) error {
	p, ok := t.position(i)
	if !ok {
		return fmt.Errorf("%w: %d", table.ErrOutOfRange, i)
	}
	t.rows[p] = r.Clone()
	return nil
}

func (t *Table[V]) Pop() (table.Row[V], error) {
	return t.PopAt(-1)
}

func (t *Table[V]) PopAt(i int) (table.Row[V], error) {
	p, ok := t.position(i)
	if !ok {
		return nil, fmt.Errorf("%w: %d", table.ErrOutOfRange, i)
	}
	res := t.rows[p]
	t.rows = slices.Delete(t.rows, p, p+1)
	return res, nil
}

func (t *Table[V]) Remove(r table.Row[V]) error {
	p, err := t.find(r)
	if err != nil {
		return err
	}
	_, err = t.PopAt(p)
	return err
}

func (t *Table[V]) Sort(cmp func(a, b table.Row[V]) int) {
	slices.SortStableFunc(t.rows, cmp)
}

func (t *Table[V]) SortByColumn(
	c table.Column, cmp func(a, b V) int, reverse bool,
) error {
	p, ok := t.resolve(c)
	if !ok {
		return fmt.Errorf("%w: %v", table.ErrUnresolvableColumn, c)
	}
	for i, r := range t.rows {
		if p >= len(r) {
			return fmt.Errorf("%w: row %d has no column %v",
				table.ErrOutOfRange, i, c,
			)
		}
	}
	slices.SortStableFunc(t.rows, func(l, r table.Row[V]) int {
		if reverse {
			return cmp(r[p], l[p])
		}
		return cmp(l[p], r[p])
	})
	return nil
}

func (t *Table[_]) Reverse() {
	slices.Reverse(t.rows)
}

func (t *Table[_]) Clear() {
	t.rows = nil
}

func (t *Table[V]) String() string {
	var buf strings.Builder
	for i, r := range t.rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for j, v := range r {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(text(v))
		}
	}
	return buf.String()
}

// position normalizes an end-relative row position and checks its bounds
func (t *Table[_]) position(i int) (int, bool) {
	if i < 0 {
		i += len(t.rows)
	}
	return i, i >= 0 && i < len(t.rows)
}

func (t *Table[_]) resolve(c table.Column) (int, bool) {
	if c == nil {
		return 0, false
	}
	return c.Resolve(t.columns)
}

func (t *Table[V]) find(r table.Row[V]) (int, error) {
	p := slices.IndexFunc(t.rows, func(e table.Row[V]) bool {
		return slices.Equal(e, r)
	})
	if p < 0 {
		return 0, fmt.Errorf("%w: %v", table.ErrRowNotFound, r)
	}
	return p, nil
}
