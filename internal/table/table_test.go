package table_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	tableImpl "github.com/kode4food/tabula/internal/table"
	"github.com/kode4food/tabula/table"
)

var keyedColumns = table.Columns{"One": 0, "Two": 1, "Three": 3}

func makeKeyed(t *testing.T) *tableImpl.Table[string] {
	t.Helper()
	tbl, err := tableImpl.MakeTable(keyedColumns, []table.Row[string]{
		{"a", "b", "c", "d"},
		{"e", "f", "g"},
		{"h", "i", "j", "k"},
	})
	assert.NoError(t, err)
	return tbl
}

func TestTableRow(t *testing.T) {
	as := assert.New(t)
	tbl := makeKeyed(t)

	r, err := tbl.Row(0)
	as.NoError(err)
	as.Equal(table.Row[string]{"a", "b", "c", "d"}, r)

	r, err = tbl.Row(-1)
	as.NoError(err)
	as.Equal(table.Row[string]{"h", "i", "j", "k"}, r)

	_, err = tbl.Row(3)
	as.ErrorIs(err, table.ErrOutOfRange)
	_, err = tbl.Row(-4)
	as.ErrorIs(err, table.ErrOutOfRange)

	def := table.Row[string]{"default"}
	as.Equal(def, tbl.GetRow(10, def))
	as.Equal(table.Row[string]{"e", "f", "g"}, tbl.GetRow(-2, def))
}

func TestTableColumn(t *testing.T) {
	as := assert.New(t)
	tbl := makeKeyed(t)

	col, err := tbl.Column(table.ColumnName("One"))
	as.NoError(err)
	as.Equal([]string{"a", "e", "h"}, col)

	col, err = tbl.Column(table.ColumnName("Three"))
	as.NoError(err)
	as.Equal([]string{"d", "k"}, col)

	col, err = tbl.Column(table.ColumnIndex(2))
	as.NoError(err)
	as.Equal([]string{"c", "g", "j"}, col)

	_, err = tbl.Column(table.ColumnName("Four"))
	as.ErrorIs(err, table.ErrUnresolvableColumn)
	_, err = tbl.Column(table.ColumnName("0"))
	as.ErrorIs(err, table.ErrUnresolvableColumn)
	_, err = tbl.Column(nil)
	as.ErrorIs(err, table.ErrUnresolvableColumn)

	def := []string{"none"}
	as.Equal(def, tbl.GetColumn(table.ColumnName("Four"), def))
	as.Equal([]string{"b", "f", "i"}, tbl.GetColumn(table.ColumnName("Two"), def))
}

func TestTableCell(t *testing.T) {
	as := assert.New(t)
	tbl := makeKeyed(t)

	as.Equal("b", tbl.Cell(0, table.ColumnName("Two"), "x"))
	as.Equal("k", tbl.Cell(-1, table.ColumnName("Three"), "x"))
	as.Equal("x", tbl.Cell(1, table.ColumnName("Three"), "x"))
	as.Equal("x", tbl.Cell(5, table.ColumnName("One"), "x"))
	as.Equal("x", tbl.Cell(0, table.ColumnName("Five"), "x"))
	as.Equal("x", tbl.Cell(0, table.ColumnIndex(-1), "x"))
}

func TestTableNumeralColumns(t *testing.T) {
	as := assert.New(t)
	tbl, err := tableImpl.MakeTable(nil, numbers)
	as.NoError(err)

	col, err := tbl.Column(table.ColumnName("1"))
	as.NoError(err)
	as.Equal([]string{"Two", "Five", "Eight"}, col)

	_, err = tbl.Column(table.ColumnName("-1"))
	as.ErrorIs(err, table.ErrUnresolvableColumn)
	_, err = tbl.Column(table.ColumnName("first"))
	as.ErrorIs(err, table.ErrUnresolvableColumn)
}

func TestTableMutation(t *testing.T) {
	as := assert.New(t)
	tbl, err := tableImpl.MakeTable(numberColumns, numbers)
	as.NoError(err)

	tbl.Append(table.Row[string]{"Ten"})
	as.NoError(tbl.Insert(0, table.Row[string]{"Zero"}))
	as.Equal(5, tbl.Len())
	as.Equal("Zero\nOne Two Three\nFour Five Six\nSeven Eight Nine\nTen",
		tbl.String(),
	)

	r, err := tbl.PopAt(0)
	as.NoError(err)
	as.Equal(table.Row[string]{"Zero"}, r)
	as.NoError(tbl.Remove(table.Row[string]{"Ten"}))
	as.Equal(numbers, tbl.Rows())

	var seen []string
	tbl.Range(func(i int, r table.Row[string]) bool {
		seen = append(seen, r[0])
		return i < 1
	})
	as.Equal([]string{"One", "Four"}, seen)

	tbl.Clear()
	as.Equal(0, tbl.Len())
	as.Equal("", tbl.String())
}

func TestTableSortByColumn(t *testing.T) {
	as := assert.New(t)
	tbl := makeKeyed(t)

	as.NoError(tbl.SortByColumn(table.ColumnName("One"), cmp.Compare[string], true))
	as.Equal([]string{"h", "e", "a"}, tbl.GetColumn(table.ColumnName("One"), nil))

	err := tbl.SortByColumn(table.ColumnName("Three"), cmp.Compare[string], false)
	as.ErrorIs(err, table.ErrOutOfRange)
	err = tbl.SortByColumn(table.ColumnName("Nope"), cmp.Compare[string], false)
	as.ErrorIs(err, table.ErrUnresolvableColumn)
}

func TestTableColumnsCopied(t *testing.T) {
	as := assert.New(t)
	cols := table.Columns{"a": 0}
	tbl, err := tableImpl.MakeTable[string](cols, nil)
	as.NoError(err)

	cols["b"] = 1
	got := tbl.Columns()
	as.Equal(table.Columns{"a": 0}, got)
	got["c"] = 2
	as.Equal(table.Columns{"a": 0}, tbl.Columns())
}
