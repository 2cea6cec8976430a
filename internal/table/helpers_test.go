package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tableImpl "github.com/kode4food/tabula/internal/table"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

var (
	rowOne   = table.Row[string]{"One", "Two", "Three"}
	rowFour  = table.Row[string]{"Four", "Five", "Six"}
	rowSeven = table.Row[string]{"Seven", "Eight", "Nine"}

	numbers = []table.Row[string]{rowOne, rowFour, rowSeven}

	numberColumns = table.Columns{"1": 0, "2": 1, "3": 2}
)

const (
	col1 = table.ColumnName("1")
	col2 = table.ColumnName("2")
)

func makeNumbers(t *testing.T, o ...config.Option) *tableImpl.Indexed[string] {
	t.Helper()
	it, err := tableImpl.Make(numbers, append([]config.Option{
		config.WithColumns(numberColumns),
	}, o...)...)
	assert.NoError(t, err)
	return it
}

func words(w ...string) []string {
	return w
}
