package tabula

import (
	tableImpl "github.com/kode4food/tabula/internal/table"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// NewTable instantiates a new Table given a set of Rows and an optional
// column mapping. The Table maintains no index
func NewTable[V comparable](
	rows []table.Row[V], cols table.Columns,
) (table.Table[V], error) {
	res, err := tableImpl.MakeTable(cols, rows)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// NewIndexedTable instantiates a new Indexed Table given a set of Rows. The
// Options become the Table's query defaults; use config.WithColumns to name
// its columns
func NewIndexedTable[V comparable](
	rows []table.Row[V], o ...config.Option,
) (table.Indexed[V], error) {
	res, err := tableImpl.Make(rows, o...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// IndexTable instantiates a new Indexed Table holding the Rows of an existing
// Table, inheriting its column mapping. If the source is already Indexed, its
// index is copied instead of rebuilt. The two Tables share no mutable state
func IndexTable[V comparable](
	src table.Table[V], o ...config.Option,
) (table.Indexed[V], error) {
	res, err := tableImpl.From(src, o...)
	if err != nil {
		return nil, err
	}
	return res, nil
}
