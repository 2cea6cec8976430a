package table

import (
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// materialize maps row positions back to their Rows, wrapping them in a new
// Indexed Table when the Config asks for conversion
func (t *Indexed[V]) materialize(
	p []int, cfg *config.Config,
) table.Result[V] {
	rows := make([]table.Row[V], len(p))
	for i, e := range p {
		rows[i] = t.rows[e].Clone()
	}
	return t.result(rows, cfg)
}

// aborted is the Result of a search that declined to run: a single empty Row
func (t *Indexed[V]) aborted(cfg *config.Config) table.Result[V] {
	res := t.result([]table.Row[V]{{}}, cfg)
	res.Aborted = true
	return res
}

func (t *Indexed[V]) result(
	rows []table.Row[V], cfg *config.Config,
) table.Result[V] {
	res := table.Result[V]{Rows: rows}
	if cfg.Convert {
		res.Table = t.derive(rows)
	}
	return res
}

// derive builds a new Indexed Table over its own copy of a subset of Rows,
// with this Table's column mapping and defaults
func (t *Indexed[V]) derive(rows []table.Row[V]) *Indexed[V] {
	base := &Table[V]{
		columns: t.Columns(),
		rows:    cloneRows(rows),
	}
	return makeIndexed(base, t.config.Clone(), nil)
}
