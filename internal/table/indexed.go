package table

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/kode4food/tabula/internal/index"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// Indexed is the internal implementation of a table.Indexed. Trailing
// appends and pops update the index in place. Anything that shifts row
// positions rebuilds it
type Indexed[V comparable] struct {
	Table[V]
	index  *index.Inverted[V]
	config *config.Config
	logger *slog.Logger
	id     uuid.UUID
}

// Rebuild reasons
const (
	reasonBuild   = "build"
	reasonInsert  = "insert"
	reasonSet     = "set"
	reasonRemove  = "remove"
	reasonSort    = "sort"
	reasonColumn  = "sort_by_column"
	reasonReverse = "reverse"
)

// Make instantiates a new internal Indexed Table, building its index over the
// provided Rows
func Make[V comparable](
	rows []table.Row[V], o ...config.Option,
) (*Indexed[V], error) {
	cfg, err := config.New(o...)
	if err != nil {
		return nil, err
	}
	base, err := MakeTable(cfg.Columns, rows)
	if err != nil {
		return nil, err
	}
	return makeIndexed(base, cfg, nil), nil
}

// From instantiates a new internal Indexed Table holding the Rows of an
// existing Table. The column mapping is inherited unless the Options replace
// it. An Indexed source has its index and defaults copied rather than
// rebuilt, since the index does not depend on the column mapping
func From[V comparable](
	src table.Table[V], o ...config.Option,
) (*Indexed[V], error) {
	if s, ok := src.(*Indexed[V]); ok {
		cfg := s.config.Clone()
		if err := cfg.Apply(o...); err != nil {
			return nil, err
		}
		base, err := MakeTable(cfg.Columns, s.rows)
		if err != nil {
			return nil, err
		}
		return makeIndexed(base, cfg, s.index.Clone()), nil
	}
	return Make(src.Rows(), append([]config.Option{
		config.WithColumns(src.Columns()),
	}, o...)...)
}

func makeIndexed[V comparable](
	base *Table[V], cfg *config.Config, idx *index.Inverted[V],
) *Indexed[V] {
	id := uuid.New()
	cfg.Columns = base.Columns()
	res := &Indexed[V]{
		Table:  *base,
		config: cfg,
		id:     id,
		logger: cfg.Logger.With(slog.String("table", id.String())),
	}
	if idx != nil {
		res.index = idx
		return res
	}
	if len(res.rows) == 0 {
		res.index = index.Make[V]()
		return res
	}
	res.rebuild(reasonBuild)
	return res
}

// ID returns the identity that the Table's log records carry
func (t *Indexed[_]) ID() uuid.UUID {
	return t.id
}

func (t *Indexed[V]) Copy() table.Indexed[V] {
	base := &Table[V]{
		columns: t.Columns(),
		rows:    cloneRows(t.rows),
	}
	return makeIndexed(base, t.config.Clone(), t.index.Clone())
}

func (t *Indexed[V]) Append(r table.Row[V]) {
	t.Table.Append(r)
	last := len(t.rows) - 1
	t.index.Add(last, t.rows[last])
}

func (t *Indexed[V]) Extend(rows ...table.Row[V]) {
	for _, r := range rows {
		t.Append(r)
	}
}

func (t *Indexed[V]) Insert(i int, r table.Row[V]) error {
	if i == len(t.rows) {
		t.Append(r)
		return nil
	}
	if err := t.Table.Insert(i, r); err != nil {
		return err
	}
	t.rebuild(reasonInsert)
	return nil
}

func (t *Indexed[V]) Set(i int, r table.Row[V]) error {
	if err := t.Table.Set(i, r); err != nil {
		return err
	}
	t.rebuild(reasonSet)
	return nil
}

func (t *Indexed[V]) Pop() (table.Row[V], error) {
	return t.PopAt(-1)
}

func (t *Indexed[V]) PopAt(i int) (table.Row[V], error) {
	p, ok := t.position(i)
	trailing := ok && p == len(t.rows)-1
	res, err := t.Table.PopAt(i)
	if err != nil {
		return nil, err
	}
	if trailing {
		t.index.RemoveLast(p, res)
	} else {
		t.rebuild(reasonRemove)
	}
	return res, nil
}

func (t *Indexed[V]) Remove(r table.Row[V]) error {
	p, err := t.find(r)
	if err != nil {
		return err
	}
	_, err = t.PopAt(p)
	return err
}

func (t *Indexed[V]) Sort(cmp func(a, b table.Row[V]) int) {
	t.Table.Sort(cmp)
	t.rebuild(reasonSort)
}

func (t *Indexed[V]) SortByColumn(
	c table.Column, cmp func(a, b V) int, reverse bool,
) error {
	if err := t.Table.SortByColumn(c, cmp, reverse); err != nil {
		return err
	}
	t.rebuild(reasonColumn)
	return nil
}

func (t *Indexed[_]) Reverse() {
	t.Table.Reverse()
	t.rebuild(reasonReverse)
}

func (t *Indexed[V]) Clear() {
	t.Table.Clear()
	t.index = index.Make[V]()
}

func (t *Indexed[V]) rebuild(reason string) {
	t.index = index.Build(t.rows)
	t.logger.Debug("index rebuilt",
		slog.String("reason", reason),
		slog.Int("rows", len(t.rows)),
		slog.Int("values", t.index.Len()),
	)
}

// settings layers per-call Options over the Table's defaults. An Option that
// fails is skipped, leaving the default in place
func (t *Indexed[_]) settings(o []config.Option) *config.Config {
	res := t.config.Clone()
	t.overlay(res, o)
	return res
}

func (t *Indexed[_]) overlay(c *config.Config, o []config.Option) {
	for _, opt := range o {
		if err := opt(c); err != nil {
			t.logger.Warn("query option ignored", slog.Any("error", err))
		}
	}
}

var (
	_ table.Table[string]   = (*Table[string])(nil)
	_ table.Indexed[string] = (*Indexed[string])(nil)
)
