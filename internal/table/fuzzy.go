package table

import (
	"github.com/kode4food/tabula/match"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// closeValues returns the candidates similar enough to a keyword, most
// similar first
func closeValues[V comparable](
	kw V, candidates []V, cfg *config.Config,
) []V {
	word := text(kw)
	textOf := text[V]
	if cfg.IgnoreCase {
		word = match.Fold(word)
		textOf = func(v V) string {
			return match.Fold(text(v))
		}
	}
	n := cfg.MaxMatches
	if n == 0 {
		n = len(candidates)
	}
	found := match.CloseMatches(
		word, candidates, textOf, n, cfg.Similarity, cfg.Scorer,
	)
	res := make([]V, len(found))
	for i, f := range found {
		res[i] = f.Value
	}
	return res
}

// distinctColumn returns the distinct values of a field position in the
// order they first appear
func (t *Indexed[V]) distinctColumn(p int) []V {
	var res []V
	seen := map[V]struct{}{}
	for _, r := range t.rows {
		if p >= len(r) {
			continue
		}
		if _, ok := seen[r[p]]; !ok {
			seen[r[p]] = struct{}{}
			res = append(res, r[p])
		}
	}
	return res
}

func (t *Indexed[V]) FuzzyHasValue(kw V, o ...config.Option) bool {
	return len(t.FuzzyGetValues(kw, o...)) != 0
}

func (t *Indexed[V]) FuzzyGetValues(kw V, o ...config.Option) []V {
	return closeValues(kw, t.index.Values(), t.settings(o))
}

func (t *Indexed[V]) FuzzyHasPair(
	c table.Column, kw V, o ...config.Option,
) bool {
	return len(t.FuzzyGetPairs(c, kw, o...)) != 0
}

func (t *Indexed[V]) FuzzyGetPairs(
	c table.Column, kw V, o ...config.Option,
) []V {
	p, ok := t.resolve(c)
	if !ok {
		return []V{}
	}
	return closeValues(kw, t.distinctColumn(p), t.settings(o))
}

func (t *Indexed[V]) IndicesOfFuzzySearch(kws []V, o ...config.Option) []int {
	return t.fuzzySearch(kws, t.settings(o))
}

func (t *Indexed[V]) FuzzySearch(
	kws []V, o ...config.Option,
) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.fuzzySearch(kws, cfg), cfg)
}

func (t *Indexed[V]) fuzzySearch(kws []V, cfg *config.Config) []int {
	candidates := t.index.Values()
	return t.searchWith(kws, cfg, func(kw V) []V {
		return closeValues(kw, candidates, cfg)
	})
}

func (t *Indexed[V]) IndicesOfFuzzyColumn(
	c table.Column, kws []V, o ...config.Option,
) []int {
	return t.searchByColumn(c, kws, t.settings(o), t.fuzzyColumnHits)
}

func (t *Indexed[V]) FuzzyColumn(
	c table.Column, kws []V, o ...config.Option,
) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(
		t.searchByColumn(c, kws, cfg, t.fuzzyColumnHits), cfg,
	)
}

func (t *Indexed[V]) fuzzyColumnHits(
	p int, kws []V, cfg *config.Config,
) *hits {
	candidates := t.distinctColumn(p)
	matched := map[V]struct{}{}
	for _, kw := range kws {
		for _, v := range closeValues(kw, candidates, cfg) {
			matched[v] = struct{}{}
		}
	}
	res := makeHits()
	for i, r := range t.rows {
		if p >= len(r) {
			continue
		}
		if _, ok := matched[r[p]]; ok {
			res.add(i)
		}
	}
	return res
}

func (t *Indexed[V]) IndicesOfFuzzyCorrelation(
	p ...table.Predicate[V],
) []int {
	return t.IndicesOfFuzzyCorrelationWith(nil, p...)
}

func (t *Indexed[V]) IndicesOfFuzzyCorrelationWith(
	o []config.Option, p ...table.Predicate[V],
) []int {
	return t.correlation(t.settings(o), p, t.fuzzyColumnHits)
}

func (t *Indexed[V]) FuzzyCorrelation(
	p ...table.Predicate[V],
) table.Result[V] {
	return t.FuzzyCorrelationWith(nil, p...)
}

func (t *Indexed[V]) FuzzyCorrelationWith(
	o []config.Option, p ...table.Predicate[V],
) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.correlation(cfg, p, t.fuzzyColumnHits), cfg)
}
