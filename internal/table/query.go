package table

import (
	"strings"

	"github.com/kode4food/tabula/match"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// columnHits finds the rows whose value at a given field position matches
// any of the keywords under a Config
type columnHits[V comparable] func(int, []V, *config.Config) *hits

// matcher returns a predicate comparing values against a keyword under a
// Mode. Exact comparisons use equality on the values themselves, the others
// compare their text
func matcher[V comparable](m match.Mode, kw V) func(V) bool {
	if m == match.Exact {
		return func(v V) bool {
			return v == kw
		}
	}
	k := m.Prepare(text(kw))
	return func(v V) bool {
		return m.Match(text(v), k)
	}
}

// matchingValues returns the distinct indexed values that match a keyword,
// in first-seen order
func (t *Indexed[V]) matchingValues(kw V, m match.Mode) []V {
	if m == match.Exact {
		if t.index.Has(kw) {
			return []V{kw}
		}
		return nil
	}
	var res []V
	fn := matcher(m, kw)
	for _, v := range t.index.Values() {
		if fn(v) {
			res = append(res, v)
		}
	}
	return res
}

func (t *Indexed[V]) HasValue(v V, o ...config.Option) bool {
	return t.hasValue(v, t.settings(o).Mode())
}

func (t *Indexed[V]) hasValue(v V, m match.Mode) bool {
	if m == match.Exact {
		return t.index.Has(v)
	}
	fn := matcher(m, v)
	for _, e := range t.index.Values() {
		if fn(e) {
			return true
		}
	}
	return false
}

func (t *Indexed[V]) HasPair(c table.Column, v V, o ...config.Option) bool {
	p, ok := t.resolve(c)
	if !ok {
		return false
	}
	fn := matcher(t.settings(o).Mode(), v)
	for _, r := range t.rows {
		if p < len(r) && fn(r[p]) {
			return true
		}
	}
	return false
}

func (t *Indexed[V]) IndicesOfValueByKeyword(
	kw V, o ...config.Option,
) []int {
	return t.valueByKeyword(kw, t.settings(o))
}

func (t *Indexed[V]) ValueByKeyword(kw V, o ...config.Option) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.valueByKeyword(kw, cfg), cfg)
}

func (t *Indexed[V]) valueByKeyword(kw V, cfg *config.Config) []int {
	var res []int
	for _, v := range t.matchingValues(kw, cfg.Mode()) {
		res = append(res, t.index.Positions(v)...)
	}
	return positions(res, cfg.Ordered)
}

func (t *Indexed[V]) IndicesOfSearch(kws []V, o ...config.Option) []int {
	return t.search(kws, t.settings(o))
}

func (t *Indexed[V]) Search(kws []V, o ...config.Option) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.search(kws, cfg), cfg)
}

func (t *Indexed[V]) search(kws []V, cfg *config.Config) []int {
	m := cfg.Mode()
	return t.searchWith(kws, cfg, func(kw V) []V {
		return t.matchingValues(kw, m)
	})
}

// searchWith gathers the rows holding any of the values that each keyword
// resolves to, then combines the per-keyword sets
func (t *Indexed[V]) searchWith(
	kws []V, cfg *config.Config, values func(V) []V,
) []int {
	sets := make([]*hits, 0, len(kws))
	for _, kw := range kws {
		h := makeHits()
		for _, v := range values(kw) {
			h.add(t.index.Positions(v)...)
		}
		sets = append(sets, h)
	}
	return positions(combine(sets, cfg.And).order, cfg.Ordered)
}

func (t *Indexed[V]) IndicesOfSearchByColumn(
	c table.Column, kws []V, o ...config.Option,
) []int {
	return t.searchByColumn(c, kws, t.settings(o), t.columnHits)
}

func (t *Indexed[V]) SearchByColumn(
	c table.Column, kws []V, o ...config.Option,
) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.searchByColumn(c, kws, cfg, t.columnHits), cfg)
}

func (t *Indexed[V]) searchByColumn(
	c table.Column, kws []V, cfg *config.Config, fn columnHits[V],
) []int {
	p, ok := t.resolve(c)
	if !ok {
		return []int{}
	}
	return positions(fn(p, kws, cfg).order, cfg.Ordered)
}

func (t *Indexed[V]) columnHits(p int, kws []V, cfg *config.Config) *hits {
	res := makeHits()
	m := cfg.Mode()
	if m == match.Exact {
		for _, kw := range kws {
			for _, i := range t.index.Positions(kw) {
				if r := t.rows[i]; p < len(r) && r[p] == kw {
					res.add(i)
				}
			}
		}
		return res
	}
	fns := make([]func(V) bool, len(kws))
	for i, kw := range kws {
		fns[i] = matcher(m, kw)
	}
	for i, r := range t.rows {
		if p < len(r) && anyMatch(fns, r[p]) {
			res.add(i)
		}
	}
	return res
}

func anyMatch[V any](fns []func(V) bool, v V) bool {
	for _, fn := range fns {
		if fn(v) {
			return true
		}
	}
	return false
}

func (t *Indexed[V]) IndicesOfCorrelation(p ...table.Predicate[V]) []int {
	return t.IndicesOfCorrelationWith(nil, p...)
}

func (t *Indexed[V]) IndicesOfCorrelationWith(
	o []config.Option, p ...table.Predicate[V],
) []int {
	return t.correlation(t.settings(o), p, t.columnHits)
}

func (t *Indexed[V]) Correlation(p ...table.Predicate[V]) table.Result[V] {
	return t.CorrelationWith(nil, p...)
}

func (t *Indexed[V]) CorrelationWith(
	o []config.Option, p ...table.Predicate[V],
) table.Result[V] {
	cfg := t.settings(o)
	return t.materialize(t.correlation(cfg, p, t.columnHits), cfg)
}

// correlation intersects the hits of every Predicate. Each Predicate's
// Options are layered over the call's settings once, up front
func (t *Indexed[V]) correlation(
	cfg *config.Config, preds []table.Predicate[V], fn columnHits[V],
) []int {
	sets := make([]*hits, 0, len(preds))
	for _, pred := range preds {
		p, ok := t.resolve(pred.Column)
		if !ok {
			return []int{}
		}
		pc := cfg.Clone()
		t.overlay(pc, pred.Options)
		sets = append(sets, fn(p, pred.Keywords, pc))
	}
	return positions(combine(sets, true).order, cfg.Ordered)
}

func (t *Indexed[V]) IndicesOfIncompleteRowSearch(
	tokens []V, o ...config.Option,
) ([]int, bool) {
	return t.incompleteRowSearch(tokens, t.settings(o))
}

func (t *Indexed[V]) IncompleteRowSearch(
	tokens []V, o ...config.Option,
) table.Result[V] {
	cfg := t.settings(o)
	res, ok := t.incompleteRowSearch(tokens, cfg)
	if !ok {
		return t.aborted(cfg)
	}
	return t.materialize(res, cfg)
}

func (t *Indexed[V]) incompleteRowSearch(
	tokens []V, cfg *config.Config,
) ([]int, bool) {
	tokens = tokenize(tokens)
	m := cfg.Mode()
	var left []V
	for _, tok := range tokens {
		if t.hasValue(tok, m) {
			left = append(left, tok)
		}
	}
	if len(left) < 2 {
		return nil, false
	}
	if float64(len(left))/float64(len(tokens)) < cfg.WordsLeft {
		return nil, false
	}
	ac := cfg.Clone()
	ac.And = true
	return t.search(left, ac), true
}

// tokenize splits a lone string token into its words
func tokenize[V comparable](tokens []V) []V {
	if len(tokens) != 1 {
		return tokens
	}
	s, ok := any(tokens[0]).(string)
	if !ok {
		return tokens
	}
	words := strings.Fields(s)
	if len(words) < 2 {
		return tokens
	}
	res := make([]V, len(words))
	for i, w := range words {
		res[i] = any(w).(V)
	}
	return res
}
