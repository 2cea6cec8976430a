package table

import "slices"

// hits is an insertion-ordered set of row positions
type hits struct {
	seen  map[int]struct{}
	order []int
}

func makeHits() *hits {
	return &hits{
		seen: map[int]struct{}{},
	}
}

func (h *hits) add(p ...int) {
	for _, e := range p {
		if _, ok := h.seen[e]; ok {
			continue
		}
		h.seen[e] = struct{}{}
		h.order = append(h.order, e)
	}
}

func (h *hits) has(p int) bool {
	_, ok := h.seen[p]
	return ok
}

// intersect returns the positions of h that every other set also holds,
// keeping the order of h
func (h *hits) intersect(others ...*hits) *hits {
	res := makeHits()
	for _, p := range h.order {
		if allHave(others, p) {
			res.add(p)
		}
	}
	return res
}

func allHave(sets []*hits, p int) bool {
	for _, s := range sets {
		if !s.has(p) {
			return false
		}
	}
	return true
}

// combine unites or intersects a set of hits, depending on and
func combine(sets []*hits, and bool) *hits {
	if len(sets) == 0 {
		return makeHits()
	}
	if and {
		return sets[0].intersect(sets[1:]...)
	}
	res := makeHits()
	for _, s := range sets {
		res.add(s.order...)
	}
	return res
}

// positions returns the row positions, sorted ascending if ordered
func positions(p []int, ordered bool) []int {
	res := slices.Clone(p)
	if ordered {
		slices.Sort(res)
	}
	if res == nil {
		return []int{}
	}
	return res
}
