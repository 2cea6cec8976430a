package index

import "slices"

// Inverted maps each distinct field value to the ascending, duplicate-free
// positions of the rows containing it. Distinct values are kept in the order
// they were first seen, so that scans over them are deterministic
type Inverted[V comparable] struct {
	positions map[V][]int
	order     []V
}

// Make instantiates an empty Inverted index
func Make[V comparable]() *Inverted[V] {
	return &Inverted[V]{
		positions: map[V][]int{},
	}
}

// Build instantiates an Inverted index over a set of rows
func Build[V comparable, Row ~[]V](rows []Row) *Inverted[V] {
	res := Make[V]()
	for pos, row := range rows {
		res.Add(pos, row)
	}
	return res
}

// Add records the values of a row at the given position. Positions must be
// added in ascending order
func (i *Inverted[V]) Add(pos int, row []V) {
	for _, v := range row {
		p, ok := i.positions[v]
		if !ok {
			i.order = append(i.order, v)
		} else if p[len(p)-1] == pos {
			continue
		}
		i.positions[v] = append(p, pos)
	}
}

// RemoveLast forgets the values of the row at the given position, which must
// be the highest position in the index. Values left without positions are
// dropped entirely
func (i *Inverted[V]) RemoveLast(pos int, row []V) {
	for _, v := range row {
		p, ok := i.positions[v]
		if !ok || p[len(p)-1] != pos {
			continue
		}
		if len(p) == 1 {
			delete(i.positions, v)
			continue
		}
		i.positions[v] = p[:len(p)-1]
	}
	// values first seen in the last row are the only ones that can vanish,
	// and they sit at the tail of the order
	for len(i.order) > 0 {
		if _, ok := i.positions[i.order[len(i.order)-1]]; ok {
			break
		}
		i.order = i.order[:len(i.order)-1]
	}
}

// Clone returns a deep copy of the index
func (i *Inverted[V]) Clone() *Inverted[V] {
	res := &Inverted[V]{
		positions: make(map[V][]int, len(i.positions)),
		order:     slices.Clone(i.order),
	}
	for v, p := range i.positions {
		res.positions[v] = slices.Clone(p)
	}
	return res
}

// Has reports whether the value appears in any row
func (i *Inverted[V]) Has(v V) bool {
	_, ok := i.positions[v]
	return ok
}

// Positions returns the positions of the rows containing the value. The
// returned slice must not be modified
func (i *Inverted[V]) Positions(v V) []int {
	return i.positions[v]
}

// Values returns the distinct indexed values in first-seen order. The
// returned slice must not be modified
func (i *Inverted[V]) Values() []V {
	return i.order
}

// Len returns the number of distinct indexed values
func (i *Inverted[V]) Len() int {
	return len(i.order)
}

// Equal reports whether two indexes hold the same content
func (i *Inverted[V]) Equal(o *Inverted[V]) bool {
	if !slices.Equal(i.order, o.order) || len(i.positions) != len(o.positions) {
		return false
	}
	for v, p := range i.positions {
		if !slices.Equal(p, o.positions[v]) {
			return false
		}
	}
	return true
}
