package table

import "github.com/kode4food/tabula/internal/index"

// IndexOf exposes the inverted index of an Indexed Table to tests
func IndexOf[V comparable](t *Indexed[V]) *index.Inverted[V] {
	return t.index
}
