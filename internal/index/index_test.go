package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tabula/internal/index"
)

var rows = [][]string{
	{"One", "Two", "Three"},
	{"Four", "Five", "Six"},
	{"Seven", "Eight", "Nine"},
}

func TestBuild(t *testing.T) {
	as := assert.New(t)

	idx := index.Build(rows)
	as.Equal(9, idx.Len())
	as.Equal(
		[]string{
			"One", "Two", "Three", "Four", "Five", "Six",
			"Seven", "Eight", "Nine",
		},
		idx.Values(),
	)
	as.Equal([]int{0}, idx.Positions("One"))
	as.Equal([]int{2}, idx.Positions("Nine"))
	as.True(idx.Has("Four"))
	as.False(idx.Has("four"))
	as.Nil(idx.Positions("missing"))
}

func TestDuplicateValues(t *testing.T) {
	as := assert.New(t)

	idx := index.Build([][]string{
		{"a", "a", "b"},
		{"b", "c", "b"},
	})
	as.Equal([]string{"a", "b", "c"}, idx.Values())
	as.Equal([]int{0}, idx.Positions("a"))
	as.Equal([]int{0, 1}, idx.Positions("b"))
	as.Equal([]int{1}, idx.Positions("c"))
}

func TestAddRemoveLast(t *testing.T) {
	as := assert.New(t)

	idx := index.Build(rows)
	before := idx.Clone()

	idx.Add(3, []string{"One", "Ten", "Ten"})
	as.Equal([]int{0, 3}, idx.Positions("One"))
	as.Equal([]int{3}, idx.Positions("Ten"))
	as.Equal(10, idx.Len())
	as.False(idx.Equal(before))

	idx.RemoveLast(3, []string{"One", "Ten", "Ten"})
	as.Equal([]int{0}, idx.Positions("One"))
	as.False(idx.Has("Ten"))
	as.True(idx.Equal(before))
	as.Equal(before.Values(), idx.Values())
}

func TestRemoveLastMatchesRebuild(t *testing.T) {
	as := assert.New(t)

	idx := index.Build(rows)
	idx.RemoveLast(2, rows[2])
	as.True(idx.Equal(index.Build(rows[:2])))

	idx.RemoveLast(1, rows[1])
	idx.RemoveLast(0, rows[0])
	as.Equal(0, idx.Len())
	as.True(idx.Equal(index.Make[string]()))
}

func TestClone(t *testing.T) {
	as := assert.New(t)

	idx := index.Build(rows)
	cl := idx.Clone()
	as.True(cl.Equal(idx))

	cl.Add(3, []string{"One"})
	as.Equal([]int{0, 3}, cl.Positions("One"))
	as.Equal([]int{0}, idx.Positions("One"))
}

func TestEqual(t *testing.T) {
	as := assert.New(t)
	as.True(index.Build(rows).Equal(index.Build(rows)))
	as.False(index.Build(rows).Equal(index.Build(rows[1:])))
	as.False(index.Build(rows[:1]).Equal(index.Build(
		[][]string{{"One", "Two", "Four"}},
	)))
}
