package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTree(t *testing.T) {
	cases := []struct {
		name  string
		heads []int
		tree  bool
	}{
		{"root only", []int{NO_HEAD}, true},
		{"john saw mary", []int{NO_HEAD, 2, 0, 2}, true},
		{"chain", []int{NO_HEAD, 0, 1, 2}, true},
		{"self arc", []int{NO_HEAD, 1, 0}, false},
		{"cycle", []int{NO_HEAD, 2, 1, 0}, false},
		{"out of range", []int{NO_HEAD, 4, 0}, false},
		{"missing head", []int{NO_HEAD, NO_HEAD, 0}, false},
		{"empty", []int{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.tree, IsTree(c.heads))
		})
	}
}

func TestIsProjective(t *testing.T) {
	assert.True(t, IsProjective([]int{NO_HEAD, 2, 0, 2}))
	assert.True(t, IsProjective([]int{NO_HEAD, 0, 1, 2, 3}))
	// 1->3 and 2->4 cross
	assert.False(t, IsProjective([]int{NO_HEAD, 0, 4, 1, 0}))
	// root arc to 3 is crossed by 2->4
	assert.False(t, IsProjective([]int{NO_HEAD, 3, 4, 0, 3}))
}

func TestEdges(t *testing.T) {
	edges := Edges([]int{NO_HEAD, 2, 0})
	assert.Equal(t, []BasicDirectedEdge{{1, 2, 1}, {2, 0, 2}}, edges)
	assert.Equal(t, 2, edges[0].From())
	assert.Equal(t, 1, edges[0].To())
	assert.True(t, edges[0].Equal(BasicDirectedEdge{9, 2, 1}))
	assert.Nil(t, Edges([]int{NO_HEAD}))
}
