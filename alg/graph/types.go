package graph

import "github.com/habeanf/eisnerdep/util"

// NO_HEAD marks the head slot of the root, which has no governor.
const NO_HEAD = -1

// BasicDirectedEdge is {id, from, to}; for dependency arcs from is the head
// and to is the modifier.
type BasicDirectedEdge [3]int

func (e BasicDirectedEdge) ID() int {
	return e[0]
}

func (e BasicDirectedEdge) From() int {
	return e[1]
}

func (e BasicDirectedEdge) To() int {
	return e[2]
}

func (e BasicDirectedEdge) Vertices() []int {
	return []int{e[1], e[2]}
}

func (e BasicDirectedEdge) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(BasicDirectedEdge)
	return ok && e[1] == other[1] && e[2] == other[2]
}

// Span returns the edge endpoints in left to right order.
func (e BasicDirectedEdge) Span() (int, int) {
	if e[1] < e[2] {
		return e[1], e[2]
	}
	return e[2], e[1]
}
