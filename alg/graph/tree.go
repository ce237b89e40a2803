package graph

// Edges returns one edge per non-root vertex of a head array, numbered by
// modifier position.
func Edges(heads []int) []BasicDirectedEdge {
	if len(heads) < 2 {
		return nil
	}
	edges := make([]BasicDirectedEdge, 0, len(heads)-1)
	for m := 1; m < len(heads); m++ {
		edges = append(edges, BasicDirectedEdge{m, heads[m], m})
	}
	return edges
}

// IsTree reports whether heads describes a tree rooted at 0: every vertex
// i > 0 has a head in range other than itself and following heads from i
// reaches 0 without revisiting a vertex.
func IsTree(heads []int) bool {
	n := len(heads)
	if n == 0 {
		return false
	}
	for i := 1; i < n; i++ {
		if heads[i] < 0 || heads[i] >= n || heads[i] == i {
			return false
		}
	}
	// 0 unknown, 1 on current path, 2 reaches root
	state := make([]byte, n)
	state[0] = 2
	path := make([]int, 0, n)
	for i := 1; i < n; i++ {
		path = path[:0]
		cur := i
		for state[cur] == 0 {
			state[cur] = 1
			path = append(path, cur)
			cur = heads[cur]
		}
		if state[cur] == 1 {
			return false
		}
		for _, v := range path {
			state[v] = 2
		}
	}
	return true
}

// IsProjective reports whether no two arcs of heads cross when drawn above
// the sentence. It does not check that heads is a tree.
func IsProjective(heads []int) bool {
	edges := Edges(heads)
	for a := range edges {
		i, j := edges[a].Span()
		for b := a + 1; b < len(edges); b++ {
			k, l := edges[b].Span()
			if (i < k && k < j && j < l) || (k < i && i < l && l < j) {
				return false
			}
		}
	}
	return true
}
