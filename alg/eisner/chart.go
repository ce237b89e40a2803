package eisner

// Span names one of the four chart tables.
//
// Right/Left is the side of the head: CompleteRight[i][j] is headed by j,
// CompleteLeft[i][j] by i. An incomplete span [i,j] holds the arc between
// its two boundaries; a complete span has its inner boundary closed.
type Span int

const (
	CompleteRight Span = iota
	CompleteLeft
	IncompleteRight
	IncompleteLeft
	NUM_SPANS
)

var spanNames = [NUM_SPANS]string{"CompleteRight", "CompleteLeft", "IncompleteRight", "IncompleteLeft"}

func (s Span) String() string {
	if s < 0 || s >= NUM_SPANS {
		return "Span(?)"
	}
	return spanNames[s]
}

// Chart holds the score and backpointer tables for one sentence as flat
// row-major n*n slices, plus the arc score table.
type Chart struct {
	n      int
	scores [NUM_SPANS][]float64
	splits [NUM_SPANS][]int
	arcs   []float64
}

// reset sizes the chart for n tokens, reusing storage when it is large
// enough. Every cell read by the recurrence is written before it is read,
// so only the width-0 diagonal needs clearing.
func (c *Chart) reset(n int) {
	c.n = n
	size := n * n
	if cap(c.arcs) < size {
		for s := range c.scores {
			c.scores[s] = make([]float64, size)
			c.splits[s] = make([]int, size)
		}
		c.arcs = make([]float64, size)
	} else {
		for s := range c.scores {
			c.scores[s] = c.scores[s][:size]
			c.splits[s] = c.splits[s][:size]
		}
		c.arcs = c.arcs[:size]
	}
	for i := 0; i < n; i++ {
		for s := range c.scores {
			c.scores[s][c.at(i, i)] = 0
			c.splits[s][c.at(i, i)] = -1
		}
	}
}

func (c *Chart) at(i, j int) int {
	return i*c.n + j
}

// Len is the sentence length the chart was last filled for.
func (c *Chart) Len() int {
	return c.n
}

// Score returns the best score of span kind over [i,j].
func (c *Chart) Score(kind Span, i, j int) float64 {
	return c.scores[kind][c.at(i, j)]
}

// Split returns the split point recorded for span kind over [i,j], or -1
// for a width-0 span.
func (c *Chart) Split(kind Span, i, j int) int {
	return c.splits[kind][c.at(i, j)]
}
