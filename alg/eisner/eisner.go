// Package eisner finds the highest scoring projective dependency tree under
// an arc-factored score with Eisner's O(n^3) dynamic program.
package eisner

import (
	"github.com/habeanf/eisnerdep/alg/graph"

	"github.com/pkg/errors"
)

// FORBIDDEN scores arcs that may never be chosen. It is finite so that sums
// in the chart stay well defined, and far below any sum of real weights.
const FORBIDDEN = -1e30

var ErrEmptySentence = errors.New("eisner: sentence has no tokens")

// ScoreFunc scores the arc head -> modifier. It is only called with
// head != modifier.
type ScoreFunc func(head, modifier int) float64

// Decoder decodes sentences one at a time, keeping its chart between calls.
// A Decoder must not be used from more than one goroutine at a time.
type Decoder struct {
	chart Chart
	stack []item
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode is a convenience wrapper around a fresh Decoder.
func Decode(n int, score ScoreFunc) ([]int, float64, error) {
	return NewDecoder().Decode(n, score)
}

// Chart exposes the tables of the last decoded sentence.
func (d *Decoder) Chart() *Chart {
	return &d.chart
}

// Decode returns the head of every token of an n token sentence (root at
// position 0 included) and the score of the tree. heads[0] is graph.NO_HEAD.
// Ties are broken in favor of the first split point encountered.
func (d *Decoder) Decode(n int, score ScoreFunc) ([]int, float64, error) {
	if n < 1 {
		return nil, 0, ErrEmptySentence
	}
	heads := make([]int, n)
	for i := range heads {
		heads[i] = graph.NO_HEAD
	}
	if n == 1 {
		d.chart.reset(1)
		return heads, 0, nil
	}

	c := &d.chart
	c.reset(n)
	for h := 0; h < n; h++ {
		for m := 0; m < n; m++ {
			if h == m {
				c.arcs[c.at(h, m)] = FORBIDDEN
			} else {
				c.arcs[c.at(h, m)] = score(h, m)
			}
		}
	}
	d.fill()
	d.backtrack(heads)
	return heads, c.Score(CompleteLeft, 0, n-1), nil
}

func (d *Decoder) fill() {
	var (
		c                   = &d.chart
		n                   = c.n
		cr, cl, ir, il      = c.scores[CompleteRight], c.scores[CompleteLeft], c.scores[IncompleteRight], c.scores[IncompleteLeft]
		best, candidate     float64
		split, j, cell      int
		arcLeft, arcRight   float64
		bestLeft, bestRight float64
	)
	for m := 1; m < n; m++ {
		for i := 0; i+m < n; i++ {
			j = i + m
			cell = c.at(i, j)

			// both incomplete spans join the same two complete halves and
			// differ only in the direction of the arc between i and j
			arcLeft, arcRight = c.arcs[c.at(i, j)], c.arcs[c.at(j, i)]
			split = -1
			for k := i; k < j; k++ {
				candidate = cl[c.at(i, k)] + cr[c.at(k+1, j)]
				if split < 0 || candidate > best {
					best, split = candidate, k
				}
			}
			bestRight, bestLeft = best+arcRight, best+arcLeft
			ir[cell], c.splits[IncompleteRight][cell] = bestRight, split
			il[cell], c.splits[IncompleteLeft][cell] = bestLeft, split

			split = -1
			for k := i; k < j; k++ {
				candidate = cr[c.at(i, k)] + ir[c.at(k, j)]
				if split < 0 || candidate > best {
					best, split = candidate, k
				}
			}
			cr[cell], c.splits[CompleteRight][cell] = best, split

			split = -1
			for k := i + 1; k <= j; k++ {
				candidate = il[c.at(i, k)] + cl[c.at(k, j)]
				if split < 0 || candidate > best {
					best, split = candidate, k
				}
			}
			cl[cell], c.splits[CompleteLeft][cell] = best, split
		}
	}
}

type item struct {
	i, j int
	kind Span
}

// backtrack follows the backpointers from the complete left-headed span
// over the whole sentence, assigning a head at every incomplete span.
func (d *Decoder) backtrack(heads []int) {
	c := &d.chart
	stack := append(d.stack[:0], item{0, c.n - 1, CompleteLeft})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.i == cur.j {
			continue
		}
		k := c.Split(cur.kind, cur.i, cur.j)
		switch cur.kind {
		case CompleteLeft:
			stack = append(stack, item{cur.i, k, IncompleteLeft}, item{k, cur.j, CompleteLeft})
		case CompleteRight:
			stack = append(stack, item{cur.i, k, CompleteRight}, item{k, cur.j, IncompleteRight})
		case IncompleteLeft:
			heads[cur.j] = cur.i
			stack = append(stack, item{cur.i, k, CompleteLeft}, item{k + 1, cur.j, CompleteRight})
		case IncompleteRight:
			heads[cur.i] = cur.j
			stack = append(stack, item{cur.i, k, CompleteLeft}, item{k + 1, cur.j, CompleteRight})
		}
	}
	d.stack = stack
}
