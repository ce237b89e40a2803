package dependency

import (
	"github.com/habeanf/eisnerdep/alg/eisner"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
)

// Weights scores a list of feature indices.
type Weights interface {
	Score(features []int) float64
}

// ArcScorer scores the arcs of one sentence.
type ArcScorer struct {
	Edges   features.EdgeFeatures
	Weights Weights
}

// Score sums the weights of the features of arc (head, modifier). Self arcs
// score eisner.FORBIDDEN and arcs that were never extracted score 0.
func (s *ArcScorer) Score(head, modifier int) float64 {
	if head == modifier {
		return eisner.FORBIDDEN
	}
	indices, exists := s.Edges[features.Arc{Head: head, Modifier: modifier}]
	if !exists {
		return 0
	}
	return s.Weights.Score(indices)
}
