package dependency

import (
	"github.com/habeanf/eisnerdep/alg/eisner"
	"github.com/habeanf/eisnerdep/alg/perceptron"
	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/pkg/errors"
)

// Decoder adapts the Eisner decoder to the perceptron.
type Decoder struct {
	eisner *eisner.Decoder
}

var (
	_ perceptron.InstanceDecoder = &Decoder{}
	_ perceptron.UpdateDecoder   = &Decoder{}
)

func NewDecoder() *Decoder {
	return &Decoder{eisner.NewDecoder()}
}

// DecodeHeads returns the best projective tree of instance under weights.
func (d *Decoder) DecodeHeads(instance *Instance, weights Weights) (nlp.Heads, float64, error) {
	scorer := &ArcScorer{Edges: instance.Edges, Weights: weights}
	heads, score, err := d.eisner.Decode(instance.Sentence.Len(), scorer.Score)
	if err != nil {
		return nil, 0, err
	}
	return nlp.Heads(heads), score, nil
}

func (d *Decoder) Decode(i perceptron.Instance, m perceptron.Model) (perceptron.DecodedInstance, error) {
	instance, ok := i.(*Instance)
	if !ok {
		return nil, errors.Errorf("dependency: cannot decode instance of type %T", i)
	}
	heads, _, err := d.DecodeHeads(instance, m)
	if err != nil {
		return nil, err
	}
	return &perceptron.Decoded{InstanceVal: instance, DecodedVal: heads}, nil
}

// DecodeUpdate decodes the gold instance's sentence and collects, for every
// non-root token attached to the wrong head, the features of the predicted
// arc (decodedFeatures) and of the gold arc (goldFeatures).
func (d *Decoder) DecodeUpdate(gold perceptron.DecodedInstance, m perceptron.Model) (perceptron.DecodedInstance, []int, []int, error) {
	decoded, err := d.Decode(gold.Instance(), m)
	if err != nil {
		return nil, nil, nil, err
	}
	goldHeads, ok := gold.Decoded().(nlp.Heads)
	if !ok {
		return nil, nil, nil, errors.Errorf("dependency: gold decoding of type %T is not heads", gold.Decoded())
	}
	predicted := decoded.Decoded().(nlp.Heads)
	if len(goldHeads) != len(predicted) {
		return nil, nil, nil, errors.Errorf("dependency: %d gold heads for %d tokens", len(goldHeads), len(predicted))
	}
	var (
		edges                         = decoded.Instance().(*Instance).Edges
		decodedFeatures, goldFeatures []int
	)
	for i := 1; i < len(predicted); i++ {
		if predicted[i] == goldHeads[i] {
			continue
		}
		decodedFeatures = append(decodedFeatures, edges.Get(predicted[i], i)...)
		goldFeatures = append(goldFeatures, edges.Get(goldHeads[i], i)...)
	}
	return decoded, decodedFeatures, goldFeatures, nil
}
