// Package dependency trains and applies a first-order projective dependency
// parser: arc-factored perceptron weights decoded with Eisner's algorithm.
package dependency

import (
	"reflect"

	"github.com/habeanf/eisnerdep/alg/perceptron"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	nlp "github.com/habeanf/eisnerdep/nlp/types"
	"github.com/habeanf/eisnerdep/util"
)

// Instance is a sentence together with its extracted arc features.
type Instance struct {
	Sentence nlp.Sentence
	Edges    features.EdgeFeatures
}

var _ perceptron.Instance = &Instance{}

func (i *Instance) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Instance)
	if !ok || other == nil {
		return false
	}
	if i == other {
		return true
	}
	return reflect.DeepEqual(i.Sentence, other.Sentence)
}

// GoldInstance pairs an instance with the gold heads of its sentence.
func GoldInstance(instance *Instance) perceptron.DecodedInstance {
	return &perceptron.Decoded{
		InstanceVal: instance,
		DecodedVal:  instance.Sentence.GoldHeads(),
	}
}
