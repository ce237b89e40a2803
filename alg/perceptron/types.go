package perceptron

import (
	"github.com/habeanf/eisnerdep/util"
)

// Model is a linear model over integer feature indices.
type Model interface {
	Score(features []int) float64
	// AddSubtract rewards goldFeatures and penalizes decodedFeatures by
	// amount, once per occurrence.
	AddSubtract(goldFeatures, decodedFeatures []int, amount float64)
}

type Instance interface {
	util.Equaler
}

type DecodedInstance interface {
	Instance
	Instance() Instance
	Decoded() util.Equaler
}

type Decoded struct {
	InstanceVal Instance
	DecodedVal  util.Equaler
}

var _ DecodedInstance = &Decoded{}

func (d *Decoded) Decoded() util.Equaler {
	return d.DecodedVal
}

func (d *Decoded) Instance() Instance {
	return d.InstanceVal
}

func (d *Decoded) Equal(otherEq util.Equaler) bool {
	if otherEq == nil {
		return false
	}
	other, ok := otherEq.(*Decoded)
	if !ok || other == nil {
		return false
	}
	instanceEq := d.InstanceVal.Equal(other.InstanceVal)
	decodedEq := d.DecodedVal.Equal(other.DecodedVal)
	return instanceEq && decodedEq
}

type InstanceDecoder interface {
	Decode(i Instance, m Model) (DecodedInstance, error)
}

// UpdateDecoder decodes the instance of a gold decoded instance and returns
// the features the update should penalize (decodedFeatures) and reward
// (goldFeatures).
type UpdateDecoder interface {
	DecodeUpdate(gold DecodedInstance, m Model) (decoded DecodedInstance, decodedFeatures, goldFeatures []int, err error)
}

type SupervisedTrainer interface {
	Train(instances []DecodedInstance) error
}
