package perceptron

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LinearPerceptron is an online structured perceptron with unit updates.
//
// Every iteration walks the instances in the order given. An instance whose
// decoding differs from gold immediately updates Model, so the next instance
// is decoded with the updated weights.
type LinearPerceptron struct {
	Decoder    UpdateDecoder
	Iterations int
	Model      Model
	Log        logrus.FieldLogger

	// Progress, if set, is called after each instance.
	Progress func(iteration, instance int)

	// Mistakes[i] is the number of instances decoded incorrectly during
	// iteration i+1.
	Mistakes []int
}

var _ SupervisedTrainer = &LinearPerceptron{}

func (m *LinearPerceptron) Init(newModel Model) {
	m.Model = newModel
	m.Mistakes = nil
}

func (m *LinearPerceptron) Train(goldInstances []DecodedInstance) error {
	if m.Model == nil {
		panic("Model not initialized")
	}
	if m.Decoder == nil {
		return errors.New("perceptron: no decoder")
	}
	if m.Iterations < 0 {
		return errors.Errorf("perceptron: negative number of iterations %d", m.Iterations)
	}
	m.Mistakes = make([]int, 0, m.Iterations)
	for i := 1; i <= m.Iterations; i++ {
		m.logf("Training iteration: %d of %d", i, m.Iterations)
		mistakes, err := m.iteration(i, goldInstances)
		if err != nil {
			return err
		}
		m.Mistakes = append(m.Mistakes, mistakes)
		m.logf("Iteration %d: %d of %d instances decoded incorrectly", i, mistakes, len(goldInstances))
	}
	return nil
}

func (m *LinearPerceptron) iteration(i int, goldInstances []DecodedInstance) (int, error) {
	var mistakes int
	for j, goldInstance := range goldInstances {
		if m.Log != nil {
			m.Log.Debugf("\tTraining sentence: %d of %d", j+1, len(goldInstances))
		}
		decodedInstance, decodedFeatures, goldFeatures, err := m.Decoder.DecodeUpdate(goldInstance, m.Model)
		if err != nil {
			return mistakes, errors.Wrapf(err, "iteration %d, instance %d", i, j)
		}
		if !goldInstance.Equal(decodedInstance) {
			mistakes++
			m.Model.AddSubtract(goldFeatures, decodedFeatures, 1.0)
		}
		if m.Progress != nil {
			m.Progress(i, j)
		}
	}
	return mistakes, nil
}

func (m *LinearPerceptron) logf(format string, args ...interface{}) {
	if m.Log != nil {
		m.Log.Infof(format, args...)
	}
}
