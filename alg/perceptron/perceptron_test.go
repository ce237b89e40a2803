package perceptron

import (
	"testing"

	"github.com/habeanf/eisnerdep/alg/featurevector"
	"github.com/habeanf/eisnerdep/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point is a toy instance with a few active features, classified as 0
// or 1. The weight index of feature f under class c is 2*f+c.
type point struct {
	features []int
}

func (p *point) Equal(other util.Equaler) bool {
	o, ok := other.(*point)
	return ok && o == p
}

type class int

func (c class) Equal(other util.Equaler) bool {
	o, ok := other.(class)
	return ok && o == c
}

func classFeatures(p *point, c class) []int {
	features := make([]int, len(p.features))
	for i, f := range p.features {
		features[i] = 2*f + int(c)
	}
	return features
}

type classDecoder struct {
	calls int
	err   error
}

func (d *classDecoder) DecodeUpdate(gold DecodedInstance, m Model) (DecodedInstance, []int, []int, error) {
	d.calls++
	if d.err != nil {
		return nil, nil, nil, d.err
	}
	p := gold.Instance().(*point)
	var best class
	if m.Score(classFeatures(p, 1)) > m.Score(classFeatures(p, 0)) {
		best = 1
	}
	goldClass := gold.Decoded().(class)
	decoded := &Decoded{InstanceVal: p, DecodedVal: best}
	return decoded, classFeatures(p, best), classFeatures(p, goldClass), nil
}

func TestLinearPerceptronSeparable(t *testing.T) {
	instances := []DecodedInstance{
		&Decoded{&point{[]int{0, 2}}, class(1)},
		&Decoded{&point{[]int{1, 2}}, class(0)},
		&Decoded{&point{[]int{0, 3}}, class(1)},
		&Decoded{&point{[]int{1, 3}}, class(0)},
	}
	weights := featurevector.NewDense(8)
	decoder := &classDecoder{}
	p := &LinearPerceptron{Decoder: decoder, Iterations: 5}
	p.Init(weights)
	require.NoError(t, p.Train(instances))

	assert.Equal(t, 5*len(instances), decoder.calls)
	require.Len(t, p.Mistakes, 5)
	assert.NotZero(t, p.Mistakes[0])
	assert.Zero(t, p.Mistakes[4])

	snapshot := append(featurevector.Dense(nil), weights...)
	p.Iterations = 2
	require.NoError(t, p.Train(instances))
	assert.Equal(t, snapshot, weights, "a converged model must not change")
}

func TestLinearPerceptronProgress(t *testing.T) {
	instances := []DecodedInstance{
		&Decoded{&point{[]int{0}}, class(1)},
		&Decoded{&point{[]int{1}}, class(0)},
	}
	var seen [][2]int
	p := &LinearPerceptron{
		Decoder:    &classDecoder{},
		Iterations: 2,
		Progress: func(iteration, instance int) {
			seen = append(seen, [2]int{iteration, instance})
		},
	}
	p.Init(featurevector.NewDense(4))
	require.NoError(t, p.Train(instances))
	assert.Equal(t, [][2]int{{1, 0}, {1, 1}, {2, 0}, {2, 1}}, seen)
}

func TestLinearPerceptronDecodeError(t *testing.T) {
	failure := errors.New("boom")
	p := &LinearPerceptron{Decoder: &classDecoder{err: failure}, Iterations: 3}
	p.Init(featurevector.NewDense(2))
	err := p.Train([]DecodedInstance{&Decoded{&point{[]int{0}}, class(0)}})
	require.Error(t, err)
	assert.Equal(t, failure, errors.Cause(err))
}

func TestLinearPerceptronUninitialized(t *testing.T) {
	p := &LinearPerceptron{Decoder: &classDecoder{}, Iterations: 1}
	assert.Panics(t, func() { _ = p.Train(nil) })
}

func TestDecodedEqual(t *testing.T) {
	pt := &point{[]int{0}}
	a := &Decoded{pt, class(1)}
	assert.True(t, a.Equal(&Decoded{pt, class(1)}))
	assert.False(t, a.Equal(&Decoded{pt, class(0)}))
	assert.False(t, a.Equal(&Decoded{&point{[]int{0}}, class(1)}))
	assert.False(t, a.Equal(nil))
}
