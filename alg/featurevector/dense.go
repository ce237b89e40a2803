package featurevector

import "fmt"

// Dense is a weight vector indexed by feature index.
type Dense []float64

func NewDense(size int) Dense {
	return make(Dense, size)
}

// Score sums the weights of features. It panics on an index outside the
// vector: such an index means the vocabulary and the weights are out of step.
func (v Dense) Score(features []int) float64 {
	var result float64
	for _, f := range features {
		v.check(f)
		result += v[f]
	}
	return result
}

// AddSubtract adds amount to every weight in goldFeatures and subtracts it
// from every weight in decodedFeatures. A feature occurring k times is
// updated k times. All indices are checked before any weight changes.
func (v Dense) AddSubtract(goldFeatures, decodedFeatures []int, amount float64) {
	for _, f := range goldFeatures {
		v.check(f)
	}
	for _, f := range decodedFeatures {
		v.check(f)
	}
	for _, f := range decodedFeatures {
		v[f] -= amount
	}
	for _, f := range goldFeatures {
		v[f] += amount
	}
}

// NonZero counts weights different from zero.
func (v Dense) NonZero() int {
	var count int
	for _, val := range v {
		if val != 0.0 {
			count++
		}
	}
	return count
}

func (v Dense) check(f int) {
	if f < 0 || f >= len(v) {
		panic(fmt.Sprintf("Unknown feature index requested: %d of %d", f, len(v)))
	}
}
