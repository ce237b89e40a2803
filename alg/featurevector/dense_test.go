package featurevector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseScore(t *testing.T) {
	v := Dense{1.0, -2.0, 0.5}
	if score := v.Score([]int{0, 2, 2}); score != 2.0 {
		t.Errorf("Expected score 2.0, got %v", score)
	}
	if score := v.Score(nil); score != 0.0 {
		t.Errorf("Expected score 0.0 for no features, got %v", score)
	}
}

func TestDenseAddSubtract(t *testing.T) {
	v := NewDense(4)
	v.AddSubtract([]int{0, 1, 1}, []int{1, 3}, 1.0)
	assert.Equal(t, Dense{1.0, 1.0, 0.0, -1.0}, v)
	assert.Equal(t, 3, v.NonZero())
}

func TestDenseOutOfBounds(t *testing.T) {
	v := NewDense(2)
	assert.Panics(t, func() { v.Score([]int{2}) })
	assert.Panics(t, func() { v.Score([]int{-1}) })
	assert.Panics(t, func() { v.AddSubtract([]int{0}, []int{5}, 1.0) })
	// the failed update must not have touched the in-range weight
	assert.Equal(t, Dense{0.0, 0.0}, v)
}

func TestDenseNonZero(t *testing.T) {
	v := NewDense(3)
	if v.NonZero() != 0 {
		t.Errorf("Expected no non-zero weights, got %d", v.NonZero())
	}
	v.AddSubtract([]int{2}, []int{2}, 1.0)
	assert.Equal(t, 0, v.NonZero())
	v.AddSubtract([]int{0, 2}, nil, 0.5)
	assert.Equal(t, 2, v.NonZero())
}
