package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachment(t *testing.T) {
	r, err := Attachment([]int{-1, 2, 0, 2}, []int{-1, 2, 0, 2})
	require.NoError(t, err)
	if r.TP != 3 || r.FP != 0 {
		t.Errorf("Expected 3 correct 0 wrong, got %d %d", r.TP, r.FP)
	}
	assert.Equal(t, 1.0, r.Accuracy())

	r, err = Attachment([]int{-1, 0, 1, 2}, []int{-1, 2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, r.TP)
	assert.Equal(t, 2, r.FP)
	assert.InDelta(t, 1.0/3.0, r.Accuracy(), 1e-12)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, AttachmentError{1, 0, 2}, r.Errors[0])
	assert.Equal(t, "left-head", r.Errors[0].Class())

	_, err = Attachment([]int{-1, 0}, []int{-1, 0, 1})
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	total := &Total{Results: make([]*Result, 0, 2)}
	exact, _ := Attachment([]int{-1, 2, 0}, []int{-1, 2, 0})
	wrong, _ := Attachment([]int{-1, 2, 0}, []int{-1, 0, 1})
	total.Add(exact)
	total.Add(wrong)

	assert.Equal(t, 2, total.Population)
	assert.Equal(t, 1, total.Exact)
	assert.Equal(t, 0.5, total.ExactMatch())
	assert.Equal(t, 0.5, total.Accuracy())
	assert.Len(t, total.Errors(), 2)
	assert.Equal(t, map[string]int{"left-head": 1, "right-head": 1}, total.Errors().ByType())
	assert.Equal(t, []string{"left-head", "right-head"}, total.Errors().Classes())
}

func TestErrorClassesSorted(t *testing.T) {
	errs := Errors{
		AttachmentError{3, 5, 1},
		AttachmentError{2, 0, 1},
		AttachmentError{4, 6, 0},
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, []string{"left-head", "right-head"}, errs.Classes())
	}
	assert.Empty(t, Errors{}.Classes())
}

func TestEmptyTotal(t *testing.T) {
	total := new(Total)
	assert.Equal(t, 0.0, total.Accuracy())
	assert.Equal(t, 0.0, total.ExactMatch())
}
