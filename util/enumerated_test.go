package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumSetSequential(t *testing.T) {
	e := NewEnumSet(4)
	for i, value := range []string{"a", "b", "c"} {
		enum, isNew := e.Add(value)
		if !isNew {
			t.Errorf("Expected %s to be new", value)
		}
		if enum != i {
			t.Errorf("Expected index %d for %s, got %d", i, value, enum)
		}
	}
	enum, isNew := e.Add("b")
	if isNew || enum != 1 {
		t.Errorf("Expected existing index 1 for b, got %d (new: %v)", enum, isNew)
	}
	if e.Len() != 3 {
		t.Errorf("Expected length 3, got %d", e.Len())
	}
	if e.ValueOf(2) != "c" {
		t.Errorf("Expected c at index 2, got %s", e.ValueOf(2))
	}
}

func TestEnumSetFrozen(t *testing.T) {
	e := NewEnumSet(2)
	e.Add("a")
	e.Freeze()
	assert.True(t, e.IsFrozen())

	enum, isNew := e.Add("a")
	assert.False(t, isNew)
	assert.Equal(t, 0, enum)

	_, exists := e.IndexOf("b")
	assert.False(t, exists)
	assert.Panics(t, func() { e.Add("b") })
	assert.Equal(t, 1, e.Len())
}

func TestEnumSetValueOfOutOfRange(t *testing.T) {
	e := NewEnumSet(1)
	e.Add("a")
	assert.Panics(t, func() { e.ValueOf(1) })
	assert.Panics(t, func() { e.ValueOf(-1) })
}

func TestNewEnumSetFromValues(t *testing.T) {
	e, err := NewEnumSetFromValues([]string{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, e.Values())
	enum, exists := e.IndexOf("z")
	assert.True(t, exists)
	assert.Equal(t, 2, enum)

	_, err = NewEnumSetFromValues([]string{"x", "y", "x"})
	assert.Error(t, err)
}
