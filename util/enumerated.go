package util

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// EnumSet interns strings to dense, insertion-ordered indices.
//
// The first string added gets index 0, the next unseen string gets 1 and so
// on. Indices are never reassigned and the set never shrinks. A frozen set
// rejects additions, which makes it safe to share between readers once a
// model has been loaded.
type EnumSet struct {
	mu     sync.RWMutex
	Enum   map[string]int
	Index  []string
	Frozen bool
}

// Add returns the index of value, assigning the next sequential index if the
// value was not seen before. The boolean reports whether value was new.
func (e *EnumSet) Add(value string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	enum, exists := e.Enum[value]
	if exists {
		return enum, false
	}
	if e.Frozen {
		panic("Cannot add value to frozen enum set: " + value)
	}
	enum = len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet) IndexOf(value string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	enum, exists := e.Enum[value]
	return enum, exists
}

func (e *EnumSet) ValueOf(index int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if index < 0 {
		panic("Negative index requested")
	}
	if len(e.Index) <= index {
		panic("Unknown index requested: " + fmt.Sprintf("%v of %v", index, len(e.Index)))
	}
	return e.Index[index]
}

func (e *EnumSet) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.Index)
}

// Freeze stops the set from growing. Lookups of unknown values keep
// returning false from IndexOf; Add of an unknown value panics.
func (e *EnumSet) Freeze() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Frozen = true
}

func (e *EnumSet) IsFrozen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.Frozen
}

// Values returns a copy of the values in index order.
func (e *EnumSet) Values() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	values := make([]string, len(e.Index))
	copy(values, e.Index)
	return values
}

func NewEnumSet(capacity int) *EnumSet {
	e := &EnumSet{
		sync.RWMutex{},
		make(map[string]int, capacity),
		make([]string, 0, capacity),
		false,
	}
	return e
}

// NewEnumSetFromValues rebuilds a set whose i'th value is values[i]. It is
// used when reloading a persisted vocabulary, where the mapping has to come
// back byte-identical.
func NewEnumSetFromValues(values []string) (*EnumSet, error) {
	e := NewEnumSet(len(values))
	for i, value := range values {
		if enum, isNew := e.Add(value); !isNew {
			return nil, errors.Errorf("duplicate value %q at index %d (first seen at %d)", value, i, enum)
		}
	}
	return e, nil
}
