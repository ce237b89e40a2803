// Package storage defines how trained models are persisted.
package storage

import (
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
)

// ModelReader loads a model by name.
type ModelReader interface {
	// Read returns a validated model whose vocabulary maps every feature to
	// the index it had when the model was written.
	Read(name string) (*dependency.Model, error)
}

// ModelWriter persists a model under name, replacing any previous model of
// the same name.
type ModelWriter interface {
	Write(name string, model *dependency.Model) error
}

type ModelRepository interface {
	ModelReader
	ModelWriter
}
