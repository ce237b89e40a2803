// Package gobfile stores models as gob encoded files.
package gobfile

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	"github.com/habeanf/eisnerdep/storage"
	"github.com/habeanf/eisnerdep/util"

	"github.com/pkg/errors"
)

// modelFile is the on-disk form of a model. Features is in index order.
type modelFile struct {
	Features []string
	Weights  []float64
	Setup    *features.FeatureSetup
	Meta     dependency.Meta
}

// ModelStore reads and writes models as files; a model's name is its path,
// relative names resolved against Dir.
type ModelStore struct {
	Dir string
}

var _ storage.ModelRepository = (*ModelStore)(nil)

func NewModelStore(dir string) *ModelStore {
	return &ModelStore{Dir: dir}
}

func (s *ModelStore) path(name string) string {
	if s.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

func (s *ModelStore) Write(name string, model *dependency.Model) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "refusing to write invalid model")
	}
	file, err := os.Create(s.path(name))
	if err != nil {
		return errors.Wrap(err, "creating model file")
	}
	serialized := &modelFile{
		Features: model.Features.Values(),
		Weights:  model.Weights,
		Setup:    model.Setup,
		Meta:     model.Meta,
	}
	if err := gob.NewEncoder(file).Encode(serialized); err != nil {
		file.Close()
		return errors.Wrapf(err, "encoding model %s", name)
	}
	return file.Close()
}

func (s *ModelStore) Read(name string) (*dependency.Model, error) {
	file, err := os.Open(s.path(name))
	if err != nil {
		return nil, errors.Wrap(err, "opening model file")
	}
	defer file.Close()

	serialized := new(modelFile)
	if err := gob.NewDecoder(file).Decode(serialized); err != nil {
		return nil, errors.Wrapf(err, "decoding model %s", name)
	}
	vocab, err := util.NewEnumSetFromValues(serialized.Features)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s vocabulary", name)
	}
	vocab.Freeze()
	model := &dependency.Model{
		Features: vocab,
		Weights:  serialized.Weights,
		Setup:    serialized.Setup,
		Meta:     serialized.Meta,
	}
	if err := model.Validate(); err != nil {
		return nil, errors.Wrapf(err, "model %s", name)
	}
	return model, nil
}
