package dependency

import (
	"time"

	"github.com/habeanf/eisnerdep/alg/featurevector"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	"github.com/habeanf/eisnerdep/util"

	"github.com/pkg/errors"
)

// Meta describes how a model was trained.
type Meta struct {
	RunID      string
	TrainFile  string
	TrainMD5   string
	Iterations int
	Sentences  int
	Created    time.Time
}

// Model is a trained parser: the feature vocabulary, one weight per
// vocabulary entry and the templates the vocabulary was extracted with.
type Model struct {
	Features *util.EnumSet
	Weights  featurevector.Dense
	Setup    *features.FeatureSetup
	Meta     Meta
}

// Validate checks that the weights cover the vocabulary and that the
// templates compile.
func (m *Model) Validate() error {
	if m.Features == nil {
		return errors.New("model has no feature vocabulary")
	}
	if len(m.Weights) < m.Features.Len() {
		return errors.Errorf("model has %d weights for %d features", len(m.Weights), m.Features.Len())
	}
	if _, err := m.Templates(); err != nil {
		return err
	}
	return nil
}

// Templates compiles the model's feature setup, falling back to the default
// templates when the model carries none.
func (m *Model) Templates() (*features.TemplateSet, error) {
	if m.Setup == nil || m.Setup.NumFeatures() == 0 {
		return features.DefaultTemplates(), nil
	}
	set, err := m.Setup.Compile()
	if err != nil {
		return nil, errors.Wrap(err, "model feature setup")
	}
	return set, nil
}
