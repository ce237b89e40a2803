package dependency

import (
	"time"

	"github.com/habeanf/eisnerdep/alg/featurevector"
	"github.com/habeanf/eisnerdep/alg/perceptron"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	nlp "github.com/habeanf/eisnerdep/nlp/types"
	"github.com/habeanf/eisnerdep/util"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Trainer fits a Model to gold annotated sentences.
type Trainer struct {
	Templates *features.TemplateSet
	Log       logrus.FieldLogger

	// Progress, if set, is called after every training sentence.
	Progress func(iteration, sentence int)

	// Mistakes holds the number of wrongly decoded sentences per iteration
	// of the last Train call.
	Mistakes []int
}

// Train extracts features once over sentences and runs iterations passes of
// the perceptron over them in order.
func (t *Trainer) Train(sentences []nlp.Sentence, iterations int) (*Model, error) {
	if iterations < 0 {
		return nil, errors.Errorf("negative number of iterations %d", iterations)
	}
	templates := t.Templates
	if templates == nil {
		templates = features.DefaultTemplates()
	}
	extractor := features.NewExtractor(templates, util.NewEnumSet(templates.Len()*len(sentences)))
	if t.Log != nil {
		t.Log.Infof("Extracting features from %d sentences with %d templates", len(sentences), templates.Len())
	}
	edges, vocab := extractor.Extract(sentences)
	if t.Log != nil {
		t.Log.Infof("Extracted %d features", vocab.Len())
	}

	instances := make([]perceptron.DecodedInstance, len(sentences))
	for i, sent := range sentences {
		instances[i] = GoldInstance(&Instance{Sentence: sent, Edges: edges[i]})
	}

	weights := featurevector.NewDense(vocab.Len())
	perc := &perceptron.LinearPerceptron{
		Decoder:    NewDecoder(),
		Iterations: iterations,
		Log:        t.Log,
		Progress:   t.Progress,
	}
	perc.Init(weights)
	err := perc.Train(instances)
	t.Mistakes = perc.Mistakes
	if err != nil {
		return nil, errors.Wrap(err, "training")
	}

	vocab.Freeze()
	return &Model{
		Features: vocab,
		Weights:  weights,
		Setup:    templates.Setup(),
		Meta: Meta{
			Iterations: iterations,
			Sentences:  len(sentences),
			Created:    time.Now(),
		},
	}, nil
}
