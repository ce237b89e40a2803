package dependency

import (
	"context"
	"runtime"
	"sync"

	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Parser parses sentences with a trained model. It is safe for concurrent
// use.
type Parser struct {
	Model   *Model
	Workers int
	Log     logrus.FieldLogger

	mu        sync.Mutex
	extractor *features.Extractor
	decoders  sync.Pool
}

// NewParser validates model and freezes its vocabulary, so features unseen
// in training are dropped instead of added.
func NewParser(model *Model) (*Parser, error) {
	if model == nil {
		return nil, errors.New("no model")
	}
	if err := model.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	templates, err := model.Templates()
	if err != nil {
		return nil, err
	}
	model.Features.Freeze()
	p := &Parser{
		Model:     model,
		extractor: features.NewExtractor(templates, model.Features),
	}
	p.decoders.New = func() interface{} { return NewDecoder() }
	return p, nil
}

func (p *Parser) instance(sent nlp.Sentence) *Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &Instance{Sentence: sent, Edges: p.extractor.ExtractSentence(sent)}
}

func (p *Parser) decode(instance *Instance) (nlp.Heads, error) {
	decoder := p.decoders.Get().(*Decoder)
	defer p.decoders.Put(decoder)
	heads, _, err := decoder.DecodeHeads(instance, p.Model.Weights)
	return heads, err
}

// Parse returns the heads of sent, heads[0] being NO_HEAD.
func (p *Parser) Parse(sent nlp.Sentence) (nlp.Heads, error) {
	return p.decode(p.instance(sent))
}

// ParseAll parses sents on up to Workers goroutines (NumCPU when Workers is
// not positive). The i'th result belongs to the i'th sentence.
func (p *Parser) ParseAll(ctx context.Context, sents []nlp.Sentence) ([]nlp.Heads, error) {
	instances := make([]*Instance, len(sents))
	for i, sent := range sents {
		instances[i] = p.instance(sent)
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if p.Log != nil {
		p.Log.Infof("Parsing %d sentences with %d workers", len(sents), workers)
	}

	results := make([]nlp.Heads, len(sents))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range instances {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			heads, err := p.decode(instances[i])
			if err != nil {
				return errors.Wrapf(err, "sentence %d", i)
			}
			results[i] = heads
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
