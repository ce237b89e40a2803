package dependency

import (
	"github.com/habeanf/eisnerdep/eval"
	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/pkg/errors"
)

// Evaluate scores predicted heads against the gold heads of sents, over
// non-root tokens.
func Evaluate(predicted []nlp.Heads, sents []nlp.Sentence) (*eval.Total, error) {
	if len(predicted) != len(sents) {
		return nil, errors.Errorf("%d parses for %d sentences", len(predicted), len(sents))
	}
	total := &eval.Total{Results: make([]*eval.Result, 0, len(sents))}
	for i, sent := range sents {
		result, err := eval.Attachment(predicted[i], sent.GoldHeads())
		if err != nil {
			return nil, errors.Wrapf(err, "sentence %d", i)
		}
		total.Add(result)
	}
	return total, nil
}
