package eval

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

// Classes returns the distinct error classes in sorted order.
func (ers Errors) Classes() []string {
	byType := ers.ByType()
	classes := make([]string, 0, len(byType))
	for class := range byType {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// AttachmentError is a token attached to the wrong head.
type AttachmentError struct {
	Position, Predicted, Gold int
}

var _ Error = AttachmentError{}

func (e AttachmentError) String() string {
	return fmt.Sprintf("token %d: predicted head %d, gold head %d", e.Position, e.Predicted, e.Gold)
}

func (e AttachmentError) Class() string {
	if e.Predicted < e.Position {
		return "left-head"
	}
	return "right-head"
}

type Result struct {
	TP, FP, TN, FN int
	Errors         Errors
}

func (r *Result) All() int {
	return r.TP + r.FP + r.TN + r.FN
}

func (r *Result) Correct() int {
	return r.TP + r.TN
}

func (r *Result) Incorrect() int {
	return r.FP + r.FN
}

func (r *Result) Accuracy() float64 {
	return ratio(r.Correct(), r.All())
}

// Attachment scores predicted heads against gold heads, ignoring position 0
// (the root). A correct head counts as TP, a wrong one as FP.
func Attachment(predicted, gold []int) (*Result, error) {
	if len(predicted) != len(gold) {
		return nil, errors.Errorf("eval: predicted %d heads, gold has %d", len(predicted), len(gold))
	}
	r := new(Result)
	for i := 1; i < len(gold); i++ {
		if predicted[i] == gold[i] {
			r.TP++
			continue
		}
		r.FP++
		r.Errors = append(r.Errors, AttachmentError{i, predicted[i], gold[i]})
	}
	return r, nil
}

type Total struct {
	Result
	Results           []*Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.TP += r.TP
	t.FP += r.FP
	t.TN += r.TN
	t.FN += r.FN
	if r.Incorrect() == 0 {
		t.Exact += 1
	}
	t.Population += 1
	if t.Results != nil {
		t.Results = append(t.Results, r)
	}
}

func (t *Total) ExactMatch() float64 {
	return ratio(t.Exact, t.Population)
}

func (t *Total) Errors() Errors {
	retval := make(Errors, 0, t.Incorrect())
	for _, v := range t.Results {
		if v.Errors != nil {
			retval = append(retval, v.Errors...)
		}
	}
	return retval
}
