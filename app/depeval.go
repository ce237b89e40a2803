package app

import (
	"fmt"

	"github.com/habeanf/eisnerdep/nlp/format/conll"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
)

func DepEvalConfigOut() {
	Log.Infof("Data")
	Log.Infof("Parsed result file:\t%s", input)
	Log.Infof("Gold file:\t\t%s", inputGold)
}

func DepEval(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"in", "g"}); err != nil {
		return err
	}
	for _, filename := range []string{input, inputGold} {
		if err := VerifyExists(filename); err != nil {
			return err
		}
	}
	DepEvalConfigOut()

	parsedSents, err := conll.ReadFile(input, 0)
	if err != nil {
		return errors.Wrapf(err, "reading %s", input)
	}
	goldSents, err := conll.ReadFile(inputGold, 0)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputGold)
	}
	if len(parsedSents) != len(goldSents) {
		return errors.Errorf("%d parsed sentences for %d gold sentences", len(parsedSents), len(goldSents))
	}

	parsed := make([]nlp.Heads, len(parsedSents))
	for i, sent := range parsedSents {
		parsed[i] = sent.GoldHeads()
	}
	total, err := dependency.Evaluate(parsed, goldSents)
	if err != nil {
		return err
	}
	errs := total.Errors()
	byType := errs.ByType()
	for _, class := range errs.Classes() {
		Log.Debugf("Errors %s:\t%d", class, byType[class])
	}
	Log.Infof("[DONE] accuracy: %.2f%%, exact match: %.2f%%", total.Accuracy()*100, total.ExactMatch()*100)
	_, err = fmt.Fprintf(Stdout, "UAS\t%.4f\t(%d/%d)\nExact\t%.4f\t(%d/%d)\n",
		total.Accuracy(), total.Correct(), total.All(), total.ExactMatch(), total.Exact, total.Population)
	return err
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DepEval,
		UsageLine: "eval <file options>",
		Short:     "computes unlabeled attachment score of a parsed conll file",
		Long: `
computes unlabeled attachment score and exact match of a parsed conll file
against a gold conll file with the same sentences

	$ ./eisnerdep eval -in <parsed conll> -g <gold conll>

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Parsed Conll File")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold Conll File")
	return cmd
}
