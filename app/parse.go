package app

import (
	"context"

	"github.com/habeanf/eisnerdep/alg/graph"
	"github.com/habeanf/eisnerdep/nlp/format/conll"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ParseConfigOut(model *dependency.Model) {
	Log.Infof("Configuration")
	Log.Infof("Model:\t\t%s (%d features, run %s)", modelFile, model.Features.Len(), model.Meta.RunID)
	Log.Infof("Data")
	Log.Infof("Input file (conll):\t%s", input)
	if outConll != "" {
		Log.Infof("Output file (conll):\t%s", outConll)
	}
}

// hasGoldHeads reports whether every non-root token of sents is annotated.
func hasGoldHeads(sents []nlp.Sentence) bool {
	for _, sent := range sents {
		for _, token := range sent[1:] {
			if token.Head == nlp.NO_HEAD {
				return false
			}
		}
	}
	return len(sents) > 0
}

func ParseFile(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"in", "m"}); err != nil {
		return err
	}
	if err := VerifyExists(input); err != nil {
		return err
	}

	store, closeStore, err := OpenModelStore()
	if err != nil {
		return err
	}
	defer closeStore()
	model, err := store.Read(modelFile)
	if err != nil {
		return err
	}
	ParseConfigOut(model)

	sents, err := conll.ReadFile(input, limit)
	if err != nil {
		return errors.Wrapf(err, "reading %s", input)
	}

	parser, err := dependency.NewParser(model)
	if err != nil {
		return err
	}
	parser.Workers = workers()
	parser.Log = Log
	parsed, err := parser.ParseAll(context.Background(), sents)
	if err != nil {
		return err
	}

	if Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		for i, heads := range parsed {
			if !graph.IsTree(heads) || !graph.IsProjective(heads) {
				return errors.Errorf("sentence %d: decoded heads %v are not a projective tree", i, heads)
			}
		}
	}

	output := make([]nlp.Sentence, len(sents))
	for i, sent := range sents {
		output[i] = sent.WithHeads(parsed[i])
	}
	if err := writeOutput(output); err != nil {
		return err
	}

	if hasGoldHeads(sents) {
		total, err := dependency.Evaluate(parsed, sents)
		if err != nil {
			return err
		}
		Log.Infof("[DONE] accuracy: %.2f%%", total.Accuracy()*100)
	} else {
		Log.Infof("[DONE] parsed %d sentences", len(sents))
	}
	return nil
}

func writeOutput(sents []nlp.Sentence) error {
	if outConll != "" {
		return conll.WriteFile(outConll, sents)
	}
	return conll.Write(Stdout, sents)
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ParseFile,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parses a conll file with a trained model",
		Long: `
parses a conll file with a trained model, writing conll with the predicted
heads; logs accuracy when the input carries gold heads

	$ ./eisnerdep parse -in <conll> -m <model> [-oc <out conll>] [-workers N] [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input Conll File")
	cmd.Flag.StringVar(&modelFile, "m", "", "Model name")
	cmd.Flag.StringVar(&outConll, "oc", "", "Optional - Output Conll File (default stdout)")
	cmd.Flag.IntVar(&Workers, "workers", 0, "Parallel decoders; 0 = configuration value (0 = all CPUs)")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit input set")
	addStoreFlags(cmd)
	return cmd
}
