package app

import (
	"time"

	"github.com/habeanf/eisnerdep/nlp/format/conll"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	"github.com/habeanf/eisnerdep/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/gosuri/uiprogress"
	"github.com/pkg/errors"
)

func TrainConfigOut(iterations int) {
	Log.Infof("Configuration")
	Log.Infof("Iterations:\t\t%d", iterations)
	Log.Infof("Model store:\t\t%s", defaultString(modelStore, Config.ModelStore))
	Log.Infof("Data")
	Log.Infof("Train file (conll):\t%s", tConll)
}

func TrainModel(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"tc"}); err != nil {
		return err
	}
	if err := VerifyExists(tConll); err != nil {
		return err
	}
	if Iterations < 0 {
		return errors.Errorf("Number of iterations must not be negative, got %d", Iterations)
	}
	numIterations := iterations()
	TrainConfigOut(numIterations)

	sents, err := conll.ReadFile(tConll, limit)
	if err != nil {
		return errors.Wrapf(err, "reading %s", tConll)
	}
	Log.Infof("Read %d sentences from %s", len(sents), tConll)
	checksum, err := util.MD5File(tConll)
	if err != nil {
		return err
	}
	Log.Infof("Train file MD5:\t%s", checksum)

	templates, err := LoadTemplates()
	if err != nil {
		return err
	}
	trainer := &dependency.Trainer{Templates: templates, Log: Log}
	if progress {
		uiprogress.Start()
		bar := uiprogress.AddBar(numIterations * len(sents)).AppendCompleted().PrependElapsed()
		trainer.Progress = func(iteration, sentence int) { bar.Incr() }
		defer uiprogress.Stop()
	}

	startTime := time.Now()
	model, err := trainer.Train(sents, numIterations)
	if err != nil {
		return err
	}
	Log.Infof("Training took %v, mistakes per iteration %v", time.Since(startTime), trainer.Mistakes)
	model.Meta.RunID = Log.AccessID
	model.Meta.TrainFile = tConll
	model.Meta.TrainMD5 = checksum

	store, closeStore, err := OpenModelStore()
	if err != nil {
		return err
	}
	defer closeStore()

	name := modelFile
	if name == "" {
		name = DefaultModelName(model.Meta.Created)
	}
	if err := store.Write(name, model); err != nil {
		return err
	}
	Log.Infof("[DONE] wrote model %s (%d features, %d non-zero weights)", name, model.Features.Len(), model.Weights.NonZero())
	return nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TrainModel,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains a dependency parsing model",
		Long: `
trains a first-order projective dependency parsing model

	$ ./eisnerdep train -tc <conll> [-it <iterations>] [-m <model>] [-store gob|sqlite] [options]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&tConll, "tc", "", "Training Conll File")
	cmd.Flag.IntVar(&Iterations, "it", 0, "Number of Perceptron Iterations; 0 = configuration value")
	cmd.Flag.StringVar(&modelFile, "m", "", "Model name (default <timestamp>"+MODEL_SUFFIX+")")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit training set")
	cmd.Flag.BoolVar(&progress, "progress", false, "Show training progress bar")
	addStoreFlags(cmd)
	return cmd
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
