package app

import (
	"os"
	"runtime"

	"github.com/habeanf/eisnerdep/util/conf"
	"github.com/habeanf/eisnerdep/util/report"

	"github.com/gonuts/commander"
	"github.com/pkg/errors"
)

const (
	NUM_CPUS_FLAG = "cpus"
)

var (
	CPUs int

	confFile string
	logLevel string
	quiet    bool

	// set up by InitCommand for the running command
	Config *conf.Conf
	Log    *report.Reporter
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		TrainCmd(),
		ParseCmd(),
		EvalCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0] + " <command> [arguments]",
		Short:       "first-order projective dependency parser",
		Subcommands: AppCommands(),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
		app.Flag.StringVar(&confFile, "conf", "", "Optional - YAML configuration file (default $"+conf.CONFIG_ENV+")")
		app.Flag.StringVar(&logLevel, "loglevel", "", "Optional - log level [debug, info, warn, error]; overrides configuration")
		app.Flag.BoolVar(&quiet, "q", false, "Do not log to stderr")
	}
	return cmd
}

// InitCommand loads the configuration, caps GOMAXPROCS and opens the run
// logger.
func InitCommand(cmd *commander.Command, args []string) error {
	var err error
	Config, err = conf.Read(confFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		Config.LogLevel = logLevel
	}
	if quiet {
		Config.Quiet = true
	}
	if err := Config.Validate(); err != nil {
		return err
	}

	Log, err = report.New(report.Options{
		Level:  Config.LogLevel,
		Quiet:  Config.Quiet,
		LogDir: Config.LogDir,
	})
	if err != nil {
		return err
	}

	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		Log.Warnf("Number of CPUs capped to all available (%d)", maxCPUs)
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
	return nil
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		if err := InitCommand(cmd, args); err != nil {
			return errors.Wrap(err, cmd.Name())
		}
		defer Log.Close()

		Log.Start()
		defer Log.Stop()
		return f(cmd, args)
	}

	return wrapped
}
