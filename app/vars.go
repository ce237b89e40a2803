package app

import (
	"io"
	"os"
	"time"

	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	"github.com/habeanf/eisnerdep/storage"
	"github.com/habeanf/eisnerdep/storage/gobfile"
	"github.com/habeanf/eisnerdep/storage/sqlite/zombiezen"
	"github.com/habeanf/eisnerdep/util"

	"github.com/gonuts/commander"
	"github.com/pkg/errors"
)

const (
	MODEL_NAME_LAYOUT = "20060102150405"
	MODEL_SUFFIX      = ".model"
	DEFAULT_DB        = "models.db"
)

var (
	// processing options
	Iterations int
	Workers    int
	limit      int
	progress   bool

	// file names
	tConll     string
	input      string
	inputGold  string
	outConll   string
	modelFile  string
	modelStore string
	dbFile     string

	// Stdout receives parse output when no output file is given.
	Stdout io.Writer = os.Stdout

	// searched for relative template files
	TemplateDirs = []string{".", "conf"}
)

// DefaultModelName names a model after the time it was trained.
func DefaultModelName(now time.Time) string {
	return now.Format(MODEL_NAME_LAYOUT) + MODEL_SUFFIX
}

func VerifyExists(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return errors.Wrapf(err, "Error accessing file %s", filename)
	}
	return nil
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return errors.Errorf("Required flag %s not set", flag)
		}
	}
	return nil
}

func nopClose() error { return nil }

// OpenModelStore returns the store selected by the -store flag, falling back
// to the configured one. The returned func releases the store.
func OpenModelStore() (storage.ModelRepository, func() error, error) {
	kind := modelStore
	if kind == "" {
		kind = Config.ModelStore
	}
	switch kind {
	case "gob":
		return gobfile.NewModelStore(""), nopClose, nil
	case "sqlite":
		store, err := zombiezen.OpenModelStore(dbFile)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, errors.Errorf("Unknown model store %s", kind)
	}
}

// LoadTemplates reads the configured feature template file, or returns nil
// for the built-in templates.
func LoadTemplates() (*features.TemplateSet, error) {
	if Config.Templates == "" {
		return nil, nil
	}
	location, exists := util.LocateFile(Config.Templates, TemplateDirs)
	if !exists {
		return nil, errors.Errorf("Feature template file %s not found", Config.Templates)
	}
	Log.Infof("Feature templates:\t%s", location)
	return features.LoadTemplateFile(location)
}

func iterations() int {
	if Iterations > 0 {
		return Iterations
	}
	return Config.Iterations
}

func workers() int {
	if Workers > 0 {
		return Workers
	}
	return Config.Workers
}

func addStoreFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&modelStore, "store", "", "Optional - model store [gob, sqlite]; overrides configuration")
	cmd.Flag.StringVar(&dbFile, "db", DEFAULT_DB, "SQLite database file (with -store sqlite)")
}
