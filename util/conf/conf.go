// Package conf loads run configuration for training and parsing.
//
// Values come from an optional YAML file, then environment variables, then
// the env-default tags below. Command line flags are applied on top by the
// app package.
package conf

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const CONFIG_ENV = "EISNERDEP_CONFIG"

var (
	STORES     = []string{"gob", "sqlite"}
	LOG_LEVELS = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
)

type Conf struct {
	Iterations int    `yaml:"iterations" env:"EISNERDEP_ITERATIONS" env-default:"10"`
	LogLevel   string `yaml:"log_level" env:"EISNERDEP_LOG_LEVEL" env-default:"info"`
	LogDir     string `yaml:"log_dir" env:"EISNERDEP_LOG_DIR"`
	Quiet      bool   `yaml:"quiet" env:"EISNERDEP_QUIET"`
	ModelStore string `yaml:"model_store" env:"EISNERDEP_MODEL_STORE" env-default:"gob"`
	Workers    int    `yaml:"workers" env:"EISNERDEP_WORKERS" env-default:"0"`
	Templates  string `yaml:"templates" env:"EISNERDEP_TEMPLATES"`
}

// Read loads configuration from filename. An empty filename falls back to
// the EISNERDEP_CONFIG environment variable; if that is empty too only the
// environment and defaults are used.
func Read(filename string) (*Conf, error) {
	var c Conf

	if filename == "" {
		filename = os.Getenv(CONFIG_ENV)
	}
	if filename != "" {
		if err := cleanenv.ReadConfig(filename, &c); err != nil {
			return nil, errors.Wrapf(err, "conf: read %s", filename)
		}
	} else if err := cleanenv.ReadEnv(&c); err != nil {
		return nil, errors.Wrap(err, "conf: read env")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Conf) Validate() error {
	if c.Iterations < 1 {
		return errors.Errorf("conf: iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Errorf("conf: workers must not be negative, got %d", c.Workers)
	}
	if !contains(STORES, c.ModelStore) {
		return errors.Errorf("conf: unknown model store %q (expected one of %v)", c.ModelStore, STORES)
	}
	if !contains(LOG_LEVELS, c.LogLevel) {
		return errors.Errorf("conf: unknown log level %q", c.LogLevel)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
