// Package report sets up the run logger.
//
// Every line carries the run's accessid so lines from concurrent runs that
// share a log file can be told apart. Start and Stop bracket a run and the
// Stop line records the elapsed processing time.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ACCESS_ID_LEN = 6
	UNIQUE_ID     = "UNIQID"
	TIME_LAYOUT   = "2006/01/02 15:04:05.000000 MST"
)

type Options struct {
	Level   string
	Quiet   bool
	LogDir  string
	Out     io.Writer
	NowFunc func() time.Time
}

type Reporter struct {
	*logrus.Entry

	AccessID  string
	accessSec time.Time
	now       func() time.Time
	file      *os.File
}

// New builds a Reporter writing to opts.Out (stderr by default) unless
// Quiet, and additionally to <LogDir>/<YYYYMMDD>.log when LogDir is set.
func New(opts Options) (*Reporter, error) {
	level, err := logrus.ParseLevel(defaultString(opts.Level, "info"))
	if err != nil {
		return nil, errors.Wrap(err, "report: log level")
	}
	now := opts.NowFunc
	if now == nil {
		now = time.Now
	}

	var writers []io.Writer
	if !opts.Quiet {
		if opts.Out != nil {
			writers = append(writers, opts.Out)
		} else {
			writers = append(writers, os.Stderr)
		}
	}
	r := &Reporter{now: now}
	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
			return nil, errors.Wrapf(err, "report: create log dir %s", opts.LogDir)
		}
		name := filepath.Join(opts.LogDir, now().Format("20060102")+".log")
		r.file, err = os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "report: open log file %s", name)
		}
		writers = append(writers, r.file)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	r.AccessID = NewAccessID()
	r.Entry = logger.WithField("accessid", r.AccessID)
	return r, nil
}

// NewAccessID returns a short random hex id.
func NewAccessID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:])[:ACCESS_ID_LEN]
}

func (r *Reporter) Start() {
	r.accessSec = r.now()
	r.Infof("LOG Start with ACCESSID=[%s] UNIQUEID=[%s] ACCESSTIME=[%s]",
		r.AccessID, UNIQUE_ID, r.accessSec.Format(TIME_LAYOUT))
}

func (r *Reporter) Stop() {
	processTime := r.now().Sub(r.accessSec).Seconds()
	r.Infof("LOG End with ACCESSID=[%s] UNIQUEID=[%s] ACCESSTIME=[%s] PROCESSTIME=[%3.9f]",
		r.AccessID, UNIQUE_ID, r.accessSec.Format(TIME_LAYOUT), processTime)
}

func (r *Reporter) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
