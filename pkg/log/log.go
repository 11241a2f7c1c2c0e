// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewWithLevel returns a Logger at the named level, one of
// "panic", "fatal", "error", "warn", "info", "debug" or "trace".
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogrus(lvl), nil
}

// NewWithWriter returns a debug level Logger writing to w.
func NewWithWriter(w io.Writer) Logger {
	l := newLogrus(logrus.DebugLevel)
	l.SetOutput(w)
	return l
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
