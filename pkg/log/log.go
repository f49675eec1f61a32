// Package log provides the logger used across the emulator.
package log

import "github.com/sirupsen/logrus"

// Logger is the interface components log through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
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

// New returns a logger at info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewDebug returns a logger that also emits debug output.
func NewDebug() Logger {
	return newLogrus(logrus.DebugLevel)
}
