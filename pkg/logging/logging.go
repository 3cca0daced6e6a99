// Package logging sets up the logrus loggers used by the list tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a text logger writing to out at the named level. An empty
// level means info; a nil out means stderr.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = InfoLevel
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l, nil
}

// WithRun tags every entry with the id of a script run.
func WithRun(l *logrus.Logger, runID string) *logrus.Entry {
	return l.WithField("run", runID)
}
