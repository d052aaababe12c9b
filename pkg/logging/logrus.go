// Package logging owns the process wide logger. Components get a Logger from
// New tagged with their name; main configures the shared root with Set.
package logging

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Setter configures the root logger.
type Setter func(*logrus.Logger) error

type rootLogger struct {
	mu     sync.Mutex
	logger *logrus.Logger
}

var root = newRoot()

func newRoot() *rootLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &rootLogger{logger: l}
}

// Logger is handed to each component of the update run.
type Logger interface {
	logrus.FieldLogger

	Writer() *io.PipeWriter
	WriterLevel(logrus.Level) *io.PipeWriter
}

// New returns a Logger tagged with the given component name.
func New(component string) Logger {
	return root.logger.WithField("component", component)
}

// Set applies setters to the root logger in order, stopping at the first
// one that fails.
func Set(setters ...Setter) error {
	root.mu.Lock()
	defer root.mu.Unlock()
	for _, setter := range setters {
		if err := setter(root.logger); err != nil {
			return err
		}
	}
	return nil
}

// Level sets the root logger's level. An unknown level leaves the current
// one in place.
func Level(lvl string) Setter {
	return func(r *logrus.Logger) error {
		l, err := logrus.ParseLevel(lvl)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		r.SetLevel(l)
		return nil
	}
}
