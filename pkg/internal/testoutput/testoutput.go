// Package testoutput sends log output of code under test to the test's log,
// interleaved with the test's own output.
package testoutput

import (
	"io"
	"sync"
	"testing"

	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/sirupsen/logrus"
)

// New returns a writer that writes strings (assuming lines) to the testing
// logger.
func New(t testing.TB) io.Writer {
	return &testoutput{t}
}

// Logger returns a debug level logger for component writing to t. Each call
// uses its own logrus.Logger, so parallel tests do not share output.
func Logger(t testing.TB, component string) logging.Logger {
	l, _ := Recorder(t, component)
	return l
}

// Recorder is Logger with every emitted entry also kept in the returned Hook.
func Recorder(t testing.TB, component string) (logging.Logger, *Hook) {
	l := logrus.New()
	l.SetOutput(New(t))
	l.SetLevel(logrus.DebugLevel)
	hook := &Hook{}
	l.AddHook(hook)
	return l.WithField("component", component), hook
}

// Hook records fired entries.
type Hook struct {
	mu      sync.Mutex
	entries []logrus.Entry
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) error {
	h.mu.Lock()
	h.entries = append(h.entries, *e)
	h.mu.Unlock()
	return nil
}

// AtLevel returns the messages recorded at lvl.
func (h *Hook) AtLevel(lvl logrus.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var msgs []string
	for _, e := range h.entries {
		if e.Level == lvl {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

type testoutput struct {
	t testing.TB
}

func (l *testoutput) Write(p []byte) (n int, err error) {
	l.t.Logf("%s", p)
	return len(p), nil
}
