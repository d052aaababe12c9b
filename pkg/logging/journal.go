package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Identifier is the SYSLOG_IDENTIFIER attached to journal entries.
const Identifier = "skuba-update"

// Journal routes the root logger to journald when its socket is reachable.
// The text output is discarded in that case so entries are not duplicated by
// the unit's stdout capture.
func Journal() Setter {
	return func(r *logrus.Logger) error {
		if !journal.Enabled() {
			return errors.New("journald socket is not available")
		}
		r.AddHook(&journalHook{send: journal.Send})
		r.SetOutput(io.Discard)
		return nil
	}
}

type journalHook struct {
	send func(message string, priority journal.Priority, vars map[string]string) error
}

func (h *journalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *journalHook) Fire(entry *logrus.Entry) error {
	vars := map[string]string{
		"SYSLOG_IDENTIFIER": Identifier,
	}
	for k, v := range entry.Data {
		name := journalField(k)
		if name == "" {
			continue
		}
		if err, ok := v.(error); ok {
			vars[name] = err.Error()
			continue
		}
		vars[name] = fmt.Sprint(v)
	}
	return h.send(entry.Message, journalPriority(entry.Level), vars)
}

// journalField converts a logrus field name into a valid journal field name:
// upper case letters, digits and underscores, not starting with an underscore.
func journalField(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), "_")
}

func journalPriority(lvl logrus.Level) journal.Priority {
	switch lvl {
	case logrus.PanicLevel:
		return journal.PriEmerg
	case logrus.FatalLevel:
		return journal.PriCrit
	case logrus.ErrorLevel:
		return journal.PriErr
	case logrus.WarnLevel:
		return journal.PriWarning
	case logrus.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}
