package logging

import (
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
)

func TestJournalField(t *testing.T) {
	cases := map[string]string{
		"component":  "COMPONENT",
		"machine-id": "MACHINE_ID",
		"_private":   "PRIVATE",
		"exit2":      "EXIT2",
		"-":          "",
	}
	for in, expected := range cases {
		assert.Equal(t, journalField(in), expected, "field %q", in)
	}
}

func TestJournalHookFire(t *testing.T) {
	var (
		gotMessage  string
		gotPriority journal.Priority
		gotVars     map[string]string
	)
	hook := &journalHook{send: func(message string, priority journal.Priority, vars map[string]string) error {
		gotMessage = message
		gotPriority = priority
		gotVars = vars
		return nil
	}}

	logger := logrus.New()
	entry := logger.WithFields(logrus.Fields{
		"component": "agent",
		"node":      "worker-0",
	}).WithError(errors.New("boom"))
	entry.Message = "annotation failed"
	entry.Level = logrus.WarnLevel

	assert.NilError(t, hook.Fire(entry))
	assert.Equal(t, gotMessage, "annotation failed")
	assert.Equal(t, gotPriority, journal.PriWarning)
	assert.Equal(t, gotVars["SYSLOG_IDENTIFIER"], Identifier)
	assert.Equal(t, gotVars["COMPONENT"], "agent")
	assert.Equal(t, gotVars["NODE"], "worker-0")
	assert.Equal(t, gotVars["ERROR"], "boom")
}

func TestJournalPriority(t *testing.T) {
	assert.Equal(t, journalPriority(logrus.ErrorLevel), journal.PriErr)
	assert.Equal(t, journalPriority(logrus.InfoLevel), journal.PriInfo)
	assert.Equal(t, journalPriority(logrus.TraceLevel), journal.PriDebug)
}
