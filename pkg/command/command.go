// Package command runs host binaries on behalf of the agent. A Runner always
// reports the child's exit code; a non-zero exit is data for the caller to
// interpret, never an error.
package command

import (
	"bytes"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/SUSE/skuba-update/pkg/logging"
	gocmd "github.com/go-cmd/cmd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NoStderr is substituted for an empty stderr stream so that log messages
// built from an Outcome always carry some text.
const NoStderr = "(no output on stderr)"

// Outcome is the complete result of one child process.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// StdoutLines returns the non-empty, whitespace-trimmed lines of stdout.
func (o *Outcome) StdoutLines() []string {
	var lines []string
	for _, line := range strings.Split(string(o.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Runner spawns a child process and waits for it to terminate. env entries
// override the inherited environment of the agent; everything else is passed
// through unchanged. An error is returned only when the child could not be
// run to completion (for example, the binary is missing).
type Runner interface {
	Run(argv []string, env map[string]string) (*Outcome, error)
}

// Exec is the Runner backed by real processes.
type Exec struct {
	log logging.Logger
}

var _ Runner = (*Exec)(nil)

// New returns a Runner that executes processes on the host.
func New(log logging.Logger) *Exec {
	return &Exec{log: log}
}

func (e *Exec) Run(argv []string, env map[string]string) (*Outcome, error) {
	if len(argv) == 0 {
		return nil, errors.New("no command provided")
	}
	// go-cmd's buffers are line based and give up on lines longer than
	// bufio.MaxScanTokenSize; the raw streams are kept byte for byte.
	var stdout, stderr bytes.Buffer
	c := gocmd.NewCmdOptions(gocmd.Options{
		BeforeExec: []func(*exec.Cmd){
			func(cmd *exec.Cmd) {
				cmd.Stdout = &stdout
				cmd.Stderr = &stderr
			},
		},
	}, argv[0], argv[1:]...)
	if len(env) > 0 {
		c.Env = mergeEnv(os.Environ(), env)
	}

	log := e.log.WithField("cmd", strings.Join(argv, " "))
	log.Debug("executing")

	status := <-c.Start()
	if status.Error != nil {
		log.WithError(status.Error).Debug("command did not complete")
		return nil, errors.Wrapf(status.Error, "unable to run %q", argv[0])
	}

	out := &Outcome{
		ExitCode: status.Exit,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	if len(out.Stderr) == 0 {
		out.Stderr = []byte(NoStderr)
	}

	if logging.Debuggable {
		log.WithFields(logrus.Fields{
			"exit":   out.ExitCode,
			"stdout": string(out.Stdout),
			"stderr": string(out.Stderr),
		}).Debug("command completed")
	} else {
		log.WithField("exit", out.ExitCode).Debug("command completed")
	}
	return out, nil
}

// mergeEnv returns base with the keys in overrides replaced. Overrides are
// appended in key order so the resulting environment is deterministic.
func mergeEnv(base []string, overrides map[string]string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			key = kv[:i]
		}
		if _, ok := overrides[key]; ok {
			continue
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overrides[k])
	}
	return merged
}
