// Package systemd restarts host services through systemctl.
package systemd

import (
	"strings"

	"github.com/SUSE/skuba-update/pkg/command"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
)

// Binary is the service manager client executed on the host.
const Binary = "systemctl"

type Systemctl struct {
	log logging.Logger
	cli command.Runner
}

func New(log logging.Logger, cli command.Runner) *Systemctl {
	return &Systemctl{log: log, cli: cli}
}

// Restart runs `systemctl restart <service>`.
func (s *Systemctl) Restart(service string) error {
	log := s.log.WithField("service", service)
	log.Info("restarting service")
	out, err := s.cli.Run([]string{Binary, "restart", service}, nil)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return errors.Errorf("restart of %s exited with %d: %s", service, out.ExitCode, strings.TrimSpace(string(out.Stderr)))
	}
	return nil
}
