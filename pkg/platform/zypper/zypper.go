package zypper

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/SUSE/skuba-update/pkg/command"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/SUSE/skuba-update/pkg/platform"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrCommandFailed is returned when zypper exits with an error class code.
var ErrCommandFailed = errors.New("zypper command failed")

// Assert Zypper as a package manager implementor.
var _ platform.PackageManager = (*Zypper)(nil)

// Zypper drives the host's zypper binary and interprets its exit codes.
type Zypper struct {
	log logging.Logger
	cli command.Runner
}

func New(log logging.Logger, cli command.Runner) *Zypper {
	return &Zypper{log: log, cli: cli}
}

func (z *Zypper) run(argv []string) (platform.ExitCode, *command.Outcome, error) {
	out, err := z.cli.Run(argv, nil)
	if err != nil {
		return 0, nil, err
	}
	return platform.ExitCode(out.ExitCode), out, nil
}

func failure(argv []string, code platform.ExitCode, out *command.Outcome) error {
	return errors.WithMessagef(ErrCommandFailed, "%q exited with %s: %s",
		strings.Join(argv, " "), code, strings.TrimSpace(string(out.Stderr)))
}

// Version runs `zypper --version`.
func (z *Zypper) Version() (*semver.Version, error) {
	code, out, err := z.run(argsVersion)
	if err != nil {
		return nil, err
	}
	if code != platform.ExitOK {
		return nil, failure(argsVersion, code, out)
	}
	// Older releases printed the version on stderr.
	v, err := ParseVersion(string(out.Stdout) + " " + string(out.Stderr))
	if err != nil {
		return nil, err
	}
	z.log.WithField("version", v.String()).Debug("detected zypper")
	return v, nil
}

// Refresh runs `zypper ref -s`.
func (z *Zypper) Refresh() error {
	z.log.Info("refreshing repositories")
	code, out, err := z.run(argsRefresh)
	if err != nil {
		return err
	}
	if code.IsError() {
		return failure(argsRefresh, code, out)
	}
	return nil
}

// Patch applies pending patches. Only the codes zypper uses to describe the
// host after a successful run are returned; everything else is an error.
func (z *Zypper) Patch() (platform.ExitCode, error) {
	z.log.Info("applying patches")
	code, out, err := z.run(argsPatch)
	if err != nil {
		return 0, err
	}
	if code.IsError() {
		return code, failure(argsPatch, code, out)
	}
	z.log.WithField("result", code.String()).Info("patches applied")
	return code, nil
}

// NeedsReboot runs `zypper needs-rebooting`, which exits with the reboot
// needed code when a reboot is required.
func (z *Zypper) NeedsReboot() (bool, error) {
	code, out, err := z.run(argsNeedsReboot)
	if err != nil {
		return false, err
	}
	switch {
	case code == platform.ExitOK:
		return false, nil
	case code.RebootNeeded():
		return true, nil
	}
	return false, failure(argsNeedsReboot, code, out)
}

// RunningServices returns the services reported by `zypper ps -sss`, one per
// output line.
func (z *Zypper) RunningServices() ([]string, error) {
	code, out, err := z.run(argsPs)
	if err != nil {
		return nil, err
	}
	if code != platform.ExitOK {
		return nil, failure(argsPs, code, out)
	}
	services := out.StdoutLines()
	if len(services) > 0 {
		z.log.WithFields(logrus.Fields{
			"services": strings.Join(services, ","),
		}).Info("services need restart")
	}
	return services, nil
}

// ListPatches returns the XML listing of pending patches. zypper exits with
// the informational codes when patches are pending, so those are accepted.
func (z *Zypper) ListPatches() ([]byte, error) {
	code, out, err := z.run(argsListPatches)
	if err != nil {
		return nil, err
	}
	if code.IsError() {
		return nil, failure(argsListPatches, code, out)
	}
	return out.Stdout, nil
}
