package platform

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// MinimumVersion is the first package manager release that maintains the
// reboot-required marker on its own. Older releases cannot uphold the marker
// contract the reboot coordinator relies on.
const MinimumVersion = "1.14.0"

// ErrVersionTooOld is returned by RequireVersion.
var ErrVersionTooOld = errors.New("package manager is too old")

// PackageManager is implemented by the host's package manager driver.
type PackageManager interface {
	// Version reports the package manager's release.
	Version() (*semver.Version, error)
	// Refresh updates repository metadata. Any error exit aborts the run.
	Refresh() error
	// Patch applies all pending patches non-interactively and reports the
	// informational exit code. Error exits are returned as errors.
	Patch() (ExitCode, error)
	// NeedsReboot asks the package manager whether applied patches require
	// a host reboot.
	NeedsReboot() (bool, error)
	// RunningServices lists the services that still run outdated code and
	// must be restarted.
	RunningServices() ([]string, error)
	// ListPatches returns the raw structured listing of pending patches.
	ListPatches() ([]byte, error)
}

// RequireVersion gates the agent on the package manager's release. Package
// manager consumers should run it before issuing any mutating call.
func RequireVersion(pm PackageManager, minimum string) error {
	current, err := pm.Version()
	if err != nil {
		return errors.WithMessage(err, "could not determine package manager version")
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return errors.Wrapf(err, "invalid minimum version %q", minimum)
	}
	if !constraint.Check(current) {
		return errors.WithMessagef(ErrVersionTooOld, "version %s or higher is required, found %s", minimum, current)
	}
	return nil
}
