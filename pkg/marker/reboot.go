package marker

import (
	"os"

	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
)

const (
	// RebootPath is the file watched by the reboot coordinator.
	RebootPath = "/var/run/reboot-required"

	rebootMode os.FileMode = 0644
)

// Reboot manages the reboot-required marker file. The agent only ever creates
// the file; the reboot coordinator removes it once the host has rebooted.
type Reboot struct {
	log  logging.Logger
	path string
}

func NewReboot(log logging.Logger, path string) *Reboot {
	return &Reboot{log: log, path: path}
}

// Touch creates the zero-length marker if it does not exist yet. An existing
// marker is left untouched.
func (r *Reboot) Touch() error {
	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, rebootMode)
	if os.IsExist(err) {
		r.log.WithField("path", r.path).Debug("reboot marker already present")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "unable to create reboot marker")
	}
	// The process umask applies to OpenFile.
	if err := f.Chmod(rebootMode); err != nil {
		f.Close()
		return errors.Wrap(err, "unable to set reboot marker mode")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "unable to close reboot marker")
	}
	r.log.WithField("path", r.path).Info("reboot marker created")
	return nil
}
