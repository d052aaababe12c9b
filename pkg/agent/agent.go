package agent

import (
	"context"
	"os"

	"github.com/SUSE/skuba-update/pkg/cluster"
	"github.com/SUSE/skuba-update/pkg/internal/logfields"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/SUSE/skuba-update/pkg/platform"
	"github.com/SUSE/skuba-update/pkg/updates"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotRoot is returned when the agent is not run by root.
var ErrNotRoot = errors.New("root privileges are required")

// Restarter restarts a host service.
type Restarter interface {
	Restart(service string) error
}

// RebootMarker signals the reboot coordinator.
type RebootMarker interface {
	Touch() error
}

type Agent struct {
	log      logging.Logger
	platform platform.PackageManager
	services Restarter
	reboot   RebootMarker
	cluster  cluster.Client

	euid          func() int
	machineIDPath string
}

func New(log logging.Logger, pm platform.PackageManager, services Restarter, reboot RebootMarker, kube cluster.Client) (*Agent, error) {
	a := &Agent{
		log:           log,
		platform:      pm,
		services:      services,
		reboot:        reboot,
		cluster:       kube,
		euid:          os.Geteuid,
		machineIDPath: cluster.MachineIDPath,
	}
	if err := a.checkProviders(); err != nil {
		return nil, errors.WithMessage(err, "misconfigured")
	}
	return a, nil
}

func (a *Agent) checkProviders() error {
	switch {
	case a.platform == nil:
		return errors.New("package manager is nil")
	case a.services == nil:
		return errors.New("service restarter is nil")
	case a.reboot == nil:
		return errors.New("reboot marker is nil")
	case a.cluster == nil:
		return errors.New("cluster client is nil")
	}
	return nil
}

// Run performs a single update pass. With annotateOnly set the host is left
// untouched and only the Node annotations are refreshed. Errors are returned
// for failed preconditions and for failures of the patch path; failures while
// annotating are logged only.
func (a *Agent) Run(ctx context.Context, annotateOnly bool) error {
	a.log.WithField("annotate-only", annotateOnly).Debug("starting")
	defer a.log.Debug("finished")

	if euid := a.euid(); euid != 0 {
		return errors.WithMessagef(ErrNotRoot, "running as uid %d", euid)
	}
	if err := platform.RequireVersion(a.platform, platform.MinimumVersion); err != nil {
		return err
	}
	if err := a.platform.Refresh(); err != nil {
		return errors.WithMessage(err, "unable to refresh repositories")
	}

	if !annotateOnly {
		if err := a.update(); err != nil {
			return err
		}
	}

	a.annotate(ctx)
	return nil
}

// update applies patches, at most twice, and restarts the services still
// running deleted files afterwards.
func (a *Agent) update() error {
	code, err := a.patch()
	if err != nil {
		return err
	}
	if code.UpdatesPending() {
		a.log.WithField("result", code.String()).Info("updates still pending, patching again")
		if _, err := a.patch(); err != nil {
			return err
		}
	}

	reboot, err := a.platform.NeedsReboot()
	switch {
	case err != nil:
		a.log.WithError(err).Warn("unable to check whether a reboot is needed")
	case reboot:
		if err := a.touchReboot(); err != nil {
			return err
		}
	}

	services, err := a.platform.RunningServices()
	if err != nil {
		return errors.WithMessage(err, "unable to list services needing restart")
	}
	for _, service := range services {
		if err := a.services.Restart(service); err != nil {
			a.log.WithError(err).WithField("service", service).Error("unable to restart service")
		}
	}
	return nil
}

func (a *Agent) patch() (platform.ExitCode, error) {
	code, err := a.platform.Patch()
	if err != nil {
		return code, errors.WithMessage(err, "unable to apply patches")
	}
	switch {
	case code.RebootNeeded():
		if err := a.touchReboot(); err != nil {
			return code, err
		}
	case code.RestartNeeded():
		a.log.Info("patches require restarting services")
	}
	return code, nil
}

func (a *Agent) touchReboot() error {
	a.log.Info("reboot needed")
	return errors.WithMessage(a.reboot.Touch(), "unable to signal reboot")
}

// annotate publishes the pending update state on the host's Node. Nothing in
// here fails the run: the host has already been updated by the time it is
// reached and the next run retries.
func (a *Agent) annotate(ctx context.Context) {
	machineID, err := cluster.ReadMachineID(a.machineIDPath)
	if err != nil {
		a.log.WithError(err).Warn("unable to read machine id, skipping annotations")
		return
	}
	nodeName, err := cluster.ResolveNodeName(ctx, a.cluster, machineID)
	if err != nil {
		a.log.WithError(err).WithField("machine-id", machineID).Warn("unable to resolve node, skipping annotations")
		return
	}
	log := a.log.WithFields(logfields.Node(nodeName, machineID))

	var summary updates.Summary
	listing, err := a.platform.ListPatches()
	if err != nil {
		log.WithError(err).Warn("unable to list patches, assuming no updates")
	} else {
		summary = updates.Classify(log, listing)
	}
	log.WithFields(logrus.Fields{
		"updates":            summary.HasUpdates,
		"security-updates":   summary.HasSecurityUpdates,
		"disruptive-updates": summary.HasDisruptiveUpdates,
	}).Info("classified pending patches")

	if err := cluster.NewAnnotator(log, a.cluster).Publish(ctx, nodeName, summary); err != nil {
		log.WithError(err).Warn("unable to publish update state")
	}
}
