package main

import (
	"context"
	"time"

	"github.com/SUSE/skuba-update/pkg/agent"
	"github.com/SUSE/skuba-update/pkg/cluster"
	"github.com/SUSE/skuba-update/pkg/command"
	"github.com/SUSE/skuba-update/pkg/config"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/SUSE/skuba-update/pkg/marker"
	"github.com/SUSE/skuba-update/pkg/platform/systemd"
	"github.com/SUSE/skuba-update/pkg/platform/zypper"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	commandName = "skuba-update"
	helpShort   = "Updates the node and publishes its update state"
	helpLong    = `Applies pending patches with zypper, restarts the services that need it,
signals the reboot coordinator when a reboot is required and annotates the
node with the patches still pending.`

	flagAnnotateOnly      = "annotate-only"
	flagAnnotateOnlyShort = "a"
	flagAnnotateOnlyHelp  = "Only refresh repositories and annotate the node, do not patch"
)

var annotateOnly bool

func main() {
	if err := newCmd().Execute(); err != nil {
		logging.New("main").WithError(err).Fatal("skuba-update failed")
	}
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           commandName,
		Short:         helpShort,
		Long:          helpLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	addFlags(cmd.Flags())
	return cmd
}

func addFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&annotateOnly, flagAnnotateOnly, flagAnnotateOnlyShort, false, flagAnnotateOnlyHelp)
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.Path)
	if err != nil {
		return errors.WithMessage(err, "configuration error")
	}

	log := logging.New("main")
	if err := logging.Set(logging.Level(cfg.LogLevel)); err != nil {
		log.WithError(err).Warn("keeping default log level")
	}
	if cfg.LogJournal {
		if err := logging.Set(logging.Journal()); err != nil {
			log.WithError(err).Warn("unable to log to journal, using stderr")
		}
	}

	// "debuggable" builds log the full output of every child process, which
	// includes the complete patch listing.
	if logging.Debuggable {
		log.Info("low-level logging.Debuggable is enabled in this build")
		log.Warn("logging.Debuggable produces large volumes of logs")
		delay := 3 * time.Second
		log.WithField("delay", delay).Warn("delaying start due to logging.Debuggable build")
		time.Sleep(delay)
	}

	kube := clusterClient(cfg)

	cli := command.New(logging.New("command"))
	a, err := agent.New(logging.New("agent"),
		zypper.New(logging.New("zypper"), cli),
		systemd.New(logging.New("systemd"), cli),
		marker.NewReboot(logging.New("marker"), marker.RebootPath),
		kube,
	)
	if err != nil {
		return err
	}
	return errors.WithMessage(a.Run(ctx, annotateOnly), "run error")
}

func clusterClient(cfg *config.Config) cluster.Client {
	log := logging.New("cluster")
	if cfg.ClusterClient == config.ClientAPI {
		return cluster.NewAPIFromKubeconfig(log, cfg.Kubeconfig)
	}
	return cluster.NewKubectl(log, command.New(logging.New("command")), cfg.Kubeconfig)
}
