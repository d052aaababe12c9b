package cluster

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/SUSE/skuba-update/pkg/command"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

// Binary is the cluster CLI executed on the host.
const Binary = "kubectl"

// DefaultKubeconfig is the kubelet's credential, present on every node.
const DefaultKubeconfig = "/etc/kubernetes/kubelet.conf"

var _ Client = (*Kubectl)(nil)

// Kubectl drives the cluster through the kubectl binary.
type Kubectl struct {
	log logging.Logger
	cli command.Runner
	env map[string]string
}

// NewKubectl returns a Client running kubectl with the given command runner.
// A non-empty kubeconfig is exported to every child as KUBECONFIG.
func NewKubectl(log logging.Logger, cli command.Runner, kubeconfig string) *Kubectl {
	var env map[string]string
	if kubeconfig != "" {
		env = map[string]string{"KUBECONFIG": kubeconfig}
	}
	return &Kubectl{log: log, cli: cli, env: env}
}

func (k *Kubectl) ListNodes(ctx context.Context) (*corev1.NodeList, error) {
	argv := []string{Binary, "get", "node", "-o", "json"}
	out, err := k.cli.Run(argv, k.env)
	if err != nil {
		return nil, errors.WithMessagef(ErrClusterUnreachable, "%v", err)
	}
	if out.ExitCode != 0 {
		return nil, errors.WithMessagef(ErrClusterUnreachable, "%q exited with %d: %s",
			strings.Join(argv, " "), out.ExitCode, strings.TrimSpace(string(out.Stderr)))
	}
	return decodeNodeList(out.Stdout)
}

// decodeNodeList accepts only a JSON object carrying an items list.
func decodeNodeList(data []byte) (*corev1.NodeList, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, errors.WithMessagef(ErrMalformedListing, "%v", err)
	}
	if _, ok := shape["items"]; !ok {
		return nil, errors.WithMessage(ErrMalformedListing, "no items in listing")
	}
	list := &corev1.NodeList{}
	if err := json.Unmarshal(data, list); err != nil {
		return nil, errors.WithMessagef(ErrMalformedListing, "%v", err)
	}
	return list, nil
}

func (k *Kubectl) Annotate(ctx context.Context, kind, name, key, value string) error {
	argv := []string{Binary, "annotate", "--overwrite", kind, name, key + "=" + value}
	out, err := k.cli.Run(argv, k.env)
	if err != nil {
		return errors.WithMessagef(ErrClusterUnreachable, "%v", err)
	}
	if out.ExitCode != 0 {
		return errors.Errorf("%q exited with %d: %s",
			strings.Join(argv, " "), out.ExitCode, strings.TrimSpace(string(out.Stderr)))
	}
	return nil
}
