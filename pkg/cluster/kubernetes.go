package cluster

import (
	"context"

	"github.com/SUSE/skuba-update/pkg/k8sutil"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	v1meta "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	v1 "k8s.io/client-go/kubernetes/typed/core/v1"
)

var _ Client = (*API)(nil)

// API talks to the API server through client-go.
type API struct {
	log     logging.Logger
	connect func() (kubernetes.Interface, error)
	nodes   v1.NodeInterface
}

// NewAPI returns a Client backed by the given clientset.
func NewAPI(log logging.Logger, kube kubernetes.Interface) *API {
	return &API{log: log, nodes: kube.CoreV1().Nodes()}
}

// NewAPIFromKubeconfig returns a Client for the kubeconfig at path. The
// kubeconfig is loaded on first use, so a host that has not joined the
// cluster yet only fails the calls made on the Client.
func NewAPIFromKubeconfig(log logging.Logger, path string) *API {
	return &API{
		log: log,
		connect: func() (kubernetes.Interface, error) {
			kube, err := k8sutil.KubernetesClient(path)
			if err != nil {
				return nil, err
			}
			return kube, nil
		},
	}
}

func (a *API) nodeClient() (v1.NodeInterface, error) {
	if a.nodes != nil {
		return a.nodes, nil
	}
	kube, err := a.connect()
	if err != nil {
		return nil, errors.WithMessagef(ErrClusterUnreachable, "unable to create kubernetes client: %v", err)
	}
	a.log.Debug("created kubernetes client")
	a.nodes = kube.CoreV1().Nodes()
	return a.nodes, nil
}

func (a *API) ListNodes(ctx context.Context) (*corev1.NodeList, error) {
	nodes, err := a.nodeClient()
	if err != nil {
		return nil, err
	}
	list, err := nodes.List(ctx, v1meta.ListOptions{})
	if err != nil {
		return nil, errors.WithMessagef(ErrClusterUnreachable, "%v", err)
	}
	return list, nil
}

func (a *API) Annotate(ctx context.Context, kind, name, key, value string) error {
	if kind != NodeKind {
		return errors.Errorf("unsupported resource kind %q", kind)
	}
	nodes, err := a.nodeClient()
	if err != nil {
		return err
	}
	return k8sutil.PostAnnotations(ctx, nodes, name, map[string]string{key: value})
}
