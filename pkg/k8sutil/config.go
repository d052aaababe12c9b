package k8sutil

import (
	"github.com/pkg/errors"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewConfig loads the kubeconfig at path. An empty path falls back to the
// default SDK behavior - that is, this respects `$KUBECONFIG` and would load
// service access tokens if available.
func NewConfig(path string) (*rest.Config, error) {
	loadrules := clientcmd.NewDefaultClientConfigLoadingRules()
	loadrules.ExplicitPath = path
	overrides := clientcmd.ConfigOverrides{}
	configLoader := clientcmd.
		NewNonInteractiveDeferredLoadingClientConfig(loadrules, &overrides)
	config, loadErr := configLoader.ClientConfig()
	if loadErr != nil {
		return nil, errors.Wrapf(loadErr, "could not load kubeconfig %q", path)
	}
	return config, nil
}

// KubernetesClient returns a clientset for the kubeconfig at path.
func KubernetesClient(path string) (*kubernetes.Clientset, error) {
	config, configErr := NewConfig(path)
	if configErr != nil {
		return nil, configErr
	}

	return kubernetes.NewForConfig(config)
}
