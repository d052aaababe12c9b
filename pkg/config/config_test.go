package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent"))
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, &Config{
		LogLevel:      "info",
		LogJournal:    false,
		Kubeconfig:    "/etc/kubernetes/kubelet.conf",
		ClusterClient: ClientKubectl,
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skuba-update")
	assert.NilError(t, os.WriteFile(path, []byte(`# managed by the installer
LOG_LEVEL="debug"
LOG_JOURNAL=true
CLUSTER_CLIENT=api
`), 0644))

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, "debug")
	assert.Equal(t, cfg.LogJournal, true)
	assert.Equal(t, cfg.ClusterClient, ClientAPI)
	assert.Equal(t, cfg.Kubeconfig, "/etc/kubernetes/kubelet.conf")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skuba-update")
	assert.NilError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0644))
	t.Setenv("SKUBA_UPDATE_LOG_LEVEL", "warn")
	t.Setenv("SKUBA_UPDATE_KUBECONFIG", "/root/.kube/config")

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, "warn")
	assert.Equal(t, cfg.Kubeconfig, "/root/.kube/config")
}

func TestLoadUnknownClusterClient(t *testing.T) {
	t.Setenv("SKUBA_UPDATE_CLUSTER_CLIENT", "ssh")
	_, err := Load("")
	assert.ErrorContains(t, err, `unknown cluster client "ssh"`)
}
