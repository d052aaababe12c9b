// Package config loads the agent's settings from the sysconfig file and the
// environment.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// Path is the optional dotenv-formatted settings file.
	Path = "/etc/sysconfig/skuba-update"
	// EnvPrefix prefixes the environment variables overriding Path.
	EnvPrefix = "SKUBA_UPDATE"
)

const (
	keyLogLevel      = "log_level"
	keyLogJournal    = "log_journal"
	keyKubeconfig    = "kubeconfig"
	keyClusterClient = "cluster_client"
)

// Cluster client backends.
const (
	ClientKubectl = "kubectl"
	ClientAPI     = "api"
)

type Config struct {
	LogLevel      string
	LogJournal    bool
	Kubeconfig    string
	ClusterClient string
}

// Load reads the settings at path, if it exists, and applies environment
// overrides on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogJournal, false)
	v.SetDefault(keyKubeconfig, "/etc/kubernetes/kubelet.conf")
	v.SetDefault(keyClusterClient, ClientKubectl)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("dotenv")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "unable to read %s", path)
			}
		case !os.IsNotExist(err):
			return nil, errors.Wrapf(err, "unable to stat %s", path)
		}
	}

	cfg := &Config{
		LogLevel:      v.GetString(keyLogLevel),
		LogJournal:    v.GetBool(keyLogJournal),
		Kubeconfig:    v.GetString(keyKubeconfig),
		ClusterClient: v.GetString(keyClusterClient),
	}
	switch cfg.ClusterClient {
	case ClientKubectl, ClientAPI:
	default:
		return nil, errors.Errorf("unknown cluster client %q", cfg.ClusterClient)
	}
	return cfg, nil
}
