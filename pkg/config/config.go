// Package config loads k8s-layers settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"k8s-layers/pkg/version"
)

// Config holds settings shared by the CLI and the integration harness.
type Config struct {
	// Version selects the Kubernetes version; empty means the default.
	Version      string `env:"K8S_LAYERS_VERSION"`
	StatePath    string `env:"K8S_LAYERS_STATE_PATH"`
	KeepCluster  bool   `env:"K8S_LAYERS_KEEP_CLUSTER" envDefault:"false"`
	LogVerbosity int    `env:"K8S_LAYERS_LOG_VERBOSITY" envDefault:"0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// KubernetesVersion parses the configured version. It returns nil when no
// version is configured so the resolver applies its own default.
func (c Config) KubernetesVersion() (*version.KubernetesVersion, error) {
	if c.Version == "" {
		return nil, nil
	}
	v, err := version.Parse(c.Version)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
