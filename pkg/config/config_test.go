package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k8s-layers/pkg/version"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("K8S_LAYERS_VERSION", "")
	t.Setenv("K8S_LAYERS_STATE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KeepCluster)
	assert.Equal(t, 0, cfg.LogVerbosity)

	v, err := cfg.KubernetesVersion()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("K8S_LAYERS_VERSION", "v1.31")
	t.Setenv("K8S_LAYERS_STATE_PATH", "/tmp/state.json")
	t.Setenv("K8S_LAYERS_KEEP_CLUSTER", "true")
	t.Setenv("K8S_LAYERS_LOG_VERBOSITY", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state.json", cfg.StatePath)
	assert.True(t, cfg.KeepCluster)
	assert.Equal(t, 4, cfg.LogVerbosity)

	v, err := cfg.KubernetesVersion()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, version.V1_31, *v)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("K8S_LAYERS_KEEP_CLUSTER", "maybe")
	_, err := Load()
	assert.Error(t, err)
}

func TestKubernetesVersion_Invalid(t *testing.T) {
	_, err := Config{Version: "latest"}.KubernetesVersion()
	assert.Error(t, err)
}
