package cluster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/kind/pkg/cluster"

	"k8s-layers/pkg/layer"
	"k8s-layers/pkg/version"
)

type fakeProvider struct {
	clusters  []string
	created   []string
	deleted   []string
	createOpt int
	listErr   error
	createErr error
}

func (f *fakeProvider) List() ([]string, error) {
	return f.clusters, f.listErr
}

func (f *fakeProvider) Create(name string, options ...cluster.CreateOption) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, name)
	f.createOpt = len(options)
	f.clusters = append(f.clusters, name)
	return nil
}

func (f *fakeProvider) KubeConfig(name string, _ bool) (string, error) {
	return "kubeconfig:" + name, nil
}

func (f *fakeProvider) Delete(name, _ string) error {
	f.deleted = append(f.deleted, name)
	return nil
}

func resolve(t *testing.T, v version.KubernetesVersion) layer.VersionConfig {
	t.Helper()
	cfg, err := layer.ClusterVersionConfig(layer.NewRoot("test"), &v)
	require.NoError(t, err)
	return cfg
}

func TestClusterName(t *testing.T) {
	assert.Equal(t, "k8s-layers-v1-30", ClusterName(resolve(t, version.V1_30)))
}

func TestEnsureCluster_Creates(t *testing.T) {
	p := &fakeProvider{}
	m := NewManagerWithProvider(p)

	kubeconfig, err := m.EnsureCluster(resolve(t, version.V1_31))
	require.NoError(t, err)
	assert.Equal(t, "kubeconfig:k8s-layers-v1-31", kubeconfig)
	assert.Equal(t, []string{"k8s-layers-v1-31"}, p.created)
	assert.Equal(t, 4, p.createOpt)
}

func TestEnsureCluster_Existing(t *testing.T) {
	p := &fakeProvider{clusters: []string{"k8s-layers-v1-32"}}
	m := NewManagerWithProvider(p)

	_, err := m.EnsureCluster(resolve(t, version.V1_32))
	require.NoError(t, err)
	assert.Empty(t, p.created)
}

func TestEnsureCluster_Errors(t *testing.T) {
	m := NewManagerWithProvider(&fakeProvider{listErr: errors.New("docker down")})
	_, err := m.EnsureCluster(resolve(t, version.V1_29))
	assert.ErrorContains(t, err, "failed to list clusters")

	m = NewManagerWithProvider(&fakeProvider{createErr: errors.New("no image")})
	_, err = m.EnsureCluster(resolve(t, version.V1_29))
	assert.ErrorContains(t, err, "failed to create cluster k8s-layers-v1-29")

	_, err = m.EnsureCluster(layer.VersionConfig{Version: version.V1_29})
	assert.ErrorContains(t, err, "has no layer")
}

func TestDeleteCluster(t *testing.T) {
	p := &fakeProvider{clusters: []string{"k8s-layers-v1-30"}}
	m := NewManagerWithProvider(p)

	require.NoError(t, m.DeleteCluster("missing"))
	assert.Empty(t, p.deleted)

	require.NoError(t, m.DeleteCluster("k8s-layers-v1-30"))
	assert.Equal(t, []string{"k8s-layers-v1-30"}, p.deleted)
}
