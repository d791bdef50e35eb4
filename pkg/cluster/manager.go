// Package cluster provisions kind clusters for resolved layer configurations.
package cluster

import (
	"fmt"
	"time"

	"k8s.io/klog/v2"
	"sigs.k8s.io/kind/pkg/cluster"

	"k8s-layers/pkg/layer"
)

// NamePrefix prefixes every cluster created by k8s-layers.
const NamePrefix = "k8s-layers"

// DefaultWaitForReady bounds how long Create waits for the control plane.
const DefaultWaitForReady = 5 * time.Minute

// Provider is the subset of the kind provider the Manager uses.
type Provider interface {
	List() ([]string, error)
	Create(name string, options ...cluster.CreateOption) error
	KubeConfig(name string, internal bool) (string, error)
	Delete(name, explicitKubeconfigPath string) error
}

// Manager handles kind cluster lifecycle operations.
type Manager struct {
	provider     Provider
	waitForReady time.Duration
}

// NewManager creates a Manager backed by the default kind provider.
func NewManager() *Manager {
	return NewManagerWithProvider(cluster.NewProvider(
		cluster.ProviderWithLogger(newKindLogger()),
	))
}

// NewManagerWithProvider creates a Manager backed by p.
func NewManagerWithProvider(p Provider) *Manager {
	return &Manager{
		provider:     p,
		waitForReady: DefaultWaitForReady,
	}
}

// WithWaitForReady overrides how long cluster creation waits for readiness.
func (m *Manager) WithWaitForReady(d time.Duration) *Manager {
	m.waitForReady = d
	return m
}

// ClusterName returns the kind cluster name for cfg, e.g. "k8s-layers-v1-30".
func ClusterName(cfg layer.VersionConfig) string {
	return NamePrefix + "-" + cfg.Version.Slug()
}

// ClusterExists checks if a cluster with the given name exists.
func (m *Manager) ClusterExists(name string) (bool, error) {
	clusters, err := m.provider.List()
	if err != nil {
		return false, fmt.Errorf("failed to list clusters: %w", err)
	}

	for _, c := range clusters {
		if c == name {
			return true, nil
		}
	}
	return false, nil
}

// EnsureCluster creates the cluster for cfg if it doesn't exist, using the
// layer's node image. Returns the kubeconfig as a string (in-memory, not
// written to disk).
func (m *Manager) EnsureCluster(cfg layer.VersionConfig) (string, error) {
	if cfg.Layer == nil {
		return "", fmt.Errorf("version config for %s has no layer", cfg.Version)
	}
	name := ClusterName(cfg)

	exists, err := m.ClusterExists(name)
	if err != nil {
		return "", err
	}

	if !exists {
		klog.InfoS("Creating cluster", "cluster", name, "version", cfg.Version, "image", cfg.Layer.NodeImage())
		err = m.provider.Create(
			name,
			cluster.CreateWithNodeImage(cfg.Layer.NodeImage()),
			cluster.CreateWithWaitForReady(m.waitForReady),
			cluster.CreateWithDisplayUsage(false),
			cluster.CreateWithDisplaySalutation(false),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create cluster %s: %w", name, err)
		}
		klog.InfoS("Cluster created", "cluster", name)
	} else {
		klog.InfoS("Cluster already exists", "cluster", name)
	}

	kubeconfig, err := m.provider.KubeConfig(name, false)
	if err != nil {
		return "", fmt.Errorf("failed to get kubeconfig for %s: %w", name, err)
	}

	return kubeconfig, nil
}

// DeleteCluster removes the named cluster. Deleting a missing cluster is a no-op.
func (m *Manager) DeleteCluster(name string) error {
	exists, err := m.ClusterExists(name)
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	klog.InfoS("Deleting cluster", "cluster", name)
	if err := m.provider.Delete(name, ""); err != nil {
		return fmt.Errorf("failed to delete cluster %s: %w", name, err)
	}
	return nil
}
