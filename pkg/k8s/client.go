// Package k8s provides Kubernetes client functionality.
package k8s

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/klog/v2"

	"k8s-layers/pkg/version"
)

// Client wraps a Kubernetes clientset with helper methods.
type Client struct {
	Clientset kubernetes.Interface
}

// NewClient wraps an existing clientset.
func NewClient(clientset kubernetes.Interface) *Client {
	return &Client{Clientset: clientset}
}

// NewClientFromKubeconfig creates a new Client from an in-memory kubeconfig string.
func NewClientFromKubeconfig(kubeconfig string) (*Client, error) {
	config, err := clientcmd.RESTConfigFromKubeConfig([]byte(kubeconfig))
	if err != nil {
		return nil, fmt.Errorf("failed to parse kubeconfig: %w", err)
	}

	// Avoid client-side throttling while polling freshly created clusters.
	config.QPS = 50.0
	config.Burst = 100

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return NewClient(clientset), nil
}

// GetServerVersion returns the Kubernetes server version string.
func (c *Client) GetServerVersion() (string, error) {
	v, err := c.Clientset.Discovery().ServerVersion()
	if err != nil {
		return "", fmt.Errorf("failed to get server version: %w", err)
	}
	return v.GitVersion, nil
}

// VersionMismatchError reports a component running a different minor release
// than the one requested.
type VersionMismatchError struct {
	Component string
	Got       string
	Want      version.KubernetesVersion
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("%s runs %s, want %s", e.Component, e.Got, e.Want)
}

// VerifyVersion checks that the API server and every node kubelet run want.
func (c *Client) VerifyVersion(ctx context.Context, want version.KubernetesVersion) error {
	server, err := c.GetServerVersion()
	if err != nil {
		return err
	}
	if !want.Matches(server) {
		return &VersionMismatchError{Component: "api server", Got: server, Want: want}
	}

	nodes, err := c.Clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}
	for _, node := range nodes.Items {
		kubelet := node.Status.NodeInfo.KubeletVersion
		if !want.Matches(kubelet) {
			return &VersionMismatchError{Component: "node " + node.Name, Got: kubelet, Want: want}
		}
	}

	klog.V(2).InfoS("Cluster version verified", "server", server, "nodes", len(nodes.Items), "want", want)
	return nil
}
