// Package layer provides the kubectl support layers attached to provisioned
// clusters, and resolves the right one for a Kubernetes version.
package layer

import (
	"errors"
	"fmt"

	"k8s-layers/pkg/version"
)

// LayerID is the identity label every resolved layer is constructed with.
const LayerID = "KubectlLayer"

var (
	// ErrNilScope is returned by a constructor given no scope.
	ErrNilScope = errors.New("layer scope must not be nil")
	// ErrEmptyID is returned by a constructor given an empty identity label.
	ErrEmptyID = errors.New("layer id must not be empty")
)

// Layer is a packaged kubectl toolchain matching one Kubernetes minor release.
type Layer interface {
	// ID returns the identity label the layer was constructed with.
	ID() string
	// Scope returns the scope the layer was declared in.
	Scope() Scope
	// Path returns the scope path joined with the layer ID.
	Path() string
	// KubernetesVersion returns the minor release the layer targets.
	KubernetesVersion() version.KubernetesVersion
	// KubectlVersion returns the pinned kubectl release, e.g. "v1.30.13".
	KubectlVersion() string
	// NodeImage returns the kind node image for the same release.
	NodeImage() string
	// DownloadURL returns where the kubectl binary for a platform is published.
	DownloadURL(goos, goarch string) string
}

// Constructor builds a Layer declared in scope under id.
type Constructor func(scope Scope, id string) (Layer, error)

// kubectlRelease pins the artifacts shipped by one versioned layer.
type kubectlRelease struct {
	version   version.KubernetesVersion
	kubectl   string
	nodeImage string
}

type kubectlLayer struct {
	scope   Scope
	id      string
	release kubectlRelease
}

func newKubectlLayer(scope Scope, id string, release kubectlRelease) (Layer, error) {
	if scope == nil {
		return nil, ErrNilScope
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &kubectlLayer{scope: scope, id: id, release: release}, nil
}

func (l *kubectlLayer) ID() string   { return l.id }
func (l *kubectlLayer) Scope() Scope { return l.scope }

func (l *kubectlLayer) Path() string {
	if p := l.scope.Path(); p != "" {
		return p + "/" + l.id
	}
	return l.id
}

func (l *kubectlLayer) KubernetesVersion() version.KubernetesVersion {
	return l.release.version
}

func (l *kubectlLayer) KubectlVersion() string { return l.release.kubectl }
func (l *kubectlLayer) NodeImage() string      { return l.release.nodeImage }

func (l *kubectlLayer) DownloadURL(goos, goarch string) string {
	return fmt.Sprintf("https://dl.k8s.io/release/%s/bin/%s/%s/kubectl", l.release.kubectl, goos, goarch)
}
