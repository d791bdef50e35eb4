package layer

import "k8s-layers/pkg/version"

// Source: https://github.com/kubernetes-sigs/kind/releases
var (
	kubectlV29 = kubectlRelease{version: version.V1_29, kubectl: "v1.29.14", nodeImage: "kindest/node:v1.29.14"}
	kubectlV30 = kubectlRelease{version: version.V1_30, kubectl: "v1.30.13", nodeImage: "kindest/node:v1.30.13"}
	kubectlV31 = kubectlRelease{version: version.V1_31, kubectl: "v1.31.9", nodeImage: "kindest/node:v1.31.9"}
	kubectlV32 = kubectlRelease{version: version.V1_32, kubectl: "v1.32.5", nodeImage: "kindest/node:v1.32.5"}
	kubectlV33 = kubectlRelease{version: version.V1_33, kubectl: "v1.33.1", nodeImage: "kindest/node:v1.33.1"}
)

// NewKubectlV29Layer returns the kubectl layer for Kubernetes 1.29.
func NewKubectlV29Layer(scope Scope, id string) (Layer, error) {
	return newKubectlLayer(scope, id, kubectlV29)
}

// NewKubectlV30Layer returns the kubectl layer for Kubernetes 1.30.
func NewKubectlV30Layer(scope Scope, id string) (Layer, error) {
	return newKubectlLayer(scope, id, kubectlV30)
}

// NewKubectlV31Layer returns the kubectl layer for Kubernetes 1.31.
func NewKubectlV31Layer(scope Scope, id string) (Layer, error) {
	return newKubectlLayer(scope, id, kubectlV31)
}

// NewKubectlV32Layer returns the kubectl layer for Kubernetes 1.32.
func NewKubectlV32Layer(scope Scope, id string) (Layer, error) {
	return newKubectlLayer(scope, id, kubectlV32)
}

// NewKubectlV33Layer returns the kubectl layer for Kubernetes 1.33.
func NewKubectlV33Layer(scope Scope, id string) (Layer, error) {
	return newKubectlLayer(scope, id, kubectlV33)
}
