// Package version defines the Kubernetes minor versions k8s-layers can provision.
package version

import (
	"fmt"

	utilversion "k8s.io/apimachinery/pkg/util/version"
)

// KubernetesVersion identifies a Kubernetes minor release.
// The zero value is not a valid version.
type KubernetesVersion struct {
	major uint
	minor uint
}

// Supported Kubernetes versions.
var (
	V1_29 = New(1, 29)
	V1_30 = New(1, 30)
	V1_31 = New(1, 31)
	V1_32 = New(1, 32)
	V1_33 = New(1, 33)
)

// Default is used whenever a caller does not ask for a specific version.
var Default = V1_32

// New returns the identifier for major.minor. It does not check that the
// version is supported.
func New(major, minor uint) KubernetesVersion {
	return KubernetesVersion{major: major, minor: minor}
}

// Supported returns all supported versions, oldest first.
func Supported() []KubernetesVersion {
	return []KubernetesVersion{V1_29, V1_30, V1_31, V1_32, V1_33}
}

// IsSupported reports whether v is one of the supported versions.
func IsSupported(v KubernetesVersion) bool {
	for _, s := range Supported() {
		if s == v {
			return true
		}
	}
	return false
}

// Parse reads a version such as "1.30", "v1.30" or "v1.30.2" and truncates
// it to major.minor.
func Parse(s string) (KubernetesVersion, error) {
	v, err := utilversion.ParseGeneric(s)
	if err != nil {
		return KubernetesVersion{}, fmt.Errorf("invalid kubernetes version %q: %w", s, err)
	}
	return New(v.Major(), v.Minor()), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) KubernetesVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical "major.minor" form, e.g. "1.30".
func (v KubernetesVersion) String() string {
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}

// Major returns the major component.
func (v KubernetesVersion) Major() uint { return v.major }

// Minor returns the minor component.
func (v KubernetesVersion) Minor() uint { return v.minor }

// IsZero reports whether v is the zero value.
func (v KubernetesVersion) IsZero() bool {
	return v.major == 0 && v.minor == 0
}

// Semantic returns v as an apimachinery version.
func (v KubernetesVersion) Semantic() *utilversion.Version {
	return utilversion.MajorMinor(v.major, v.minor)
}

// Matches reports whether a git version reported by a server or kubelet
// (e.g. "v1.30.2" or "v1.30.2+k3s1") belongs to this minor release.
func (v KubernetesVersion) Matches(gitVersion string) bool {
	parsed, err := utilversion.ParseGeneric(gitVersion)
	if err != nil {
		return false
	}
	return parsed.Major() == v.major && parsed.Minor() == v.minor
}

// Slug returns a DNS-label friendly form, e.g. "v1-30".
func (v KubernetesVersion) Slug() string {
	return fmt.Sprintf("v%d-%d", v.major, v.minor)
}
