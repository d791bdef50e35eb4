package layer

import (
	"errors"
	"fmt"

	"k8s-layers/pkg/version"
)

// ErrUnsupportedVersion matches any UnsupportedVersionError via errors.Is.
var ErrUnsupportedVersion = errors.New("unsupported kubernetes version")

// UnsupportedVersionError is returned when no constructor is registered for
// the requested version.
type UnsupportedVersionError struct {
	Version version.KubernetesVersion
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("no layer constructor registered for version %s", e.Version)
}

// Is lets errors.Is(err, ErrUnsupportedVersion) succeed.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
