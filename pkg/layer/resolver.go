package layer

import (
	"sort"

	"k8s-layers/pkg/version"
)

// Table maps a canonical version string ("1.30") to its layer constructor.
type Table map[string]Constructor

// VersionConfig pairs a resolved version with the layer built for it.
type VersionConfig struct {
	Version version.KubernetesVersion
	Layer   Layer
}

// DefaultTable returns the constructors for every supported version.
func DefaultTable() Table {
	return Table{
		version.V1_29.String(): NewKubectlV29Layer,
		version.V1_30.String(): NewKubectlV30Layer,
		version.V1_31.String(): NewKubectlV31Layer,
		version.V1_32.String(): NewKubectlV32Layer,
		version.V1_33.String(): NewKubectlV33Layer,
	}
}

// Resolver selects and constructs the layer for a Kubernetes version.
// It is safe for concurrent use; its table is never modified.
type Resolver struct {
	table          Table
	defaultVersion version.KubernetesVersion
}

// NewResolver returns a Resolver over a copy of table.
func NewResolver(table Table, defaultVersion version.KubernetesVersion) *Resolver {
	t := make(Table, len(table))
	for k, ctor := range table {
		t[k] = ctor
	}
	return &Resolver{table: t, defaultVersion: defaultVersion}
}

var defaultResolver = NewResolver(DefaultTable(), version.Default)

// DefaultResolver returns the resolver over DefaultTable and version.Default.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// ClusterVersionConfig resolves v with the default resolver.
func ClusterVersionConfig(scope Scope, v *version.KubernetesVersion) (VersionConfig, error) {
	return defaultResolver.Resolve(scope, v)
}

// Default returns the version used when Resolve is called without one.
func (r *Resolver) Default() version.KubernetesVersion {
	return r.defaultVersion
}

// Resolve builds the layer registered for v, or for the default version when
// v is nil. An explicit version with no registered constructor is an
// *UnsupportedVersionError; it never falls back to the default. Constructor
// errors are returned unchanged.
func (r *Resolver) Resolve(scope Scope, v *version.KubernetesVersion) (VersionConfig, error) {
	effective := r.defaultVersion
	if v != nil {
		effective = *v
	}

	ctor, ok := r.table[effective.String()]
	if !ok || ctor == nil {
		return VersionConfig{}, &UnsupportedVersionError{Version: effective}
	}

	l, err := ctor(scope, LayerID)
	if err != nil {
		return VersionConfig{}, err
	}

	return VersionConfig{Version: effective, Layer: l}, nil
}

// Versions returns the versions with a registered constructor, oldest first.
func (r *Resolver) Versions() []version.KubernetesVersion {
	out := make([]version.KubernetesVersion, 0, len(r.table))
	for key := range r.table {
		v, err := version.Parse(key)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Semantic().LessThan(out[j].Semantic())
	})
	return out
}
