// Package commands defines the k8s-layers cobra commands.
package commands

import (
	"flag"
	"strconv"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"k8s-layers/pkg/config"
	"k8s-layers/pkg/layer"
	"k8s-layers/pkg/version"
)

// ScopeRoot is the root scope every CLI-resolved layer is declared in.
const ScopeRoot = "k8s-layers"

// options carries values shared by all subcommands.
type options struct {
	cfg               config.Config
	kubernetesVersion string
}

// Root returns the root command for the k8s-layers CLI.
func Root() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "k8s-layers",
		Short:         "Resolve kubectl layers and provision matching kind clusters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return setupLogging(cfg.LogVerbosity)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.kubernetesVersion, "kubernetes-version", "k", "",
		"Kubernetes minor version, e.g. 1.30 (defaults to K8S_LAYERS_VERSION, then "+version.Default.String()+")")

	cmd.AddCommand(Versions())
	cmd.AddCommand(Resolve(opts))
	cmd.AddCommand(Provision(opts))
	cmd.AddCommand(Delete(opts))
	cmd.AddCommand(Version())

	return cmd
}

// requestedVersion returns the version asked for by flag or environment, or
// nil if neither is set.
func (o *options) requestedVersion() (*version.KubernetesVersion, error) {
	if o.kubernetesVersion != "" {
		v, err := version.Parse(o.kubernetesVersion)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return o.cfg.KubernetesVersion()
}

func (o *options) resolve() (layer.VersionConfig, error) {
	v, err := o.requestedVersion()
	if err != nil {
		return layer.VersionConfig{}, err
	}
	return layer.ClusterVersionConfig(layer.NewRoot(ScopeRoot), v)
}

func setupLogging(verbosity int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	return fs.Set("v", strconv.Itoa(verbosity))
}
