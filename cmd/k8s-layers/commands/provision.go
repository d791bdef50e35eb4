package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"k8s-layers/pkg/cluster"
	"k8s-layers/pkg/k8s"
	"k8s-layers/pkg/state"
)

// Provision returns the command creating a kind cluster for a version.
func Provision(opts *options) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a kind cluster matching the resolved kubectl layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			kubeconfig, err := cluster.NewManager().WithWaitForReady(wait).EnsureCluster(cfg)
			if err != nil {
				return err
			}

			client, err := k8s.NewClientFromKubeconfig(kubeconfig)
			if err != nil {
				return err
			}
			if err := client.VerifyVersion(cmd.Context(), cfg.Version); err != nil {
				return fmt.Errorf("cluster verification failed: %w", err)
			}

			name := cluster.ClusterName(cfg)
			st, err := state.NewManager(opts.cfg.StatePath)
			if err != nil {
				return err
			}
			if err := st.RecordCluster(name, state.ClusterRecord{
				Version:   cfg.Version.String(),
				Layer:     cfg.Layer.Path(),
				NodeImage: cfg.Layer.NodeImage(),
				CreatedAt: time.Now().UTC(),
			}); err != nil {
				klog.ErrorS(err, "Failed to record cluster state", "cluster", name)
			}

			fmt.Fprint(cmd.OutOrStdout(), field("Cluster", name))
			fmt.Fprint(cmd.OutOrStdout(), field("Version", cfg.Version.String()))
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", cluster.DefaultWaitForReady, "How long to wait for the control plane")

	return cmd
}
