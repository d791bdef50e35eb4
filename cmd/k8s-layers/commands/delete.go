package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"k8s-layers/pkg/cluster"
	"k8s-layers/pkg/state"
)

// Delete returns the command removing the kind cluster for a version.
func Delete(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the kind cluster for a Kubernetes version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			name := cluster.ClusterName(cfg)
			if err := cluster.NewManager().DeleteCluster(name); err != nil {
				return err
			}

			st, err := state.NewManager(opts.cfg.StatePath)
			if err != nil {
				return err
			}
			if err := st.ForgetCluster(name); err != nil {
				klog.ErrorS(err, "Failed to update cluster state", "cluster", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
			return nil
		},
	}
}
