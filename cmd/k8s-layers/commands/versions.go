package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"k8s-layers/pkg/layer"
)

// Versions returns the command listing supported Kubernetes versions.
func Versions() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List Kubernetes versions with a registered kubectl layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := layer.DefaultResolver()
			out := cmd.OutOrStdout()
			for _, v := range r.Versions() {
				if v == r.Default() {
					fmt.Fprintf(out, "%s %s\n", v, defaultStyle.Render("(default)"))
					continue
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
