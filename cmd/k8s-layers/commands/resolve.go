package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Resolve returns the command printing the layer resolved for a version.
func Resolve(opts *options) *cobra.Command {
	var goos, goarch string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the kubectl layer resolved for a Kubernetes version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, field("Version", cfg.Version.String()))
			fmt.Fprint(out, field("Layer", cfg.Layer.Path()))
			fmt.Fprint(out, field("Kubectl", cfg.Layer.KubectlVersion()))
			fmt.Fprint(out, field("Node image", cfg.Layer.NodeImage()))
			fmt.Fprint(out, field("Download", cfg.Layer.DownloadURL(goos, goarch)))
			return nil
		},
	}

	cmd.Flags().StringVar(&goos, "os", runtime.GOOS, "Target operating system for the download URL")
	cmd.Flags().StringVar(&goarch, "arch", runtime.GOARCH, "Target architecture for the download URL")

	return cmd
}
