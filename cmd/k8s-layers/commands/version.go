package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	buildVersion = v
	buildCommit = c
	buildDate = d
}

// Version returns the version command.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "k8s-layers %s\n", buildVersion)
			fmt.Fprintf(out, "  commit: %s\n", buildCommit)
			fmt.Fprintf(out, "  built:  %s\n", buildDate)
		},
	}
}
