// Package main is the entry point for the k8s-layers CLI.
//
// k8s-layers resolves the kubectl support layer for a Kubernetes minor
// version and provisions kind clusters that match it.
//
// Commands: versions, resolve, provision, delete, version.
package main

import (
	"fmt"
	"os"

	"k8s-layers/cmd/k8s-layers/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
