package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at link time: -ldflags "-X github.com/Dulitha99/Research-Website/cmd.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the researchsite version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "researchsite %s (%s, %s)\n", Version, Commit, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
