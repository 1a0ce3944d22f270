package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/cli"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintVersion("nexus", versionJSON)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "JSON output")
	rootCmd.AddCommand(versionCmd)
}
