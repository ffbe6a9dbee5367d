package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
		fmt.Fprintf(cmd.OutOrStdout(), tmpl, buildVersion, buildDate, buildCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
