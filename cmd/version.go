package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bouwcheck/daglicht/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of daglicht",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daglicht v%s\n", version.Version)
		fmt.Println("Daylight admittance check")
		fmt.Println("Based on NEN 2057 (Daglichtopeningen van gebouwen)")
		fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
