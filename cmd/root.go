package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bouwcheck/daglicht/internal/version"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "daglicht",
	Short: "NEN 2057 daylight admittance check",
	Long: `daglicht - daylight admittance check for window openings

A CLI tool that checks the equivalent daylight area of habitable
areas (verblijfsgebieden) according to NEN 2057, as required by the
Dutch building regulations.

For every window in a building model it determines:
  - the obstruction angle α from a fan of horizontal rays
  - the overhang angle β from a vertical section in front of the glass
  - the net glazed area Ad of the pane grid
  - the reduction factor Cb and the equivalent daylight area Ae

and checks ΣAe ≥ 0.55 × floor area for every habitable area.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetOutput(os.Stderr)
		log.SetLevel(level)
		if logJSON {
			log.SetFormatter(&log.JSONFormatter{})
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   daglicht v%-46s║\n", version.Version)
		fmt.Println("  ║   NEN 2057 daylight admittance check                      ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" © "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Checks the equivalent daylight area of habitable areas")
		fmt.Println("  against NEN 2057 from a JSON building model.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Obstruction angle α from an 11-ray horizontal fan")
		fmt.Println("    • Overhang angle β from a vertical section search")
		fmt.Println("    • Net glazed area for wood and aluminium frames")
		fmt.Println("    • Cb lookup and compliance per habitable area")
		fmt.Println("    • Linked models, STL geometry, JSON reports, diagrams")
		fmt.Println()
		fmt.Println("  Use 'daglicht --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
}
