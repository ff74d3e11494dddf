package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bouwcheck/daglicht/internal/compliance"
	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/model"
)

var areasFile string

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List habitable areas and the windows assigned to them",
	Long: `List the habitable areas of a building with their floor area,
the required equivalent daylight area and the windows whose centre lies
inside each area. No geometry is computed.

Examples:
  daglicht areas -f woning.json`,
	Run: runAreas,
}

func init() {
	rootCmd.AddCommand(areasCmd)

	areasCmd.Flags().StringVarP(&areasFile, "file", "f", "", "Path to building JSON file [required]")
	areasCmd.MarkFlagRequired("file")
}

func runAreas(cmd *cobra.Command, args []string) {
	b, err := model.LoadFromFile(areasFile, log.StandardLogger())
	if err != nil {
		fmt.Printf("Error loading building: %v\n", err)
		return
	}

	// Only the location is needed to assign windows.
	var results []*daylight.WindowResult
	for _, w := range b.Windows() {
		res := &daylight.WindowResult{WindowID: w.ID, Level: w.Level}
		if w.Box.Valid() {
			res.Center = w.Box.Center()
			res.Located = true
		}
		results = append(results, res)
	}
	agg := compliance.Aggregate(results, b.HabitableAreas(), compliance.Options{})

	fmt.Println()
	fmt.Println("HABITABLE AREAS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area\tLevel\tFloor (m²)\tRequired Ae (m²)\tWindows\n")
	fmt.Fprintf(w, "  ────\t─────\t──────────\t────────────────\t───────\n")
	for _, a := range agg.Areas {
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.3f\t%s\n",
			a.Name, orDash(a.Level), a.Area, a.RequiredAe, orDash(strings.Join(a.WindowIDs, ", ")))
	}
	w.Flush()
	fmt.Println()

	if len(agg.Unassigned) > 0 {
		fmt.Printf("  Windows outside every habitable area: %s\n", strings.Join(agg.Unassigned, ", "))
		fmt.Println()
	}
}
