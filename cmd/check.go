package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bouwcheck/daglicht/internal/compliance"
	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/diagram"
	"github.com/bouwcheck/daglicht/internal/nen"
	"github.com/bouwcheck/daglicht/internal/report"
	"github.com/bouwcheck/daglicht/internal/scene"
)

var (
	checkFile     string
	checkOutput   string
	checkAnnotate string
	checkDiagram  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check all windows and habitable areas of a building",
	Long: `Run the NEN 2057 check for a building model.

Every window gets its obstruction angle α, overhang angle β, glazed
area Ad, reduction factor Cb and equivalent daylight area Ae. Windows
are assigned to the habitable area whose outline contains them and
each area is checked against ΣAe ≥ 0.55 × floor area.

Settings in the building file override the defaults; flags given on
the command line override both.

Examples:
  daglicht check -f woning.json
  daglicht check -f woning.json -o resultaten.json --annotate woning-nen.json
  daglicht check -f woning.json --radius 6 --flip-facing`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to building JSON file [required]")
	checkCmd.MarkFlagRequired("file")

	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Write the JSON report to this file")
	checkCmd.Flags().StringVar(&checkAnnotate, "annotate", "", "Write α, β and Ad onto the windows and save the building to this file")
	checkCmd.Flags().BoolVar(&checkDiagram, "diagram", false, "Show the α chart of every window")
	addCalcFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	b, cfg, err := loadBuilding(cmd, checkFile)
	if err != nil {
		fmt.Printf("Error loading building: %v\n", err)
		return
	}

	ix := scene.Build(b, log.StandardLogger())
	calc := daylight.NewCalculator(cfg, ix, log.StandardLogger())

	var pw daylight.ParameterWriter
	if checkAnnotate != "" {
		pw = b
	}
	windows := b.Windows()
	results := calc.Run(windows, pw)
	agg := compliance.Aggregate(results, b.HabitableAreas(), compliance.Options{NoOverhangBeta: cfg.NoOverhangBeta})

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DAYLIGHT ADMITTANCE CHECK - NEN 2057")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Building: %s\n", b.Name)
	fmt.Printf("  Obstructions: %d   Windows: %d   Habitable areas: %d\n", ix.Len(), len(results), len(agg.Areas))
	fmt.Println()

	fmt.Println("WINDOWS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Window\tLevel\tα (°)\tβ (°)\tAd (m²)\tCb\tAe (m²)\tArea\n")
	fmt.Fprintf(w, "  ──────\t─────\t─────\t─────\t───────\t──\t───────\t────\n")
	for i, wc := range agg.Windows {
		res := results[i]
		alpha := wc.Alpha.Format("%.2f")
		if res.AlphaAdjusted {
			alpha += "*"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			wc.WindowID, res.Level, alpha, wc.Beta.Format("%.2f"),
			wc.Ad.Format("%.3f"), wc.Cb.Format("%.3f"), wc.Ae.Format("%.3f"), orDash(wc.Area))
	}
	w.Flush()
	fmt.Printf("  Cb: %s\n", nen.CbTableNote)
	fmt.Println()

	printNotes(results)

	if len(agg.Areas) > 0 {
		fmt.Println("HABITABLE AREAS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Area\tLevel\tFloor (m²)\tΣAe (m²)\tRequired (m²)\tCbi\tStatus\n")
		fmt.Fprintf(w, "  ────\t─────\t──────────\t────────\t─────────────\t───\t──────\n")
		for _, a := range agg.Areas {
			status := "✓ " + a.Status()
			if !a.Compliant {
				status = "✗ " + a.Status()
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.3f\t%.3f\t%.3f\t%s\n",
				a.Name, orDash(a.Level), a.Area, a.AeSum, a.RequiredAe, a.Cbi, status)
		}
		w.Flush()
		fmt.Println()

		for _, a := range agg.Areas {
			if a.Compliant {
				continue
			}
			fmt.Print(diagram.DrawSummaryBox(a.Name+": "+a.Status(), []string{
				fmt.Sprintf("Missing Ae:            %.3f m²", a.Deficit),
				fmt.Sprintf("Largest compliant area: %.2f m²", a.MaxCompliantArea),
				fmt.Sprintf("Area reduction needed:  %.2f m²", a.AreaReduction),
			}))
			fmt.Println()
		}
	}

	if len(agg.Unassigned) > 0 {
		fmt.Printf("  Windows outside every habitable area: %v\n", agg.Unassigned)
		fmt.Println()
	}

	if checkDiagram {
		for i, res := range results {
			fmt.Printf("  %s\n", res.WindowID)
			fmt.Println(diagram.AlphaChart(windowDiagram(res, windows[i].LevelElevation, ix, cfg)))
			fmt.Println()
		}
	}

	if checkOutput != "" {
		r := report.New(b.Name, cfg, results, agg)
		if err := r.Save(checkOutput); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			return
		}
		fmt.Printf("  Report written to: %s\n", checkOutput)
	}
	if checkAnnotate != "" {
		if err := b.Save(checkAnnotate); err != nil {
			fmt.Printf("Error saving annotated building: %v\n", err)
			return
		}
		fmt.Printf("  Annotated building written to: %s\n", checkAnnotate)
	}
}

func printNotes(results []*daylight.WindowResult) {
	var notes []string
	for _, res := range results {
		if res.AlphaAdjusted {
			notes = append(notes, fmt.Sprintf("%s: α %s, fan gave %.2f°", res.WindowID, res.AlphaNote, res.AlphaFan))
		} else if res.AlphaNote != "" {
			notes = append(notes, fmt.Sprintf("%s: %s", res.WindowID, res.AlphaNote))
		}
		if !res.GlazingArea().Defined() {
			notes = append(notes, fmt.Sprintf("%s: no glazed area, %s", res.WindowID, res.GlazingArea().Reason()))
		}
		if res.BudgetExhausted {
			notes = append(notes, fmt.Sprintf("%s: overhang search stopped after %d edge tests", res.WindowID, res.EdgeTests))
		}
	}
	if len(notes) == 0 {
		return
	}
	fmt.Println("NOTES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, n := range notes {
		fmt.Printf("  • %s\n", n)
	}
	fmt.Println("  * α limited by an overhang")
	fmt.Println()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
