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
	"github.com/bouwcheck/daglicht/internal/scene"
)

var (
	windowFile    string
	windowID      string
	windowShowDiag bool
	windowOutput  string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the full calculation of one window",
	Long: `Show every step of the NEN 2057 calculation for a single window:
the fan of α rays and what each one hit, the section points of the
overhang search, the glazing panes and the resulting Cb and Ae.

Examples:
  daglicht window -f woning.json --id W-03
  daglicht window -f woning.json --id W-03 --diagram
  daglicht window -f woning.json --id W-03 -o W-03.png`,
	Run: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().StringVarP(&windowFile, "file", "f", "", "Path to building JSON file [required]")
	windowCmd.Flags().StringVar(&windowID, "id", "", "Window id [required]")
	windowCmd.MarkFlagRequired("file")
	windowCmd.MarkFlagRequired("id")

	windowCmd.Flags().BoolVar(&windowShowDiag, "diagram", false, "Show the α chart and the section in the terminal")
	windowCmd.Flags().StringVarP(&windowOutput, "output", "o", "", "Export plan and section diagrams (.png, .svg, .pdf)")
	addCalcFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) {
	b, cfg, err := loadBuilding(cmd, windowFile)
	if err != nil {
		fmt.Printf("Error loading building: %v\n", err)
		return
	}
	w, ok := b.Window(windowID)
	if !ok {
		fmt.Printf("Error: window %q not found\n", windowID)
		return
	}

	ix := scene.Build(b, log.StandardLogger())
	res := daylight.NewCalculator(cfg, ix, log.StandardLogger()).Compute(w)
	wc := compliance.WindowCb(res, compliance.Options{NoOverhangBeta: cfg.NoOverhangBeta})

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     WINDOW %s\n", w.ID)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("WINDOW:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Level:               %s (%.3f m)\n", orDash(w.Level), w.LevelElevation)
	fmt.Printf("  Construction:        %s\n", w.Frame.Construction)
	fmt.Printf("  Frame:               %.0f × %.0f mm, sill %.0f mm\n", w.Frame.Width*1000, w.Frame.Height*1000, w.Frame.Sill*1000)
	if len(w.Frame.Missing) > 0 {
		fmt.Printf("  Missing parameters:  %v\n", w.Frame.Missing)
	}
	if res.Located {
		fmt.Printf("  Origin:              (%.3f, %.3f, %.3f)\n", res.Origin.X, res.Origin.Y, res.Origin.Z)
		fmt.Printf("  Sight direction:     (%.3f, %.3f)\n", res.Direction.X, res.Direction.Y)
	}
	fmt.Printf("  Glass:               %.3f … %.3f m, reference height %.3f m\n", res.GlassBottom, res.GlassTop, res.ReferenceHeight)
	fmt.Println()

	if len(res.Rays) > 0 {
		fmt.Println("OBSTRUCTION ANGLE α:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Offset (°)\tDistance (m)\tα (°)\tObstruction\n")
		fmt.Fprintf(tw, "  ──────────\t────────────\t─────\t───────────\n")
		for _, r := range res.Rays {
			fmt.Fprintf(tw, "  %+.0f\t%s\t%.2f\t%s\n", r.Offset, r.Distance.Format("%.3f"), r.Alpha, orDash(r.ObstacleID))
		}
		tw.Flush()
	}
	fmt.Printf("  α = %s°", res.Alpha.Format("%.2f"))
	if res.AlphaAdjusted {
		fmt.Printf(" (fan average %.2f°)", res.AlphaFan)
	}
	if res.AlphaNote != "" {
		fmt.Printf(", %s", res.AlphaNote)
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("OVERHANG ANGLE β:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(res.Section) > 0 {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Forward (m)\tHeight (m)\tObstruction\n")
		fmt.Fprintf(tw, "  ───────────\t──────────\t───────────\n")
		for _, sp := range res.Section {
			fmt.Fprintf(tw, "  %.3f\t%.3f\t%s\n", sp.Forward, sp.Height, sp.ObstacleID)
		}
		tw.Flush()
	}
	if res.Beta.Defined() {
		fmt.Printf("  β = %.2f° (%s)\n", res.Beta.Or(0), res.BetaReason)
	} else {
		fmt.Printf("  β undefined: %s\n", res.Beta.Reason())
	}
	fmt.Printf("  Edge tests: %d\n", res.EdgeTests)
	fmt.Println()

	fmt.Println("GLAZING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	g := res.Glazing
	if len(g.Panes) > 0 {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Pane\tKind\tWidth (m)\tHeight (m)\tArea (m²)\tFilling\n")
		fmt.Fprintf(tw, "  ────\t────\t─────────\t──────────\t─────────\t───────\n")
		for _, p := range g.Panes {
			fmt.Fprintf(tw, "  r%d c%d\t%s\t%.3f\t%.3f\t%.3f\t%s\n",
				p.Row+1, p.Col+1, p.Kind, p.Width, p.Height, p.Area(), orDash(p.Label))
		}
		tw.Flush()
		fmt.Printf("  %s\n", g.Describe())
	}
	if g.FloorCut > 0 {
		fmt.Printf("  Cut below floor cutoff: %.3f m\n", g.FloorCut)
	}
	if g.TopTrim > 0 {
		fmt.Printf("  Trimmed at the top:     %.3f m\n", g.TopTrim)
	}
	fmt.Println()

	lines := []string{
		"α:   " + wc.Alpha.Format("%.2f°"),
		"β:   " + wc.Beta.Format("%.2f°"),
		"Cb:  " + wc.Cb.Format("%.3f"),
		"Ad:  " + wc.Ad.Format("%.3f m²"),
		"Ae:  " + wc.Ae.Format("%.3f m²"),
	}
	if wc.BetaAssumed {
		lines[1] = fmt.Sprintf("β:   none, read at %.0f°", wc.BetaUsed)
	}
	if !wc.Ad.Defined() {
		lines = append(lines, "", "No glazed area: "+wc.Ad.Reason())
	}
	fmt.Print(diagram.DrawSummaryBox("RESULT "+w.ID, lines))
	fmt.Println()

	data := windowDiagram(res, w.LevelElevation, ix, cfg)
	if windowShowDiag {
		if chart := diagram.AlphaChart(data); chart != "" {
			fmt.Println(chart)
			fmt.Println()
		}
		fmt.Println(diagram.DrawASCIISection(data))
	}

	if windowOutput != "" {
		if err := diagram.ExportWindowDiagram(data, windowOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagrams exported to: %s (plan and section)\n", windowOutput)
	}
}
