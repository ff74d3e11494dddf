package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bouwcheck/daglicht/internal/nen"
)

var (
	cbAlpha float64
	cbBeta  float64
	cbAll   bool
)

var cbCmd = &cobra.Command{
	Use:   "cb",
	Short: "Look up the obstruction factor Cb",
	Long: `Look up the NEN 2057 obstruction factor Cb for an obstruction
angle α and overhang angle β. α is clamped to 20° … 32° and
interpolated between whole degrees; β selects the table band.

Examples:
  daglicht cb --alpha 24.5 --beta 12
  daglicht cb --all`,
	Run: runCb,
}

func init() {
	rootCmd.AddCommand(cbCmd)

	cbCmd.Flags().Float64Var(&cbAlpha, "alpha", nen.AlphaMin, "Obstruction angle α (degrees)")
	cbCmd.Flags().Float64Var(&cbBeta, "beta", 0, "Overhang angle β (degrees)")
	cbCmd.Flags().BoolVar(&cbAll, "all", false, "Print the whole table")
}

func runCb(cmd *cobra.Command, args []string) {
	if cbAll {
		printCbTable()
		return
	}
	if cbBeta < 0 || cbBeta > 90 {
		fmt.Printf("Error: β must be between 0 and 90 degrees, got %g\n", cbBeta)
		return
	}

	band := nen.Band(cbBeta)
	fmt.Println()
	fmt.Printf("  α = %.2f°, β = %.2f° (band %.0f° … %.0f°)\n", cbAlpha, cbBeta, band.BetaFrom, band.BetaTo)
	if cbAlpha < nen.AlphaMin || cbAlpha > nen.AlphaMax {
		fmt.Printf("  α outside %.0f° … %.0f°, clamped\n", nen.AlphaMin, nen.AlphaMax)
	}
	fmt.Printf("  Cb = %.3f\n", nen.Cb(cbAlpha, cbBeta))
	fmt.Printf("  Note: %s\n", nen.CbTableNote)
	fmt.Println()
}

func printCbTable() {
	fmt.Println()
	fmt.Println("OBSTRUCTION FACTOR Cb (rows β, columns α):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "β (°)\t")
	for a := nen.AlphaMin; a <= nen.AlphaMax; a++ {
		fmt.Fprintf(w, "%.0f°\t", a)
	}
	fmt.Fprintln(w)
	for _, band := range nen.CbTable {
		fmt.Fprintf(w, "%.0f-%.0f\t", band.BetaFrom, band.BetaTo)
		for _, v := range band.Values {
			fmt.Fprintf(w, "%.2f\t", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Note: %s\n", nen.CbTableNote)
	fmt.Println()
}
