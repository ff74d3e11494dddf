package cmd

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/diagram"
	"github.com/bouwcheck/daglicht/internal/model"
	"github.com/bouwcheck/daglicht/internal/scene"
)

// Calculation flags shared by check and window
var (
	calcRadius     float64
	calcFanStep    float64
	calcFanRays    int
	calcFlipFacing bool
	calcSash       float64
	calcEdgeBudget int
)

func addCalcFlags(c *cobra.Command) {
	def := daylight.DefaultConfig()
	c.Flags().Float64Var(&calcRadius, "radius", def.SearchRadius, "Search radius for obstructions (m)")
	c.Flags().Float64Var(&calcFanStep, "fan-step", def.FanStep, "Angle between fan rays (degrees)")
	c.Flags().IntVar(&calcFanRays, "fan-rays", def.FanRays, "Number of fan rays")
	c.Flags().BoolVar(&calcFlipFacing, "flip-facing", false, "Reverse window facing directions")
	c.Flags().Float64Var(&calcSash, "sash", def.Glazing.DefaultSashWidth*1000, "Default sash width of operable panes (mm)")
	c.Flags().IntVar(&calcEdgeBudget, "edge-budget", def.EdgeBudget, "Edge tests per window for the overhang search (0 = unlimited)")
}

// loadBuilding reads the building file and resolves the configuration:
// defaults, then the file's settings, then flags given on the command
// line.
func loadBuilding(c *cobra.Command, path string) (*model.Building, daylight.Config, error) {
	b, err := model.LoadFromFile(path, log.StandardLogger())
	if err != nil {
		return nil, daylight.Config{}, err
	}

	cfg := daylight.DefaultConfig()
	b.Settings.Apply(&cfg)

	flags := c.Flags()
	if flags.Changed("radius") {
		cfg.SearchRadius = calcRadius
	}
	if flags.Changed("fan-step") {
		cfg.FanStep = calcFanStep
	}
	if flags.Changed("fan-rays") {
		cfg.FanRays = calcFanRays
	}
	if flags.Changed("flip-facing") {
		cfg.FlipFacing = calcFlipFacing
	}
	if flags.Changed("sash") {
		cfg.Glazing.DefaultSashWidth = calcSash / 1000
	}
	if flags.Changed("edge-budget") {
		cfg.EdgeBudget = calcEdgeBudget
	}

	if err := cfg.Validate(); err != nil {
		return nil, cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return b, cfg, nil
}

// windowDiagram collects what the diagrams show for one window.
func windowDiagram(res *daylight.WindowResult, levelElevation float64, ix *scene.Index, cfg daylight.Config) diagram.WindowDiagramData {
	d := diagram.WindowDiagramData{
		WindowID:        res.WindowID,
		Origin:          diagram.Point{X: res.Origin.X, Y: res.Origin.Y},
		LevelElevation:  levelElevation,
		GlassBottom:     res.GlassBottom,
		GlassTop:        res.GlassTop,
		ReferenceHeight: res.ReferenceHeight,
		Radius:          cfg.SearchRadius,
		Alpha:           res.Alpha.Or(math.NaN()),
		Beta:            res.Beta.Or(math.NaN()),
	}
	for _, r := range res.Rays {
		d.Rays = append(d.Rays, diagram.Ray{
			From:   diagram.Point{X: r.From.X, Y: r.From.Y},
			To:     diagram.Point{X: r.To.X, Y: r.To.Y},
			Offset: r.Offset,
			Alpha:  r.Alpha,
			Hit:    r.Hit(),
		})
	}
	walls := ix.NearXY(res.Origin, cfg.SearchRadius, func(o *scene.Obstruction) bool {
		return o.Category == scene.Wall
	})
	for _, o := range walls {
		d.Obstacles = append(d.Obstacles, diagram.Obstacle{
			Min:   diagram.Point{X: o.Box.Min.X, Y: o.Box.Min.Y},
			Max:   diagram.Point{X: o.Box.Max.X, Y: o.Box.Max.Y},
			Label: o.ID,
		})
	}
	for _, sp := range res.Section {
		d.SectionPoints = append(d.SectionPoints, diagram.Point{X: sp.Forward, Y: sp.Point.Z})
	}
	if res.BetaPoint != nil {
		fw := r3.Dot(r3.Sub(*res.BetaPoint, res.Origin), res.Direction)
		d.BetaPoint = &diagram.Point{X: fw, Y: res.BetaPoint.Z}
	}
	return d
}
