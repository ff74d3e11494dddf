package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	hitColor      = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	missColor     = color.RGBA{R: 120, G: 160, B: 220, A: 255}
	obstacleFill  = color.RGBA{R: 160, G: 160, B: 160, A: 150}
	glassColor    = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	sectionColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	betaLineColor = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// ExportWindowDiagram writes the plan view of the α fan to filename and
// the section view of the β search next to it, with "-section" added
// to the name. The format follows the extension; anything other than
// .png, .svg or .pdf gets .png appended.
func ExportWindowDiagram(data WindowDiagramData, filename string) error {
	plan, err := planPlot(data)
	if err != nil {
		return err
	}
	section, err := sectionPlot(data)
	if err != nil {
		return err
	}

	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
		ext = ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := plan.Save(8*vg.Inch, 8*vg.Inch, filename); err != nil {
		return err
	}
	return section.Save(8*vg.Inch, 6*vg.Inch, SectionFilename(filename))
}

// SectionFilename is where ExportWindowDiagram puts the section view.
func SectionFilename(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "-section" + ext
}

func planPlot(data WindowDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Window %s: obstruction angle α = %.2f°", data.WindowID, data.Alpha)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for _, o := range data.Obstacles {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: o.Min.X, Y: o.Min.Y},
			{X: o.Max.X, Y: o.Min.Y},
			{X: o.Max.X, Y: o.Max.Y},
			{X: o.Min.X, Y: o.Max.Y},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = obstacleFill
		poly.LineStyle.Color = color.Black
		p.Add(poly)

		if o.Label != "" {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: (o.Min.X + o.Max.X) / 2, Y: (o.Min.Y + o.Max.Y) / 2}},
				Labels: []string{o.Label},
			})
			if err != nil {
				return nil, err
			}
			p.Add(lbl)
		}
	}

	for _, r := range data.Rays {
		line, err := plotter.NewLine(plotter.XYs{{X: r.From.X, Y: r.From.Y}, {X: r.To.X, Y: r.To.Y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1)
		if r.Hit {
			line.LineStyle.Color = hitColor
		} else {
			line.LineStyle.Color = missColor
			line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		}
		p.Add(line)

		if r.Hit {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: r.To.X, Y: r.To.Y}},
				Labels: []string{fmt.Sprintf("%.1f°", r.Alpha)},
			})
			if err != nil {
				return nil, err
			}
			p.Add(lbl)
		}
	}

	origin, err := plotter.NewScatter(plotter.XYs{{X: data.Origin.X, Y: data.Origin.Y}})
	if err != nil {
		return nil, err
	}
	origin.GlyphStyle.Color = color.Black
	origin.GlyphStyle.Radius = vg.Points(4)
	origin.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(origin)

	p.Add(plotter.NewGrid())
	return p, nil
}

func sectionPlot(data WindowDiagramData) (*plot.Plot, error) {
	p := plot.New()
	if math.IsNaN(data.Beta) {
		p.Title.Text = fmt.Sprintf("Window %s: no overhang", data.WindowID)
	} else {
		p.Title.Text = fmt.Sprintf("Window %s: overhang angle β = %.2f°", data.WindowID, data.Beta)
	}
	p.X.Label.Text = "Distance in front of facade (m)"
	p.Y.Label.Text = "Height (m)"

	top := data.GlassTop + 1
	for _, pt := range data.SectionPoints {
		top = math.Max(top, pt.Y)
	}

	facade, err := plotter.NewLine(plotter.XYs{{X: 0, Y: data.LevelElevation}, {X: 0, Y: top}})
	if err != nil {
		return nil, err
	}
	facade.LineStyle.Width = vg.Points(2)
	facade.LineStyle.Color = color.Black
	p.Add(facade)

	glass, err := plotter.NewPolygon(plotter.XYs{
		{X: -0.05, Y: data.GlassBottom},
		{X: 0, Y: data.GlassBottom},
		{X: 0, Y: data.GlassTop},
		{X: -0.05, Y: data.GlassTop},
	})
	if err != nil {
		return nil, err
	}
	glass.Color = glassColor
	p.Add(glass)

	radius := data.Radius
	if radius <= 0 {
		radius = 5
	}
	ref, err := plotter.NewLine(plotter.XYs{{X: 0, Y: data.ReferenceHeight}, {X: radius, Y: data.ReferenceHeight}})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ref)

	if len(data.SectionPoints) > 0 {
		pts := make(plotter.XYs, len(data.SectionPoints))
		for i, sp := range data.SectionPoints {
			pts[i] = plotter.XY{X: sp.X, Y: sp.Y}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = sectionColor
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}

	if data.BetaPoint != nil {
		mid := (data.GlassBottom + data.GlassTop) / 2
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: mid}, {X: data.BetaPoint.X, Y: data.BetaPoint.Y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = betaLineColor
		p.Add(line)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: data.BetaPoint.X, Y: data.BetaPoint.Y}},
			Labels: []string{fmt.Sprintf("β=%.1f°", data.Beta)},
		})
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}

	p.X.Min = -0.5
	p.X.Max = radius
	p.Add(plotter.NewGrid())
	return p, nil
}
