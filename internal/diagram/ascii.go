package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Point is a 2D coordinate: plan X/Y, or forward distance and height
// in the section.
type Point struct {
	X float64
	Y float64
}

// Ray is one fan ray in plan.
type Ray struct {
	From, To Point
	Offset   float64 // degrees from the sight direction
	Alpha    float64 // degrees
	Hit      bool
}

// Obstacle is an obstruction footprint in plan.
type Obstacle struct {
	Min, Max Point
	Label    string
}

// WindowDiagramData holds what is drawn for one window.
type WindowDiagramData struct {
	WindowID string

	// Plan view
	Origin    Point
	Rays      []Ray
	Obstacles []Obstacle

	// Section view: X is the distance in front of the facade, Y the
	// absolute height (m).
	LevelElevation  float64
	GlassBottom     float64
	GlassTop        float64
	ReferenceHeight float64
	SectionPoints   []Point
	BetaPoint       *Point
	Radius          float64

	Alpha float64
	Beta  float64 // NaN when undefined
}

// AlphaChart plots α per fan ray, left to right from the most negative
// offset.
func AlphaChart(data WindowDiagramData) string {
	if len(data.Rays) == 0 {
		return ""
	}
	series := make([]float64, len(data.Rays))
	for i, r := range data.Rays {
		series[i] = r.Alpha
	}
	first, last := data.Rays[0].Offset, data.Rays[len(data.Rays)-1].Offset
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("α per ray (°), offsets %+.0f° … %+.0f°, average %.2f°", first, last, data.Alpha)),
	)
}

// DrawASCIISection draws the vertical section in front of the window:
// the facade with its glass on the left, the candidate points of the β
// search and the point that set β.
func DrawASCIISection(data WindowDiagramData) string {
	const cols, rows = 50, 16
	radius := data.Radius
	if radius <= 0 {
		radius = 5
	}
	zMin := data.LevelElevation
	zMax := data.GlassTop + 1
	for _, p := range data.SectionPoints {
		zMax = math.Max(zMax, p.Y)
	}
	if zMax <= zMin {
		zMax = zMin + 1
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	row := func(z float64) int {
		r := rows - 1 - int(math.Round((z-zMin)/(zMax-zMin)*float64(rows-1)))
		return max(0, min(rows-1, r))
	}
	col := func(x float64) int {
		c := 1 + int(math.Round(x/radius*float64(cols-2)))
		return max(1, min(cols-1, c))
	}

	for r := 0; r < rows; r++ {
		grid[r][0] = '│'
	}
	for r := row(data.GlassTop); r <= row(data.GlassBottom); r++ {
		grid[r][0] = '█'
	}
	ref := row(data.ReferenceHeight)
	for c := 1; c < cols; c += 2 {
		grid[ref][c] = '┄'
	}
	for _, p := range data.SectionPoints {
		grid[row(p.Y)][col(p.X)] = '●'
	}
	if data.BetaPoint != nil {
		grid[row(data.BetaPoint.Y)][col(data.BetaPoint.X)] = '◆'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION IN FRONT OF THE WINDOW\n")
	sb.WriteString("  ──────────────────────────────\n\n")
	for r, line := range grid {
		label := "        "
		switch r {
		case 0:
			label = fmt.Sprintf("%6.2f m", zMax)
		case rows - 1:
			label = fmt.Sprintf("%6.2f m", zMin)
		case ref:
			label = " ref    "
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", label, string(line)))
	}
	sb.WriteString(fmt.Sprintf("           0 m%s%.0f m\n", strings.Repeat(" ", cols-6), radius))
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  █ = glass   ┄ = reference height   ● = section point   ◆ = sets β\n")
	if math.IsNaN(data.Beta) {
		sb.WriteString("  β undefined\n")
	} else {
		sb.WriteString(fmt.Sprintf("  β = %.2f°\n", data.Beta))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-4-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
