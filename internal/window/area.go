package window

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/scene"
)

// Kind classifies a pane by its filling.
type Kind int

const (
	Fixed Kind = iota
	Operable
	Panel
)

func (k Kind) String() string {
	switch k {
	case Operable:
		return "operable"
	case Panel:
		return "panel"
	}
	return "fixed"
}

// Classify maps a free-form filling label to a pane kind. Panel
// keywords win over operable ones; anything else is fixed glass.
func (s Settings) Classify(label string) Kind {
	l := strings.ToLower(label)
	if l == "" {
		return Fixed
	}
	for _, k := range s.PanelKeywords {
		if strings.Contains(l, k) {
			return Panel
		}
	}
	for _, k := range s.OperableKeywords {
		if strings.Contains(l, k) {
			return Operable
		}
	}
	return Fixed
}

// ParseWeights parses a list of relative sizes such as "1;2;1". It
// returns nil if the list is empty or holds anything but positive
// numbers.
func ParseWeights(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || r == '|' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// distribute splits total into n parts proportional to weights, or
// equally when the weights do not describe n parts.
func distribute(total float64, n int, weights []float64) []float64 {
	parts := make([]float64, n)
	if len(weights) == n {
		var sum float64
		for _, w := range weights {
			sum += w
		}
		if sum > 0 {
			for i, w := range weights {
				parts[i] = total * w / sum
			}
			return parts
		}
	}
	for i := range parts {
		parts[i] = total / float64(n)
	}
	return parts
}

// Pane is one cell of the glazing grid after all deductions.
type Pane struct {
	Cell
	Kind          Kind
	Label         string
	Width, Height float64
}

// Area is the pane's net glazed area.
func (p Pane) Area() float64 {
	return p.Width * p.Height
}

// Glazing is the result of the area computation.
type Glazing struct {
	// Area is the net glazed area in m².
	Area measure.Value

	NetWidth, NetHeight float64

	// FloorCut is the glass height lost below the floor cutoff and
	// TopTrim the height lost to a physical obstruction at the top.
	FloorCut, TopTrim float64

	Panes []Pane
}

func (f *Frame) missingFor(required ...Param) []string {
	var missing []string
	for _, p := range required {
		if !f.Has(p) {
			missing = append(missing, string(p))
		}
	}
	return missing
}

// Area computes the net glazed area of the window. topTrim is the
// height cut off the top of the glass by obstructions (see
// TopObstruction). Windows lacking a required frame parameter get an
// undefined area instead of one computed from zero defaults.
func (s Settings) Area(w Window, topTrim float64) Glazing {
	f := &w.Frame
	required := []Param{ParamWidth, ParamHeight}
	if f.Construction == Aluminium {
		required = append(required, ParamSideProfile, ParamTopBottomProfile)
	} else {
		required = append(required, ParamFrameTop, ParamFrameBottom, ParamFrameSide)
	}
	if missing := f.missingFor(required...); len(missing) > 0 {
		return Glazing{Area: measure.NotApplicable("missing parameter: " + strings.Join(missing, ", "))}
	}
	if f.MullionsV < 0 || f.MullionsH < 0 {
		return Glazing{Area: measure.NotApplicablef("negative mullion count %d/%d", f.MullionsV, f.MullionsH)}
	}

	// The glass band runs from the same bottom edge GlassBottom reports
	// up to the top member.
	var netW, netH float64
	if f.Construction == Aluminium {
		netW = f.Width - 2*f.SideProfile - float64(f.MullionsV)*f.MullionThicknessV
		netH = f.Height - f.TopBottomProfile - s.glassAboveSill(f) - float64(f.MullionsH)*f.MullionThicknessH
	} else {
		netW = f.Width - 2*f.Side - float64(f.MullionsV)*(f.MullionThicknessV+s.MullionGap)
		netH = f.Height - f.Top - s.glassAboveSill(f) - float64(f.MullionsH)*(f.MullionThicknessH+s.MullionGap)
	}
	g := Glazing{NetWidth: netW, NetHeight: netH}
	if netW <= 0 || netH <= 0 {
		g.Area = measure.NotApplicablef("frame leaves no glass (%.0f × %.0f mm)", netW*1000, netH*1000)
		return g
	}

	cols := distribute(netW, f.MullionsV+1, f.ColumnWeights)
	rows := distribute(netH, f.MullionsH+1, f.RowWeights)

	// Glass below the floor cutoff is consumed from the bottom row
	// upwards, transoms included.
	g.FloorCut = math.Max(0, w.LevelElevation+s.FloorCutoff-s.GlassBottom(w))
	bottomCut := consume(rows, g.FloorCut, f.MullionThicknessH)

	g.TopTrim = math.Max(0, topTrim)
	topCut := reversed(consume(reversed(rows), g.TopTrim, f.MullionThicknessH))

	sash := f.SashWidth
	if sash <= 0 {
		sash = s.DefaultSashWidth
	}

	var total float64
	for r, rh := range rows {
		for c, cw := range cols {
			cell := Cell{Row: r, Col: c}
			label := f.Fillings[cell]
			p := Pane{Cell: cell, Label: label, Kind: s.Classify(label)}
			switch p.Kind {
			case Panel:
			case Operable:
				p.Width = cw - 2*sash
				p.Height = rh - math.Max(sash, bottomCut[r]) - math.Max(sash, topCut[r])
			default:
				p.Width = cw
				p.Height = rh - bottomCut[r] - topCut[r]
			}
			p.Width = math.Max(0, p.Width)
			p.Height = math.Max(0, p.Height)
			g.Panes = append(g.Panes, p)
			total += p.Area()
		}
	}
	g.Area = measure.Computed(total)
	return g
}

// consume takes amount from the given row heights in order, skipping
// over the transom between two rows, and returns what each row lost.
func consume(rows []float64, amount, transom float64) []float64 {
	lost := make([]float64, len(rows))
	for i, h := range rows {
		if amount <= 0 {
			break
		}
		lost[i] = math.Min(h, amount)
		amount -= lost[i] + transom
	}
	return lost
}

func reversed(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// TopObstruction casts rays straight up from the glass bottom at
// points spread across the window width and returns how far the
// lowest obstruction reaching into the glass band lies below top.
// Obstructions the ray starts inside of, such as the host wall, do not
// count.
func (s Settings) TopObstruction(w Window, bottom, top float64, candidates []*scene.Obstruction) float64 {
	n := s.TopScanSamples
	if n <= 0 || len(candidates) == 0 {
		return 0
	}
	facing, ok := geom.Horizontal(w.Facing)
	if !ok {
		return 0
	}
	run := r3.Unit(r3.Cross(geom.Up, facing))
	size := w.Box.Size()
	half := math.Abs(r3.Dot(size, run)) / 2
	center := w.Box.Center()

	lowest := top
	for i := 0; i < n; i++ {
		off := -half + (float64(i)+0.5)/float64(n)*2*half
		p := r3.Add(center, r3.Scale(off, run))
		for _, o := range candidates {
			if o.ID == w.HostWall || !o.Box.ContainsXY(p) {
				continue
			}
			z := o.Box.Min.Z
			if z > bottom && z < lowest {
				lowest = z
			}
		}
	}
	return top - lowest
}

// Describe summarises the grid, e.g. "2×3 panes, 1 operable, 1 panel".
func (g Glazing) Describe() string {
	var op, pn int
	rows, cols := 0, 0
	for _, p := range g.Panes {
		rows = max(rows, p.Row+1)
		cols = max(cols, p.Col+1)
		switch p.Kind {
		case Operable:
			op++
		case Panel:
			pn++
		}
	}
	return fmt.Sprintf("%d×%d panes, %d operable, %d panel", rows, cols, op, pn)
}
