package window

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/scene"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// woodWindow is a 1000×1500 mm wood window with 60 mm members, facing
// -Y, in a level at the given elevation.
func woodWindow(level, sill float64) Window {
	return Window{
		ID:             "K1",
		LevelElevation: level,
		Box: geom.Box{
			Min: r3.Vec{X: -0.5, Y: -0.1, Z: level + sill},
			Max: r3.Vec{X: 0.5, Y: 0, Z: level + sill + 1.5},
		},
		Facing: r3.Vec{Y: -1},
		Frame: Frame{
			Construction: Wood,
			Width:        1.0,
			Height:       1.5,
			Sill:         sill,
			Top:          0.06,
			Bottom:       0.06,
			Side:         0.06,
		},
	}
}

func TestReferenceHeight(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		name  string
		w     Window
		want  float64
		frame func(*Frame)
	}{
		{name: "wood above cutoff", w: woodWindow(0, 0.9), want: 0.977},
		{name: "wood below cutoff", w: woodWindow(3, 0.1), want: 3.6},
		{name: "aluminium", w: woodWindow(0, 0.9), want: 0.9 - 0.02 + 0.03 + 0.01, frame: func(f *Frame) {
			f.Construction = Aluminium
			f.OffsetSide, f.ExtraUnder, f.ViewSill = 0.02, 0.03, 0.01
		}},
		{name: "missing bottom member", w: woodWindow(0, 0.9), want: 0.9 + 0.06 + 0.017, frame: func(f *Frame) {
			f.Bottom = 0
			f.Missing = []Param{ParamFrameBottom}
		}},
		{name: "missing sill uses box", w: woodWindow(0, 1.2), want: 1.2 + 0.077, frame: func(f *Frame) {
			f.Sill = 0
			f.Missing = []Param{ParamSill}
		}},
	}
	for _, tt := range tests {
		if tt.frame != nil {
			tt.frame(&tt.w.Frame)
		}
		if got := s.ReferenceHeight(tt.w); !approx(got, tt.want) {
			t.Errorf("%s: ReferenceHeight = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGlassBounds(t *testing.T) {
	s := DefaultSettings()
	bottom, top := s.GlassBounds(woodWindow(0, 0.9))
	if !approx(bottom, 0.977) || !approx(top, 0.9+1.5-0.06) {
		t.Errorf("GlassBounds = %v, %v", bottom, top)
	}

	// A low window whose glass ends below the cutoff falls back to its
	// bounding box.
	w := woodWindow(0, 0)
	w.Frame.Height = 0.5
	w.Box.Max.Z = 0.5
	bottom, top = s.GlassBounds(w)
	if bottom != 0 || top != 0.5 {
		t.Errorf("degenerate GlassBounds = %v, %v; want box 0, 0.5", bottom, top)
	}
}

func TestAreaBaseline(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 1.0)
	w.Frame = Frame{Construction: Aluminium, Width: 1.2, Height: 1.4, Sill: 1.0}
	g := s.Area(w, 0)
	if got, ok := g.Area.Get(); !ok || !approx(got, 1.2*1.4) {
		t.Errorf("frameless area = %v, want %v", g.Area, 1.2*1.4)
	}
}

func TestAreaAluminiumGlassBand(t *testing.T) {
	s := DefaultSettings()
	for _, sill := range []float64{0.9, 0.3} {
		w := woodWindow(0, sill)
		w.Frame = Frame{
			Construction: Aluminium, Width: 1.0, Height: 1.5, Sill: sill,
			SideProfile: 0.05, TopBottomProfile: 0.05,
			OffsetSide: 0.02, ExtraUnder: 0.03, ViewSill: 0.01,
		}
		g := s.Area(w, 0)

		// The grid spans exactly the band between GlassBottom and the
		// top member, so the floor cut is measured on the same edge.
		band := s.glassTop(w) - s.GlassBottom(w)
		if !approx(g.NetHeight, band) {
			t.Errorf("sill %v: net height %v, glass band %v", sill, g.NetHeight, band)
		}
		want := (1.0 - 0.1) * (band - g.FloorCut)
		if got, ok := g.Area.Get(); !ok || !approx(got, want) {
			t.Errorf("sill %v: area %v, want %v", sill, g.Area, want)
		}
	}
}

func TestBoundsWithoutBox(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.9)
	w.Box = geom.EmptyBox()
	w.Frame.Sill = 0
	w.Frame.Missing = []Param{ParamSill, ParamHeight}

	bottom, top := s.GlassBounds(w)
	for _, v := range []float64{bottom, top, s.ReferenceHeight(w), s.GlassBottom(w)} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("bounds without a box: bottom %v, top %v", bottom, top)
		}
	}
	if top < bottom {
		t.Errorf("GlassBounds = %v, %v", bottom, top)
	}
}

func TestAreaWoodFrame(t *testing.T) {
	s := DefaultSettings()
	g := s.Area(woodWindow(0, 0.9), 0)
	want := (1.0 - 0.12) * (1.5 - 0.12 - 0.017)
	if got, ok := g.Area.Get(); !ok || !approx(got, want) {
		t.Errorf("area = %v, want %v", g.Area, want)
	}
	if len(g.Panes) != 1 {
		t.Errorf("got %d panes, want 1", len(g.Panes))
	}
}

func TestAreaMullionsAndWeights(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.9)
	w.Frame.MullionsV = 2
	w.Frame.MullionThicknessV = 0.05
	w.Frame.ColumnWeights = []float64{1, 2, 1}
	w.Frame.Fillings = map[Cell]string{{Row: 0, Col: 1}: "Paneel"}
	g := s.Area(w, 0)

	netW := 1.0 - 0.12 - 2*(0.05+0.004)
	netH := 1.5 - 0.12 - 0.017
	if !approx(g.NetWidth, netW) || !approx(g.NetHeight, netH) {
		t.Fatalf("net = %v × %v, want %v × %v", g.NetWidth, g.NetHeight, netW, netH)
	}
	// The panel is the middle column, half of the net width.
	want := netW / 2 * netH
	if got, _ := g.Area.Get(); !approx(got, want) {
		t.Errorf("area = %v, want %v", got, want)
	}
	if g.Panes[1].Kind != Panel || g.Panes[1].Area() != 0 {
		t.Errorf("middle pane = %+v, want empty panel", g.Panes[1])
	}
}

func TestAreaOperableMonotonic(t *testing.T) {
	s := DefaultSettings()
	prev := math.Inf(1)
	for sash := 0.0; sash <= 0.5; sash += 0.02 {
		w := woodWindow(0, 0.9)
		w.Frame.MullionsV = 1
		w.Frame.MullionThicknessV = 0.05
		w.Frame.SashWidth = sash
		if sash == 0 {
			w.Frame.SashWidth = 1e-9
		}
		w.Frame.Fillings = map[Cell]string{{Row: 0, Col: 0}: "draai/kiep", {Row: 0, Col: 1}: "Draaiend"}
		got, ok := s.Area(w, 0).Area.Get()
		if !ok {
			t.Fatalf("sash %v: area undefined", sash)
		}
		if got < 0 {
			t.Fatalf("sash %v: negative area %v", sash, got)
		}
		if got > prev+1e-12 {
			t.Fatalf("sash %v: area %v grew from %v", sash, got, prev)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("very wide sash should leave no glass, got %v", prev)
	}
}

func TestAreaFloorCut(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.1)
	w.Frame.MullionsH = 1
	w.Frame.MullionThicknessH = 0.05
	g := s.Area(w, 0)

	cut := 0.6 - (0.1 + 0.06 + 0.017)
	if !approx(g.FloorCut, cut) {
		t.Fatalf("FloorCut = %v, want %v", g.FloorCut, cut)
	}
	netW := 0.88
	netH := 1.5 - 0.12 - 0.017 - (0.05 + 0.004)
	want := netW * (netH - cut)
	if got, _ := g.Area.Get(); !approx(got, want) {
		t.Errorf("area = %v, want %v", got, want)
	}

	// An operable bottom pane loses the larger of its sash and the cut.
	w.Frame.Fillings = map[Cell]string{{Row: 0, Col: 0}: "kiepraam"}
	w.Frame.SashWidth = 0.07
	g = s.Area(w, 0)
	bottomRow := netH/2 - cut - 0.07
	topRow := netH / 2
	want = (netW-0.14)*bottomRow + netW*topRow
	if got, _ := g.Area.Get(); !approx(got, want) {
		t.Errorf("operable area = %v, want %v", got, want)
	}
}

func TestAreaTopTrim(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.9)
	w.Frame.MullionsH = 1
	full, _ := s.Area(w, 0).Area.Get()
	trimmed, _ := s.Area(w, 0.2).Area.Get()
	if !approx(full-trimmed, 0.88*0.2) {
		t.Errorf("trim of 0.2 removed %v, want %v", full-trimmed, 0.88*0.2)
	}
}

func TestAreaMissingParameters(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.9)
	w.Frame.Missing = []Param{ParamWidth, ParamFrameSide}
	g := s.Area(w, 0)
	if g.Area.Defined() {
		t.Fatalf("area defined despite missing parameters: %v", g.Area)
	}
	if g.Area.Reason() != "missing parameter: width, frame side" {
		t.Errorf("reason = %q", g.Area.Reason())
	}

	w = woodWindow(0, 0.9)
	w.Frame.Side = 0.6
	if s.Area(w, 0).Area.Defined() {
		t.Error("frame wider than the window produced an area")
	}
}

func TestTopObstruction(t *testing.T) {
	s := DefaultSettings()
	w := woodWindow(0, 0.9)
	w.HostWall = "host"
	bottom, top := s.GlassBounds(w)
	obs := []*scene.Obstruction{
		{ID: "host", Category: scene.Wall, Box: geom.Box{Min: r3.Vec{X: -3, Y: -0.2, Z: 1.5}, Max: r3.Vec{X: 3, Y: 0.1, Z: 3}}},
		{ID: "beam", Category: scene.StructuralFraming, Box: geom.Box{Min: r3.Vec{X: -1, Y: -0.15, Z: 2.1}, Max: r3.Vec{X: 1, Y: 0.05, Z: 2.5}}},
		{ID: "far", Category: scene.Floor, Box: geom.Box{Min: r3.Vec{X: 5, Y: 5, Z: 1.2}, Max: r3.Vec{X: 6, Y: 6, Z: 1.4}}},
	}
	if got := s.TopObstruction(w, bottom, top, obs); !approx(got, top-2.1) {
		t.Errorf("TopObstruction = %v, want %v", got, top-2.1)
	}
	if got := s.TopObstruction(w, bottom, top, nil); got != 0 {
		t.Errorf("TopObstruction without candidates = %v", got)
	}
}

func TestParseWeights(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1;2;1", []float64{1, 2, 1}},
		{" 30 , 70 ", []float64{30, 70}},
		{"", nil},
		{"1;x", nil},
		{"1;0", nil},
	}
	for _, tt := range tests {
		got := ParseWeights(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeights(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeights(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
	if got := distribute(1, 3, []float64{1, 1}); !approx(got[0], 1.0/3) {
		t.Errorf("mismatched weights should split equally, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	s := DefaultSettings()
	tests := map[string]Kind{
		"":                Fixed,
		"HR++ glas":       Fixed,
		"Draai-kiep":      Operable,
		"Paneel dicht":    Panel,
		"valraam":         Operable,
		"Sandwichpaneel":  Panel,
		"Operable (vent)": Operable,
	}
	for label, want := range tests {
		if got := s.Classify(label); got != want {
			t.Errorf("Classify(%q) = %v, want %v", label, got, want)
		}
	}
}
