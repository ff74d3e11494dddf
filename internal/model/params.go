package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/window"
)

// Parameter names looked up on windows, first match wins.
var (
	widthNames  = []string{"Breedte", "Kozijnbreedte", "Width", "Rough Width", "B"}
	heightNames = []string{"Hoogte", "Kozijnhoogte", "Height", "Rough Height", "H"}
	sillNames   = []string{"Borstwering", "Sill Height", "Onderdorpel hoogte"}

	frameTopNames    = []string{"Kozijnhout boven", "Frame Top"}
	frameBottomNames = []string{"Kozijnhout onder", "Frame Bottom"}
	frameSideNames   = []string{"Kozijnhout zijkant", "Frame Side"}

	sideProfileNames      = []string{"Profiel zijkant"}
	topBottomProfileNames = []string{"Profiel boven/onder"}
	offsetSideNames       = []string{"Offset zijkant"}
	extraUnderNames       = []string{"Extra onder"}
	viewSillNames         = []string{"Zichtbare dorpel"}
)

const (
	paramMullionsV     = "Aantal stijlen"
	paramMullionsH     = "Aantal regels"
	paramMullionThickV = "Stijl dikte"
	paramMullionThickH = "Regel dikte"
	paramSash          = "Vleugelbreedte"
	paramColumnWeights = "Verdeling kolommen"
	paramRowWeights    = "Verdeling rijen"
	fillingPrefix      = "Vulling_"
)

const mm = 0.001

// number returns the first of names that holds a number.
func (w *WindowInstance) number(names ...string) (float64, bool) {
	for _, n := range names {
		switch v := w.Parameters[n].(type) {
		case float64:
			return v, true
		case string:
			f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
			if err == nil && !math.IsNaN(f) {
				return f, true
			}
		}
	}
	return 0, false
}

func (w *WindowInstance) length(names ...string) (float64, bool) {
	v, ok := w.number(names...)
	return v * mm, ok
}

func (w *WindowInstance) text(name string) string {
	switch v := w.Parameters[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// aluminium reports whether the window carries aluminium profile
// parameters.
func (w *WindowInstance) aluminium() bool {
	_, side := w.number(sideProfileNames...)
	_, offset := w.number(offsetSideNames...)
	return side || offset
}

// Frame resolves the window's parameters into a typed frame.
// Parameters that are required but absent are listed in Missing.
func (w *WindowInstance) Frame() window.Frame {
	var f window.Frame
	need := func(p window.Param, dst *float64, names ...string) {
		v, ok := w.length(names...)
		if !ok {
			f.Missing = append(f.Missing, p)
			return
		}
		*dst = v
	}
	optional := func(dst *float64, names ...string) {
		*dst, _ = w.length(names...)
	}

	need(window.ParamWidth, &f.Width, widthNames...)
	need(window.ParamHeight, &f.Height, heightNames...)
	need(window.ParamSill, &f.Sill, sillNames...)

	if w.aluminium() {
		f.Construction = window.Aluminium
		need(window.ParamSideProfile, &f.SideProfile, sideProfileNames...)
		need(window.ParamTopBottomProfile, &f.TopBottomProfile, topBottomProfileNames...)
		optional(&f.OffsetSide, offsetSideNames...)
		optional(&f.ExtraUnder, extraUnderNames...)
		optional(&f.ViewSill, viewSillNames...)
	} else {
		need(window.ParamFrameTop, &f.Top, frameTopNames...)
		need(window.ParamFrameBottom, &f.Bottom, frameBottomNames...)
		need(window.ParamFrameSide, &f.Side, frameSideNames...)
	}

	if n, ok := w.number(paramMullionsV); ok {
		f.MullionsV = int(math.Round(n))
	}
	if n, ok := w.number(paramMullionsH); ok {
		f.MullionsH = int(math.Round(n))
	}
	optional(&f.MullionThicknessV, paramMullionThickV)
	optional(&f.MullionThicknessH, paramMullionThickH)
	optional(&f.SashWidth, paramSash)

	f.ColumnWeights = window.ParseWeights(w.text(paramColumnWeights))
	f.RowWeights = window.ParseWeights(w.text(paramRowWeights))

	for name := range w.Parameters {
		rest, ok := strings.CutPrefix(name, fillingPrefix)
		if !ok {
			continue
		}
		var row, col int
		if _, err := fmt.Sscanf(rest, "%d_%d", &row, &col); err != nil || row < 1 || col < 1 {
			continue
		}
		if f.Fillings == nil {
			f.Fillings = make(map[window.Cell]string)
		}
		f.Fillings[window.Cell{Row: row - 1, Col: col - 1}] = w.text(name)
	}
	return f
}

// Windows returns the building's windows in file order.
func (b *Building) Windows() []window.Window {
	levels := make(map[string]float64, len(b.Levels))
	for _, l := range b.Levels {
		levels[l.Name] = l.Elevation
	}

	out := make([]window.Window, 0, len(b.WindowList))
	for i := range b.WindowList {
		wi := &b.WindowList[i]
		elevation, ok := levels[wi.Level]
		if !ok && wi.Level != "" && b.log != nil {
			b.log.WithFields(logrus.Fields{"window": wi.ID, "level": wi.Level}).
				Warn("unknown level, using elevation 0")
		}
		w := window.Window{
			ID:             wi.ID,
			Level:          wi.Level,
			LevelElevation: elevation,
			Box:            b.windowBox(wi),
			Facing:         vec(wi.Facing),
			HostWall:       wi.Host,
			Frame:          wi.Frame(),
		}
		out = append(out, w)
	}
	return out
}

// windowBox is the window's box, or an empty box when it is missing,
// incomplete or inverted.
func (b *Building) windowBox(wi *WindowInstance) geom.Box {
	var reason string
	switch {
	case wi.Min == nil || wi.Max == nil:
		reason = "window has no bounding box"
	case !box(*wi.Min, *wi.Max).Valid():
		reason = "window has an inverted bounding box"
	default:
		return box(*wi.Min, *wi.Max)
	}
	if b.log != nil {
		b.log.WithField("window", wi.ID).Warn(reason + ", geometry skipped")
	}
	return geom.EmptyBox()
}

// Window returns the window with the given id.
func (b *Building) Window(id string) (window.Window, bool) {
	for _, w := range b.Windows() {
		if w.ID == id {
			return w, true
		}
	}
	return window.Window{}, false
}

// SetParameter stores a computed value on a window. It fails for
// unknown windows and read-only parameters.
func (b *Building) SetParameter(windowID, name string, value float64) error {
	for i := range b.WindowList {
		wi := &b.WindowList[i]
		if wi.ID != windowID {
			continue
		}
		for _, ro := range wi.ReadOnly {
			if ro == name {
				return fmt.Errorf("parameter %s on window %s is read-only", name, windowID)
			}
		}
		if wi.Parameters == nil {
			wi.Parameters = make(map[string]any)
		}
		wi.Parameters[name] = value
		return nil
	}
	return fmt.Errorf("no window %s", windowID)
}
