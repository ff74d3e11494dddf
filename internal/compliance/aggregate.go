package compliance

import (
	"github.com/paulmach/orb"

	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/nen"
)

// Options tune the aggregation.
type Options struct {
	// NoOverhangBeta is the β used for the Cb lookup when a window has
	// no overhang.
	NoOverhangBeta float64
}

// WindowCompliance is the Cb and equivalent daylight area of one
// window.
type WindowCompliance struct {
	WindowID string

	// Area names the habitable area the window was assigned to, empty
	// when none contains it.
	Area string

	Alpha measure.Value
	Beta  measure.Value

	// BetaUsed is the β the table was read at; BetaAssumed is set when
	// that is the no-overhang fallback.
	BetaUsed    float64
	BetaAssumed bool

	Cb measure.Value
	Ad measure.Value
	Ae measure.Value
}

// Status of a habitable area.
const (
	Compliant    = "compliant"
	NonCompliant = "non-compliant"
)

// AreaCompliance is the check of one habitable area.
type AreaCompliance struct {
	Name  string
	Level string
	Area  float64

	AeSum float64

	// Ratio is ΣAe per m² floor area, Cbi is ΣAe over the required Ae.
	Ratio      float64
	RequiredAe float64
	Cbi        float64
	Compliant  bool

	Deficit          float64
	MaxCompliantArea float64
	AreaReduction    float64

	WindowIDs []string
}

// Status is Compliant or NonCompliant.
func (a AreaCompliance) Status() string {
	if a.Compliant {
		return Compliant
	}
	return NonCompliant
}

// Result is the outcome of Aggregate.
type Result struct {
	Windows []WindowCompliance
	Areas   []AreaCompliance

	// Unassigned lists windows outside every habitable area.
	Unassigned []string
}

// WindowCb computes Cb, Ad and Ae for one window result.
func WindowCb(r *daylight.WindowResult, opts Options) WindowCompliance {
	wc := WindowCompliance{
		WindowID: r.WindowID,
		Alpha:    r.Alpha,
		Beta:     r.Beta,
		Ad:       r.GlazingArea(),
	}
	alpha, ok := r.Alpha.Get()
	if !ok {
		wc.Cb = measure.NotApplicable("alpha undefined: " + r.Alpha.Reason())
		wc.Ae = wc.Cb
		return wc
	}
	beta, ok := r.Beta.Get()
	if !ok {
		beta = opts.NoOverhangBeta
		wc.BetaAssumed = true
	}
	wc.BetaUsed = beta
	cb := nen.Cb(alpha, beta)
	wc.Cb = measure.Computed(cb)
	if ad, ok := wc.Ad.Get(); ok {
		wc.Ae = measure.Computed(ad * cb)
	} else {
		wc.Ae = measure.NotApplicable("glazing area undefined: " + wc.Ad.Reason())
	}
	return wc
}

// Aggregate assigns each window to the first habitable area whose
// loops contain its center and sums Ae per area. Windows with an
// undefined Ae are assigned but add nothing. Areas keep their input
// order.
func Aggregate(results []*daylight.WindowResult, areas []HabitableArea, opts Options) Result {
	out := Result{
		Windows: make([]WindowCompliance, 0, len(results)),
		Areas:   make([]AreaCompliance, len(areas)),
	}
	for i, a := range areas {
		out.Areas[i] = AreaCompliance{Name: a.Name, Level: a.Level, Area: a.PlanArea()}
	}

	for _, r := range results {
		wc := WindowCb(r, opts)
		if i := assign(r, areas); i >= 0 {
			ac := &out.Areas[i]
			wc.Area = ac.Name
			ac.WindowIDs = append(ac.WindowIDs, r.WindowID)
			ac.AeSum += wc.Ae.Or(0)
		} else {
			out.Unassigned = append(out.Unassigned, r.WindowID)
		}
		out.Windows = append(out.Windows, wc)
	}

	for i := range out.Areas {
		finish(&out.Areas[i])
	}
	return out
}

func assign(r *daylight.WindowResult, areas []HabitableArea) int {
	if !r.Located {
		return -1
	}
	p := orb.Point{r.Center.X, r.Center.Y}
	for i, a := range areas {
		if a.Level != "" && r.Level != "" && a.Level != r.Level {
			continue
		}
		if a.Contains(p) {
			return i
		}
	}
	return -1
}

func finish(a *AreaCompliance) {
	if a.Area > 0 {
		a.Ratio = a.AeSum / a.Area
	}
	a.RequiredAe = nen.RequiredDaylightArea(a.Area)
	a.Cbi = nen.ComplianceRatio(a.AeSum, a.Area)
	a.Compliant = a.Cbi >= 1
	a.Deficit = nen.Deficit(a.AeSum, a.Area)
	a.MaxCompliantArea = nen.MaxCompliantArea(a.AeSum)
	a.AreaReduction = nen.AreaReduction(a.AeSum, a.Area)
}
