package daylight

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/window"
)

// RayResult is one sample of the α fan.
type RayResult struct {
	// Offset from the sight direction in degrees.
	Offset float64

	// Alpha is the obstruction angle of this ray, floored at the
	// minimum.
	Alpha float64

	// Distance is the hit's distance measured along the sight axis.
	Distance measure.Value

	ObstacleID string

	// From and To span the ray for visualisation: from the cast origin
	// to the hit, or to the search radius on a miss.
	From, To r3.Vec
}

// Hit reports whether the ray met an obstruction.
func (r RayResult) Hit() bool {
	return r.ObstacleID != ""
}

// SectionPoint is a point where an obstruction's edges cross the
// vertical section plane.
type SectionPoint struct {
	Point r3.Vec

	// Forward is the distance along the sight direction from the
	// facade, Height the height above the glass midpoint.
	Forward, Height float64

	ObstacleID string
}

// WindowResult is everything computed for one window. It is not
// modified once the calculator returns it.
type WindowResult struct {
	WindowID string
	Level    string

	// Center of the window's bounding box, used for area assignment.
	// Located is false for windows without a box.
	Center  r3.Vec
	Located bool

	// Origin is the cast origin at the facade, at reference height.
	// Direction is the horizontal sight direction.
	Origin    r3.Vec
	Direction r3.Vec

	ReferenceHeight       float64
	GlassBottom, GlassTop float64

	// Alpha is the average obstruction angle over the fan in degrees.
	Alpha measure.Value

	// AlphaFan is the fan average before the overhang rule; Alpha
	// differs from it only when AlphaAdjusted.
	AlphaFan      float64
	AlphaAdjusted bool
	AlphaNote     string

	// Beta is the overhang angle in degrees and BetaRad in radians.
	// When undefined the reason says why.
	Beta    measure.Value
	BetaRad measure.Value

	// BetaReason describes the obstruction that set β, BetaSource
	// classifies it ("wall" or a category name) and BetaPoint is where
	// it was found.
	BetaReason string
	BetaSource string
	BetaPoint  *r3.Vec

	// Section holds every candidate point of the β search.
	Section []SectionPoint

	// EdgeTests counts edge/plane tests; BudgetExhausted is set when
	// the search stopped early.
	EdgeTests       int
	BudgetExhausted bool

	Glazing window.Glazing

	Rays []RayResult
}

// GlazingArea is the net glazed area Ad in m².
func (r *WindowResult) GlazingArea() measure.Value {
	return r.Glazing.Area
}
