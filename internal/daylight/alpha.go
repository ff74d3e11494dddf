package daylight

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/scene"
	"github.com/bouwcheck/daglicht/internal/window"
)

// ComputeAlpha casts the horizontal fan from origin around dir against
// the plan footprints of nearby walls and returns the average
// obstruction angle with the per-ray samples. origin.Z is the
// reference height the angles are measured from.
//
// Each hit is measured along the sight axis, not along the ray, and
// the angle is floored at the code minimum. Rays that hit nothing
// within the search radius count as the minimum.
func (c *Calculator) ComputeAlpha(w window.Window, origin, dir r3.Vec) (float64, []RayResult) {
	radius := c.cfg.SearchRadius
	walls := c.scene.NearXY(origin, radius, func(o *scene.Obstruction) bool {
		return o.Category == scene.Wall && !c.hostAssembly(o, w, dir)
	})

	offsets := c.cfg.FanOffsets()
	rays := make([]RayResult, len(offsets))
	var sum float64
	for i, off := range offsets {
		rd := geom.RotateZ(dir, off)
		rays[i] = c.castRay(origin, dir, rd, off, walls)
		sum += rays[i].Alpha
	}
	return sum / float64(len(rays)), rays
}

func (c *Calculator) castRay(origin, axis, rd r3.Vec, off float64, walls []*scene.Obstruction) RayResult {
	radius := c.cfg.SearchRadius
	r := RayResult{
		Offset:   off,
		Alpha:    c.cfg.AlphaMin,
		Distance: measure.NotApplicable("no obstruction within search radius"),
		From:     origin,
		To:       r3.Add(origin, r3.Scale(radius, rd)),
	}

	ray := geom.PlanRay(origin, rd)
	best := math.Inf(1)
	var hit *scene.Obstruction
	for _, o := range walls {
		t, ok := ray.IntersectBox(o.Box)
		if ok && t <= radius && t < best {
			best, hit = t, o
		}
	}
	if hit == nil {
		return r
	}

	p := r3.Add(origin, r3.Scale(best, rd))
	r.ObstacleID = hit.ID
	r.To = p
	d := r3.Dot(r3.Sub(p, origin), axis)
	dz := hit.Box.Max.Z - origin.Z
	if d <= 0 {
		r.Distance = measure.NotApplicable("obstruction lies behind the facade")
		return r
	}
	r.Distance = measure.Computed(d)
	if dz <= 0 {
		return r
	}
	a := math.Atan(dz/d) * rad2deg
	if !math.IsNaN(a) {
		r.Alpha = math.Max(c.cfg.AlphaMin, a)
	}
	return r
}

// overhangAxisTolerance is how far β's obstruction point may sit beside
// the sight axis and still take part in the overhang rule.
const overhangAxisTolerance = 0.01

// applyOverhangRule lowers α to the angle of β's obstruction point when
// that point, seen from α's reference point, lies below the fan's
// average sight line: the overhang then hides whatever the fan hit.
func (c *Calculator) applyOverhangRule(res *WindowResult) {
	if res.BetaPoint == nil {
		return
	}
	rel := r3.Sub(*res.BetaPoint, res.Origin)
	side := r3.Unit(r3.Cross(res.Direction, geom.Up))
	if math.Abs(r3.Dot(rel, side)) > overhangAxisTolerance {
		return
	}
	d := r3.Dot(rel, res.Direction)
	dz := rel.Z
	if d <= 0 || dz <= 0 {
		return
	}
	a := math.Atan(dz/d) * rad2deg
	adjusted := math.Max(c.cfg.AlphaMin, a)
	if adjusted >= res.AlphaFan {
		return
	}
	res.Alpha = measure.Computed(adjusted)
	res.AlphaAdjusted = true
	res.AlphaNote = "limited by overhang (" + res.BetaSource + ")"
}
