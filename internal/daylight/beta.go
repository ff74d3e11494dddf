package daylight

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/scene"
	"github.com/bouwcheck/daglicht/internal/window"
)

// Beta is the outcome of the overhang search for one window.
type Beta struct {
	Value  measure.Value // degrees
	Rad    measure.Value
	Reason string
	Source string
	Point  *r3.Vec

	Section []SectionPoint

	// GlassTop is the top of glass after lowering it to the lowest
	// obstruction inside the glass band.
	GlassTop float64

	EdgeTests int
	Exhausted bool
}

// ComputeBeta intersects the edges of nearby obstructions with the
// vertical plane through origin along dir, and returns the largest
// angle between the vertical and the line from the glass midpoint to
// a point above it and in front of the facade.
//
// Only obstructions reaching above the glass midpoint and starting
// above the glass bottom take part; walls standing on the ground in
// front of the window are α's business.
func (c *Calculator) ComputeBeta(w window.Window, origin, dir r3.Vec, bottom, top float64) Beta {
	out := Beta{GlassTop: top}
	ref := origin
	ref.Z = (bottom + top) / 2
	plane, ok := geom.VerticalPlane(ref, dir)
	if !ok {
		out.Value = measure.NotApplicable("facing has no horizontal component")
		out.Rad = out.Value
		return out
	}

	radius := c.cfg.SearchRadius
	mid := ref.Z
	candidates := c.scene.Near(ref, radius, func(o *scene.Obstruction) bool {
		if w.HostWall != "" && o.ID == w.HostWall {
			return false
		}
		return o.Box.Max.Z > mid && o.Box.Min.Z > bottom+planeTolerance
	})

	type hit struct {
		p  r3.Vec
		o  *scene.Obstruction
		fw float64
	}
	var hits []hit
search:
	for _, o := range candidates {
		if !plane.Straddles(o.Mesh.Verts) {
			continue
		}
		for _, e := range o.Mesh.Edges {
			if c.cfg.EdgeBudget > 0 && out.EdgeTests >= c.cfg.EdgeBudget {
				out.Exhausted = true
				break search
			}
			out.EdgeTests++
			for _, p := range plane.IntersectSegment(o.Mesh.Verts[e[0]], o.Mesh.Verts[e[1]]) {
				fw := r3.Dot(r3.Sub(p, ref), dir)
				if fw > planeTolerance && fw <= radius {
					hits = append(hits, hit{p: p, o: o, fw: fw})
				}
			}
		}
	}
	if out.Exhausted {
		c.log.WithFields(logrus.Fields{"window": w.ID, "budget": c.cfg.EdgeBudget}).
			Warn("edge-test budget exhausted, overhang search incomplete")
	}

	// Lower the top of glass to anything protruding into the band.
	refined := top
	for _, h := range hits {
		if h.p.Z > bottom && h.p.Z < top && h.p.Z < refined {
			refined = h.p.Z
		}
	}
	out.GlassTop = refined
	mid = (bottom + refined) / 2

	best := -1.0
	var bestHit hit
	out.Section = make([]SectionPoint, 0, len(hits))
	for _, h := range hits {
		height := h.p.Z - mid
		out.Section = append(out.Section, SectionPoint{Point: h.p, Forward: h.fw, Height: height, ObstacleID: h.o.ID})
		if height <= 0 {
			continue
		}
		if a := math.Atan2(h.fw, height); a > best {
			best, bestHit = a, h
		}
	}

	if best < 0 {
		reason := fmt.Sprintf("no obstruction found within cross-section / %gm", radius)
		if out.Exhausted {
			reason += " (search incomplete)"
		}
		out.Value = measure.NotApplicable(reason)
		out.Rad = out.Value
		out.Reason = reason
		return out
	}

	p := bestHit.p
	out.Point = &p
	out.Value = measure.Computed(best * rad2deg)
	out.Rad = measure.Computed(best)
	out.Source = "wall"
	if bestHit.o.Category != scene.Wall {
		out.Source = bestHit.o.Category.String()
	}
	out.Reason = fmt.Sprintf("%s %.2f m in front, %.2f m above glass midpoint",
		bestHit.o.Label(), bestHit.fw, p.Z-mid)
	return out
}

// planeTolerance separates points on the facade from points in front.
const planeTolerance = 1e-6
