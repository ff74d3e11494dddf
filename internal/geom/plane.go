package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// planeEpsilon is the distance under which a point is considered to lie
// on a plane.
const planeEpsilon = 1e-9

// Plane is given by a point on it and a unit normal.
type Plane struct {
	Origin r3.Vec
	Normal r3.Vec
}

// VerticalPlane returns the vertical plane containing origin and the
// horizontal direction dir. ok is false if dir has no horizontal
// component.
func VerticalPlane(origin, dir r3.Vec) (p Plane, ok bool) {
	n := r3.Cross(dir, Up)
	if r3.Norm(n) < 1e-12 {
		return Plane{}, false
	}
	return Plane{Origin: origin, Normal: r3.Unit(n)}, true
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(v r3.Vec) float64 {
	return r3.Dot(r3.Sub(v, p.Origin), p.Normal)
}

// Straddles reports whether the points lie on both sides of the plane,
// or touch it.
func (p Plane) Straddles(pts []r3.Vec) bool {
	var pos, neg bool
	for _, v := range pts {
		d := p.SignedDistance(v)
		switch {
		case d > planeEpsilon:
			pos = true
		case d < -planeEpsilon:
			neg = true
		default:
			return true
		}
		if pos && neg {
			return true
		}
	}
	return false
}

// IntersectSegment returns the points where segment ab meets the plane.
// A segment lying in the plane yields both end points; a segment
// touching it with one end yields that end.
func (p Plane) IntersectSegment(a, b r3.Vec) []r3.Vec {
	da, db := p.SignedDistance(a), p.SignedDistance(b)
	onA, onB := math.Abs(da) <= planeEpsilon, math.Abs(db) <= planeEpsilon
	switch {
	case onA && onB:
		return []r3.Vec{a, b}
	case onA:
		return []r3.Vec{a}
	case onB:
		return []r3.Vec{b}
	case (da > 0) == (db > 0):
		return nil
	}
	t := da / (da - db)
	return []r3.Vec{r3.Add(a, r3.Scale(t, r3.Sub(b, a)))}
}

// Horizontal returns v with its Z component removed, normalised. ok is
// false if v is vertical or zero.
func Horizontal(v r3.Vec) (h r3.Vec, ok bool) {
	v.Z = 0
	if r3.Norm(v) < 1e-12 {
		return r3.Vec{}, false
	}
	return r3.Unit(v), true
}

// RotateZ rotates v by deg degrees about the Z axis.
func RotateZ(v r3.Vec, deg float64) r3.Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return r3.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}
