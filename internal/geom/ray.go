package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ray2 is a plan ray. Dir must be normalised.
type Ray2 struct {
	Origin r2.Vec
	Dir    r2.Vec
}

// PlanRay projects a 3D origin and direction onto the XY plane.
func PlanRay(origin, dir r3.Vec) Ray2 {
	return Ray2{
		Origin: r2.Vec{X: origin.X, Y: origin.Y},
		Dir:    r2.Unit(r2.Vec{X: dir.X, Y: dir.Y}),
	}
}

// IntersectBox clips the ray against the plan footprint of b using the
// slab method. It returns the entry distance of the first crossing in
// front of the origin. Rays starting inside the box report no hit.
func (r Ray2) IntersectBox(b Box) (t float64, ok bool) {
	const epsilon = 1e-9
	tmin, tmax := math.Inf(-1), math.Inf(1)
	slabs := [2]struct{ o, d, lo, hi float64 }{
		{r.Origin.X, r.Dir.X, b.Min.X, b.Max.X},
		{r.Origin.Y, r.Dir.Y, b.Min.Y, b.Max.Y},
	}
	for _, s := range slabs {
		if math.Abs(s.d) < epsilon {
			// Parallel to the slab: miss unless the origin lies between
			// its planes.
			if s.o < s.lo || s.o > s.hi {
				return 0, false
			}
			continue
		}
		t1 := (s.lo - s.o) / s.d
		t2 := (s.hi - s.o) / s.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < epsilon {
		return 0, false
	}
	return tmin, true
}

// Along returns the point at distance t.
func (r Ray2) Along(t float64) r2.Vec {
	return r2.Add(r.Origin, r2.Scale(t, r.Dir))
}
