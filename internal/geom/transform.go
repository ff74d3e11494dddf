package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rigid placement: a rotation given by its basis vectors
// followed by a translation. It places linked models in the host frame.
type Transform struct {
	BasisX, BasisY, BasisZ r3.Vec
	Origin                 r3.Vec
}

// Identity is the transform of elements of the host model itself.
func Identity() Transform {
	return Transform{
		BasisX: r3.Vec{X: 1},
		BasisY: r3.Vec{Y: 1},
		BasisZ: r3.Vec{Z: 1},
	}
}

// Placement returns a rotation of deg degrees about the Z axis followed
// by a translation.
func Placement(translation r3.Vec, deg float64) Transform {
	rad := deg * math.Pi / 180
	s, c := math.Sincos(rad)
	return Transform{
		BasisX: r3.Vec{X: c, Y: s},
		BasisY: r3.Vec{X: -s, Y: c},
		BasisZ: r3.Vec{Z: 1},
		Origin: translation,
	}
}

// IsIdentity reports whether t leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Apply maps a point from the transform's local frame into the parent
// frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(t.Origin, t.ApplyVector(p))
}

// ApplyVector rotates a direction without translating it.
func (t Transform) ApplyVector(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, t.BasisX), r3.Scale(v.Y, t.BasisY)), r3.Scale(v.Z, t.BasisZ))
}

// Then returns the transform that applies t and then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		BasisX: u.ApplyVector(t.BasisX),
		BasisY: u.ApplyVector(t.BasisY),
		BasisZ: u.ApplyVector(t.BasisZ),
		Origin: u.Apply(t.Origin),
	}
}
