// Package geom provides the small amount of 3D and plan geometry the
// daylight engine needs on top of gonum's r3 and r2 vectors.
//
// The coordinate system is the host model's:
//
//	Z/up
//	|  Y
//	| /
//	|/____ X
//
// All lengths are in metres.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Up is the world up vector.
var Up = r3.Vec{Z: 1}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// EmptyBox returns a box that any point grows.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoxOf returns the smallest box containing pts.
func BoxOf(pts ...r3.Vec) Box {
	b := EmptyBox()
	for _, p := range pts {
		b = b.Grow(p)
	}
	return b
}

// Valid reports whether the box is finite and not inverted.
func (b Box) Valid() bool {
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Grow returns the box extended to contain p.
func (b Box) Grow(p r3.Vec) Box {
	return Box{
		Min: r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size returns the extents along each axis.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Corners returns the eight corners. Bit 0 of the index selects X,
// bit 1 Y and bit 2 Z (0 = Min, 1 = Max).
func (b Box) Corners() [8]r3.Vec {
	var c [8]r3.Vec
	for i := range c {
		p := b.Min
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		c[i] = p
	}
	return c
}

// Transform returns the axis-aligned box around the transformed corners.
func (b Box) Transform(t Transform) Box {
	if t.IsIdentity() {
		return b
	}
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.Grow(t.Apply(c))
	}
	return out
}

// Distance returns the Euclidean distance from p to the box, 0 if p is
// inside.
func (b Box) Distance(p r3.Vec) float64 {
	d := r3.Vec{
		X: axisGap(p.X, b.Min.X, b.Max.X),
		Y: axisGap(p.Y, b.Min.Y, b.Max.Y),
		Z: axisGap(p.Z, b.Min.Z, b.Max.Z),
	}
	return r3.Norm(d)
}

// DistanceXY is Distance in plan, ignoring Z.
func (b Box) DistanceXY(p r3.Vec) float64 {
	return math.Hypot(axisGap(p.X, b.Min.X, b.Max.X), axisGap(p.Y, b.Min.Y, b.Max.Y))
}

// BoxDistance returns the gap between two boxes, 0 if they overlap.
func (b Box) BoxDistance(o Box) float64 {
	gx := math.Max(0, math.Max(o.Min.X-b.Max.X, b.Min.X-o.Max.X))
	gy := math.Max(0, math.Max(o.Min.Y-b.Max.Y, b.Min.Y-o.Max.Y))
	gz := math.Max(0, math.Max(o.Min.Z-b.Max.Z, b.Min.Z-o.Max.Z))
	return math.Sqrt(gx*gx + gy*gy + gz*gz)
}

// ContainsXY reports whether p lies inside the box in plan.
func (b Box) ContainsXY(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float64) Box {
	v := r3.Vec{X: d, Y: d, Z: d}
	return Box{Min: r3.Sub(b.Min, v), Max: r3.Add(b.Max, v)}
}

// RunDirection returns the horizontal axis along which the box is
// longest. For a wall this is the direction the wall runs in.
func (b Box) RunDirection() r3.Vec {
	s := b.Size()
	if s.X >= s.Y {
		return r3.Vec{X: 1}
	}
	return r3.Vec{Y: 1}
}

func axisGap(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}
