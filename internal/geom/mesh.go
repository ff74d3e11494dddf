package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is the edge skeleton of a solid: its corner points and the edges
// between them. Only edges are kept; the silhouette search never needs
// faces.
type Mesh struct {
	Verts []r3.Vec
	Edges [][2]int
}

// MeshFromTriangles builds the unique edge set of a triangulated
// surface.
func MeshFromTriangles(verts []r3.Vec, tris [][3]int) Mesh {
	m := Mesh{Verts: verts}
	seen := make(map[[2]int]bool)
	for _, tri := range tris {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a < 0 || b < 0 || a >= len(verts) || b >= len(verts) || a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			m.Edges = append(m.Edges, key)
		}
	}
	return m
}

// boxEdges lists the 12 edges of a box in the corner numbering of
// Box.Corners.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// BoxMesh is the fallback skeleton for elements without solid geometry.
func BoxMesh(b Box) Mesh {
	c := b.Corners()
	m := Mesh{Verts: c[:], Edges: make([][2]int, len(boxEdges))}
	copy(m.Edges, boxEdges[:])
	return m
}

// Empty reports whether the mesh has no edges.
func (m Mesh) Empty() bool {
	return len(m.Edges) == 0
}

// Transform returns a copy of the mesh placed by t.
func (m Mesh) Transform(t Transform) Mesh {
	if t.IsIdentity() {
		return m
	}
	out := Mesh{Verts: make([]r3.Vec, len(m.Verts)), Edges: m.Edges}
	for i, v := range m.Verts {
		out.Verts[i] = t.Apply(v)
	}
	return out
}

// Bounds returns the box around the vertices.
func (m Mesh) Bounds() Box {
	return BoxOf(m.Verts...)
}

// RunDirection returns the horizontal principal axis of the vertices,
// the direction a wall runs in whatever its orientation in plan. ok is
// false when the footprint has no dominant axis.
func (m Mesh) RunDirection() (dir r3.Vec, ok bool) {
	n := float64(len(m.Verts))
	if n == 0 {
		return r3.Vec{}, false
	}
	var cx, cy float64
	for _, v := range m.Verts {
		cx += v.X
		cy += v.Y
	}
	cx, cy = cx/n, cy/n
	var sxx, syy, sxy float64
	for _, v := range m.Verts {
		dx, dy := v.X-cx, v.Y-cy
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if math.Hypot(sxx-syy, 2*sxy) <= 1e-9*(sxx+syy) {
		return r3.Vec{}, false
	}
	theta := 0.5 * math.Atan2(2*sxy, sxx-syy)
	return r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}, true
}
