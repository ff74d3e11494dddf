package geom

import (
	"bytes"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecApprox(a, b r3.Vec) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestBoxDistance(t *testing.T) {
	b := Box{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	tests := []struct {
		p    r3.Vec
		want float64
	}{
		{r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, 0},
		{r3.Vec{X: 2, Y: 0.5, Z: 0.5}, 1},
		{r3.Vec{X: 4, Y: 5, Z: 0.5}, 5},
	}
	for _, tt := range tests {
		if got := b.Distance(tt.p); !approx(got, tt.want) {
			t.Errorf("Distance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	o := Box{Min: r3.Vec{X: 1.005, Y: 0, Z: 0}, Max: r3.Vec{X: 2, Y: 1, Z: 1}}
	if got := b.BoxDistance(o); !approx(got, 0.005) {
		t.Errorf("BoxDistance = %v, want 0.005", got)
	}
}

func TestBoxTransform(t *testing.T) {
	b := Box{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 2, Y: 1, Z: 3}}
	got := b.Transform(Placement(r3.Vec{X: 10, Y: 0, Z: 1}, 90))
	want := Box{Min: r3.Vec{X: 9, Y: 0, Z: 1}, Max: r3.Vec{X: 10, Y: 2, Z: 4}}
	if !vecApprox(got.Min, want.Min) || !vecApprox(got.Max, want.Max) {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}
}

func TestTransformThen(t *testing.T) {
	a := Placement(r3.Vec{X: 1}, 90)
	b := Placement(r3.Vec{Y: 2}, 90)
	p := r3.Vec{X: 1, Y: 0, Z: 5}
	want := b.Apply(a.Apply(p))
	if got := a.Then(b).Apply(p); !vecApprox(got, want) {
		t.Errorf("Then.Apply = %v, want %v", got, want)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity is not identity")
	}
}

func TestMeshFromTriangles(t *testing.T) {
	verts := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	m := MeshFromTriangles(verts, [][3]int{{0, 1, 2}, {1, 3, 2}})
	if len(m.Edges) != 5 {
		t.Errorf("got %d edges, want 5 (shared diagonal counted once)", len(m.Edges))
	}
	if got := len(BoxMesh(Box{Max: r3.Vec{X: 1, Y: 1, Z: 1}}).Edges); got != 12 {
		t.Errorf("box mesh has %d edges, want 12", got)
	}
}

func TestMeshRunDirection(t *testing.T) {
	wall := BoxMesh(Box{Min: r3.Vec{X: -3, Y: 0, Z: 0}, Max: r3.Vec{X: 3, Y: 0.3, Z: 3}})
	for _, deg := range []float64{0, 30, 90, 135} {
		run, ok := wall.Transform(Placement(r3.Vec{X: 4, Y: -2}, deg)).RunDirection()
		if !ok {
			t.Fatalf("%v°: no run direction", deg)
		}
		rad := deg * math.Pi / 180
		if got := math.Abs(r3.Dot(run, r3.Vec{X: math.Cos(rad), Y: math.Sin(rad)})); !approx(got, 1) {
			t.Errorf("%v°: run direction %v", deg, run)
		}
	}

	square := BoxMesh(Box{Max: r3.Vec{X: 1, Y: 1, Z: 3}})
	if _, ok := square.RunDirection(); ok {
		t.Error("square footprint has a run direction")
	}
}

func TestPlaneIntersectSegment(t *testing.T) {
	p, ok := VerticalPlane(r3.Vec{}, r3.Vec{Y: 1})
	if !ok {
		t.Fatal("VerticalPlane failed for horizontal direction")
	}
	// Plane is x = 0.
	tests := []struct {
		a, b r3.Vec
		want []r3.Vec
	}{
		{r3.Vec{X: -1, Z: 2}, r3.Vec{X: 1, Z: 4}, []r3.Vec{{Z: 3}}},
		{r3.Vec{X: 1}, r3.Vec{X: 2}, nil},
		{r3.Vec{Y: 1}, r3.Vec{X: 2}, []r3.Vec{{Y: 1}}},
		{r3.Vec{Y: 1}, r3.Vec{Y: 2}, []r3.Vec{{Y: 1}, {Y: 2}}},
	}
	for _, tt := range tests {
		got := p.IntersectSegment(tt.a, tt.b)
		if len(got) != len(tt.want) {
			t.Errorf("IntersectSegment(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			continue
		}
		for i := range got {
			if !vecApprox(got[i], tt.want[i]) {
				t.Errorf("IntersectSegment(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	}
	if _, ok := VerticalPlane(r3.Vec{}, Up); ok {
		t.Error("VerticalPlane accepted a vertical direction")
	}
}

func TestStraddles(t *testing.T) {
	p, _ := VerticalPlane(r3.Vec{}, r3.Vec{Y: 1})
	if p.Straddles([]r3.Vec{{X: 1}, {X: 2}}) {
		t.Error("points on one side reported as straddling")
	}
	if !p.Straddles([]r3.Vec{{X: 1}, {X: -2}}) {
		t.Error("points on both sides not straddling")
	}
}

func TestRayIntersectBox(t *testing.T) {
	b := Box{Min: r3.Vec{X: -1, Y: 4, Z: 0}, Max: r3.Vec{X: 1, Y: 4.3, Z: 3}}
	r := PlanRay(r3.Vec{}, r3.Vec{Y: 1})
	if tHit, ok := r.IntersectBox(b); !ok || !approx(tHit, 4) {
		t.Errorf("IntersectBox straight = %v, %v; want 4, true", tHit, ok)
	}
	r = PlanRay(r3.Vec{}, RotateZ(r3.Vec{Y: 1}, 40))
	if _, ok := r.IntersectBox(b); ok {
		t.Error("ray at 40° should pass beside the box")
	}
	r = PlanRay(r3.Vec{}, r3.Vec{Y: -1})
	if _, ok := r.IntersectBox(b); ok {
		t.Error("ray pointing away reported a hit")
	}
	inside := PlanRay(r3.Vec{Y: 4.1}, r3.Vec{Y: 1})
	if _, ok := inside.IntersectBox(b); ok {
		t.Error("ray starting inside the box reported a hit")
	}
}

func TestSTLRoundTrip(t *testing.T) {
	verts := []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	tris := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	var buf bytes.Buffer
	if err := WriteSTL(&buf, "tetra", verts, tris); err != nil {
		t.Fatal(err)
	}
	name, m, err := ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if name != "tetra" {
		t.Errorf("name = %q", name)
	}
	if len(m.Verts) != 4 || len(m.Edges) != 6 {
		t.Errorf("got %d verts %d edges, want 4 and 6", len(m.Verts), len(m.Edges))
	}
}
