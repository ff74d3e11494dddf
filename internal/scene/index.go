// Package scene builds the flat, host-frame list of elements that may
// obstruct daylight, from the host model and all of its links.
package scene

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
)

// Obstruction is an opaque element placed in the host frame.
type Obstruction struct {
	ID       string
	Document string
	Category Category

	// Box and Mesh are in host coordinates. Mesh is the solid's edge
	// skeleton, or the box's when the element had no solid geometry.
	Box   geom.Box
	Mesh  geom.Mesh
	Solid bool

	// Transform is the placement that brought the element into the
	// host frame.
	Transform geom.Transform

	Linked bool

	seq int
}

// Label is a short human description such as "wall W-12".
func (o *Obstruction) Label() string {
	if o.Linked {
		return o.Category.String() + " " + o.ID + " (" + o.Document + ")"
	}
	return o.Category.String() + " " + o.ID
}

// Bounds implements rtreego.Spatial.
func (o *Obstruction) Bounds() rtreego.Rect {
	return rect(o.Box)
}

// minExtent keeps degenerate boxes (zero-thickness planes) indexable.
const minExtent = 1e-6

func rect(b geom.Box) rtreego.Rect {
	s := b.Size()
	r, err := rtreego.NewRect(
		rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z},
		[]float64{math.Max(s.X, minExtent), math.Max(s.Y, minExtent), math.Max(s.Z, minExtent)},
	)
	if err != nil {
		// Only reachable for NaN extents, which Build filters out.
		panic("scene: invalid box: " + err.Error())
	}
	return r
}

// Index is the read-only scene of a calculation run. It is safe for
// concurrent readers.
type Index struct {
	obstructions []*Obstruction
	tree         *rtreego.Rtree
}

// NewIndex indexes the given obstructions. Their order is kept as the
// canonical iteration order.
func NewIndex(obs []*Obstruction) *Index {
	ix := &Index{obstructions: obs}
	spatials := make([]rtreego.Spatial, 0, len(obs))
	for i, o := range obs {
		o.seq = i
		spatials = append(spatials, o)
	}
	ix.tree = rtreego.NewTree(3, 25, 50, spatials...)
	return ix
}

// Build queries the host model and every link for obstruction
// candidates. Unavailable links and elements without a bounding box
// are skipped.
func Build(q ModelQuery, log logrus.FieldLogger) *Index {
	var obs []*Obstruction
	for _, doc := range q.Documents() {
		refs, err := q.Elements(doc.Name, Categories...)
		if err != nil {
			log.WithFields(logrus.Fields{"document": doc.Name, "linked": doc.Linked}).
				WithError(err).Warn("document unavailable, its elements are omitted")
			continue
		}
		n := 0
		for _, ref := range refs {
			box, ok := q.BoundingBox(doc.Name, ref.ID)
			if !ok || !box.Valid() {
				log.WithFields(logrus.Fields{"document": doc.Name, "element": ref.ID}).
					Debug("element has no bounding box")
				continue
			}
			o := &Obstruction{
				ID:        ref.ID,
				Document:  doc.Name,
				Category:  ref.Category,
				Box:       box.Transform(doc.Transform),
				Transform: doc.Transform,
				Linked:    doc.Linked,
			}
			if o.ID == "" {
				o.ID = uuid.NewString()
			}
			if m, ok := q.Geometry(doc.Name, ref.ID); ok && !m.Empty() {
				o.Mesh = m.Transform(doc.Transform)
				o.Solid = true
			} else {
				// Built before placing so a rotated link keeps the
				// element's own outline rather than its host-frame box.
				o.Mesh = geom.BoxMesh(box).Transform(doc.Transform)
			}
			obs = append(obs, o)
			n++
		}
		log.WithFields(logrus.Fields{"document": doc.Name, "elements": n}).Debug("document indexed")
	}
	return NewIndex(obs)
}

// Len returns the number of obstructions.
func (ix *Index) Len() int { return len(ix.obstructions) }

// All returns every obstruction in canonical order.
func (ix *Index) All() []*Obstruction { return ix.obstructions }

// Intersecting returns the obstructions whose boxes overlap region and
// satisfy keep (nil keeps all), in canonical order.
func (ix *Index) Intersecting(region geom.Box, keep func(*Obstruction) bool) []*Obstruction {
	if len(ix.obstructions) == 0 || !region.Valid() {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect(region))
	out := make([]*Obstruction, 0, len(hits))
	for _, h := range hits {
		o := h.(*Obstruction)
		if keep == nil || keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Near returns the obstructions whose boxes come within radius of p.
func (ix *Index) Near(p r3.Vec, radius float64, keep func(*Obstruction) bool) []*Obstruction {
	region := geom.Box{Min: p, Max: p}.Expand(radius)
	return ix.Intersecting(region, func(o *Obstruction) bool {
		return o.Box.Distance(p) <= radius && (keep == nil || keep(o))
	})
}

// verticalReach bounds plan queries in Z.
const verticalReach = 1e4

// NearXY is Near measured in plan, at any height.
func (ix *Index) NearXY(p r3.Vec, radius float64, keep func(*Obstruction) bool) []*Obstruction {
	region := geom.Box{
		Min: r3.Vec{X: p.X - radius, Y: p.Y - radius, Z: -verticalReach},
		Max: r3.Vec{X: p.X + radius, Y: p.Y + radius, Z: verticalReach},
	}
	return ix.Intersecting(region, func(o *Obstruction) bool {
		return o.Box.DistanceXY(p) <= radius && (keep == nil || keep(o))
	})
}
