package model

import (
	"errors"
	"fmt"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/scene"
)

type linkedDocument struct {
	link     Link
	building *Building
	err      error
}

// Transform places the linked file in the host frame: rotation about
// Z first, then translation.
func (l Link) Transform() geom.Transform {
	return geom.Placement(vec(l.Translation), l.RotationDeg)
}

func (b *Building) docName() string {
	if b.Name == "" {
		return "host"
	}
	return b.Name
}

// Documents lists the building itself followed by its links, in file
// order.
func (b *Building) Documents() []scene.Document {
	docs := []scene.Document{{Name: b.docName(), Transform: geom.Identity()}}
	for _, l := range b.Links {
		docs = append(docs, scene.Document{Name: l.Name, Transform: l.Transform(), Linked: true})
	}
	return docs
}

var errNoDocument = errors.New("no such document")

func (b *Building) document(doc string) (*Building, error) {
	if doc == b.docName() {
		return b, nil
	}
	ld, ok := b.linked[doc]
	if !ok || ld == nil {
		return nil, fmt.Errorf("%q: %w", doc, errNoDocument)
	}
	if ld.err != nil {
		return nil, fmt.Errorf("link %q: %w", doc, ld.err)
	}
	return ld.building, nil
}

// Elements lists the elements of a document in the given categories.
func (b *Building) Elements(doc string, categories ...scene.Category) ([]scene.ElementRef, error) {
	d, err := b.document(doc)
	if err != nil {
		return nil, err
	}
	want := make(map[scene.Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	var refs []scene.ElementRef
	for i, e := range d.ElementList {
		if want[e.Category] {
			refs = append(refs, scene.ElementRef{ID: d.ids[i], Category: e.Category})
		}
	}
	return refs, nil
}

// BoundingBox returns the element's box in document coordinates,
// taken from the file or else from its geometry.
func (b *Building) BoundingBox(doc, id string) (geom.Box, bool) {
	d, err := b.document(doc)
	if err != nil {
		return geom.Box{}, false
	}
	e, ok := d.elements[id]
	if !ok {
		return geom.Box{}, false
	}
	if e.Min != nil {
		return box(*e.Min, *e.Max), true
	}
	if m, ok := d.meshes[id]; ok && !m.Empty() {
		return m.Bounds(), true
	}
	return geom.Box{}, false
}

// Geometry returns the element's edge mesh in document coordinates.
func (b *Building) Geometry(doc, id string) (geom.Mesh, bool) {
	d, err := b.document(doc)
	if err != nil {
		return geom.Mesh{}, false
	}
	m, ok := d.meshes[id]
	return m, ok
}
