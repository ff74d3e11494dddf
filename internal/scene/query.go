package scene

import "github.com/bouwcheck/daglicht/internal/geom"

// Document is the host model or one of its links.
type Document struct {
	Name string

	// Transform places the document's geometry in the host frame. It
	// is the identity for the host itself.
	Transform geom.Transform

	Linked bool
}

// ElementRef identifies an element within a document.
type ElementRef struct {
	ID       string
	Category Category
}

// ModelQuery is the building model as the engine sees it. All methods
// are synchronous in-memory lookups.
type ModelQuery interface {
	// Documents lists the host document followed by its links.
	Documents() []Document

	// Elements lists the elements of the given categories in a
	// document. An error means the document is unavailable.
	Elements(doc string, categories ...Category) ([]ElementRef, error)

	// BoundingBox returns an element's box in document coordinates.
	BoundingBox(doc, id string) (geom.Box, bool)

	// Geometry returns an element's triangulated solid as an edge
	// mesh in document coordinates. ok is false when the caller should
	// fall back to the bounding box.
	Geometry(doc, id string) (m geom.Mesh, ok bool)
}
