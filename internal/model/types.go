// Package model reads a building from a JSON file and presents it to
// the engine: as the scene's model query, as typed windows with their
// frame parameters resolved, and as habitable area polygons. Computed
// values can be written back onto the windows and the building saved.
package model

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/scene"
)

// Building is the content of a building file. Coordinates are in
// metres, window parameters in millimetres.
type Building struct {
	Name        string           `json:"name"`
	Settings    *Settings        `json:"settings,omitempty"`
	Levels      []Level          `json:"levels,omitempty"`
	ElementList []Element        `json:"elements"`
	Links       []Link           `json:"links,omitempty"`
	WindowList  []WindowInstance `json:"windows"`
	Areas       []Area           `json:"areas,omitempty"`

	path     string
	log      logrus.FieldLogger
	ids      []string
	elements map[string]*Element
	meshes   map[string]geom.Mesh
	linked   map[string]*linkedDocument
}

// Vec3 is a point or direction as [x, y, z].
type Vec3 [3]float64

// Level is a storey with its elevation in metres.
type Level struct {
	Name      string  `json:"name"`
	Elevation float64 `json:"elevation"`
}

// Element is an opaque building element. Min and Max may be omitted
// when a mesh is given.
type Element struct {
	ID       string         `json:"id"`
	Category scene.Category `json:"category"`
	Min      *Vec3          `json:"min,omitempty"`
	Max      *Vec3          `json:"max,omitempty"`

	// Geometry, either inline or as a binary STL file relative to the
	// building file.
	Mesh *MeshData `json:"mesh,omitempty"`
	STL  string    `json:"stl,omitempty"`
}

// MeshData is an inline triangle mesh.
type MeshData struct {
	Vertices  []Vec3   `json:"vertices"`
	Triangles [][3]int `json:"triangles"`
}

// Link places another building file in this one.
type Link struct {
	Name        string  `json:"name"`
	File        string  `json:"file"`
	Translation Vec3    `json:"translation"`
	RotationDeg float64 `json:"rotation_deg"`
}

// WindowInstance is a window as stored in the file. Parameters hold
// numbers (millimetres, counts) and strings (fillings, distributions).
// A window without a usable box is still loaded and computed without
// geometry.
type WindowInstance struct {
	ID         string         `json:"id"`
	Level      string         `json:"level,omitempty"`
	Host       string         `json:"host,omitempty"`
	Min        *Vec3          `json:"min,omitempty"`
	Max        *Vec3          `json:"max,omitempty"`
	Facing     Vec3           `json:"facing"`
	Parameters map[string]any `json:"parameters"`

	// ReadOnly lists parameters that cannot be written back.
	ReadOnly []string `json:"readonly,omitempty"`
}

// Area is a habitable area (verblijfsgebied). Loops are lists of
// [x, y] points; Area may be omitted to derive it from the loops.
type Area struct {
	Name  string         `json:"name"`
	Level string         `json:"level,omitempty"`
	Area  float64        `json:"area,omitempty"`
	Loops [][][2]float64 `json:"loops"`
}

// Validate checks the building for definitions the engine cannot use.
func (b *Building) Validate() error {
	elements := make(map[string]bool)
	for i, e := range b.ElementList {
		if e.ID != "" {
			if elements[e.ID] {
				return &ValidationError{fmt.Sprintf("duplicate element id %q", e.ID)}
			}
			elements[e.ID] = true
		}
		if e.Min == nil && e.Max == nil && e.Mesh == nil && e.STL == "" {
			return &ValidationError{fmt.Sprintf("element %d (%s) has neither a box nor geometry", i+1, e.ID)}
		}
		if (e.Min == nil) != (e.Max == nil) {
			return &ValidationError{fmt.Sprintf("element %d (%s) needs both min and max", i+1, e.ID)}
		}
		if e.Min != nil && !box(*e.Min, *e.Max).Valid() {
			return &ValidationError{fmt.Sprintf("element %d (%s) has an inverted box", i+1, e.ID)}
		}
		if e.Mesh != nil {
			for _, t := range e.Mesh.Triangles {
				for _, v := range t {
					if v < 0 || v >= len(e.Mesh.Vertices) {
						return &ValidationError{fmt.Sprintf("element %s: triangle index %d out of range", e.ID, v)}
					}
				}
			}
		}
	}
	seen := make(map[string]bool)
	for i, w := range b.WindowList {
		if w.ID == "" {
			return &ValidationError{fmt.Sprintf("window %d has no id", i+1)}
		}
		if seen[w.ID] {
			return &ValidationError{fmt.Sprintf("duplicate window id %q", w.ID)}
		}
		seen[w.ID] = true
	}
	links := map[string]bool{b.docName(): true}
	for _, l := range b.Links {
		if l.Name == "" || l.File == "" {
			return &ValidationError{"links need a name and a file"}
		}
		if links[l.Name] {
			return &ValidationError{fmt.Sprintf("duplicate document name %q", l.Name)}
		}
		links[l.Name] = true
	}
	for _, a := range b.Areas {
		if a.Area < 0 {
			return &ValidationError{fmt.Sprintf("area %s has a negative floor area", a.Name)}
		}
		for _, loop := range a.Loops {
			if len(loop) < 3 {
				return &ValidationError{fmt.Sprintf("area %s has a loop with fewer than 3 points", a.Name)}
			}
		}
	}
	return nil
}

// ValidationError represents a building file validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
