package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
)

// LoadFromFile loads and validates a building file together with the
// files it links. Links and STL files that cannot be read are logged
// and left out; only the building file itself must be readable.
func LoadFromFile(path string, log logrus.FieldLogger) (*Building, error) {
	b, err := readBuilding(path, log)
	if err != nil {
		return nil, err
	}

	b.linked = make(map[string]*linkedDocument, len(b.Links))
	for _, l := range b.Links {
		ld := &linkedDocument{link: l}
		file := l.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(filepath.Dir(path), file)
		}
		ld.building, ld.err = readBuilding(file, log)
		if ld.err != nil {
			log.WithFields(logrus.Fields{"link": l.Name, "file": file}).
				WithError(ld.err).Warn("linked model unavailable")
		} else if len(ld.building.Links) > 0 {
			log.WithField("link", l.Name).Warn("nested links are not followed")
		}
		b.linked[l.Name] = ld
	}
	return b, nil
}

func readBuilding(path string, log logrus.FieldLogger) (*Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Building
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	b.path = path
	b.log = log
	b.index()
	return &b, nil
}

// index resolves element geometry and builds the id lookups.
func (b *Building) index() {
	b.elements = make(map[string]*Element, len(b.ElementList))
	b.meshes = make(map[string]geom.Mesh)
	b.ids = make([]string, len(b.ElementList))
	for i := range b.ElementList {
		e := &b.ElementList[i]
		id := e.ID
		if id == "" {
			// Anonymous elements are addressed by position.
			id = fmt.Sprintf("#%d", i+1)
		}
		b.ids[i] = id
		b.elements[id] = e
		if m, ok := b.loadMesh(id, e); ok {
			b.meshes[id] = m
		}
	}
}

func (b *Building) loadMesh(id string, e *Element) (geom.Mesh, bool) {
	switch {
	case e.Mesh != nil:
		verts := make([]r3.Vec, len(e.Mesh.Vertices))
		for i, v := range e.Mesh.Vertices {
			verts[i] = vec(v)
		}
		return geom.MeshFromTriangles(verts, e.Mesh.Triangles), true
	case e.STL != "":
		file := e.STL
		if !filepath.IsAbs(file) {
			file = filepath.Join(filepath.Dir(b.path), file)
		}
		f, err := os.Open(file)
		if err != nil {
			b.log.WithField("element", id).WithError(err).Warn("geometry unreadable, using bounding box")
			return geom.Mesh{}, false
		}
		defer f.Close()
		_, m, err := geom.ReadSTL(f)
		if err != nil {
			b.log.WithFields(logrus.Fields{"element": id, "file": file}).
				WithError(err).Warn("geometry unreadable, using bounding box")
			return geom.Mesh{}, false
		}
		return m, true
	}
	return geom.Mesh{}, false
}

// Save writes the building, including any parameters written back,
// as indented JSON.
func (b *Building) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path is the file the building was loaded from.
func (b *Building) Path() string { return b.path }

func vec(v Vec3) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func box(min, max Vec3) geom.Box {
	return geom.Box{Min: vec(min), Max: vec(max)}
}
