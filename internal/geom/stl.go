package geom

import (
	"encoding/binary"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadSTL reads a binary STL file into an edge mesh. Coincident
// vertices are merged so shared edges appear once.
func ReadSTL(r io.Reader) (name string, m Mesh, err error) {
	var header struct {
		H    [80]byte
		NTri uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return "", Mesh{}, err
	}
	name = strings.TrimRight(string(header.H[:]), " \x00")

	vertMap := make(map[[3]float32]int)
	var verts []r3.Vec
	var tris [][3]int

	var vert [3]float32
	var tri [3]int
	triBuf := make([]byte, 4*3*4+2)
	for i := 0; i < int(header.NTri); i++ {
		if _, err := io.ReadFull(r, triBuf); err != nil {
			return "", Mesh{}, err
		}
		for v := range tri {
			for c := range vert {
				const start = 3 * 4 // Skip normal
				vert[c] = math.Float32frombits(binary.LittleEndian.Uint32(triBuf[start+12*v+4*c:]))
			}
			idx, ok := vertMap[vert]
			if !ok {
				idx = len(verts)
				verts = append(verts, r3.Vec{X: float64(vert[0]), Y: float64(vert[1]), Z: float64(vert[2])})
				vertMap[vert] = idx
			}
			tri[v] = idx
		}
		tris = append(tris, tri)
	}
	return name, MeshFromTriangles(verts, tris), nil
}

// WriteSTL writes triangles as a binary STL file. It is the inverse of
// ReadSTL for meshes that still have their faces.
func WriteSTL(w io.Writer, name string, verts []r3.Vec, tris [][3]int) error {
	var header struct {
		H    [80]byte
		NTri uint32
	}
	copy(header.H[:], name)
	header.NTri = uint32(len(tris))
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	buf := make([]byte, 4*3*4+2)
	for _, tri := range tris {
		for i := range buf {
			buf[i] = 0
		}
		for v, idx := range tri {
			p := verts[idx]
			for c, f := range [3]float64{p.X, p.Y, p.Z} {
				const start = 3 * 4
				binary.LittleEndian.PutUint32(buf[start+12*v+4*c:], math.Float32bits(float32(f)))
			}
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
