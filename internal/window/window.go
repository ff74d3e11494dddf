// Package window describes window openings and resolves their glazing
// geometry: the reference height for angle measurement, the vertical
// extent of the glass and the net glazed area of the pane grid.
package window

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
)

// Construction is the frame type, which decides how frame parameters
// translate into glass dimensions.
type Construction int

const (
	Wood Construction = iota
	Aluminium
)

func (c Construction) String() string {
	if c == Aluminium {
		return "aluminium"
	}
	return "wood"
}

// Param names a frame parameter the adapter may fail to provide.
type Param string

const (
	ParamWidth            Param = "width"
	ParamHeight           Param = "height"
	ParamSill             Param = "sill"
	ParamFrameTop         Param = "frame top"
	ParamFrameBottom      Param = "frame bottom"
	ParamFrameSide        Param = "frame side"
	ParamSideProfile      Param = "side profile"
	ParamTopBottomProfile Param = "top/bottom profile"
)

// Cell addresses a pane in the grid. Row 0 is the bottom row, column 0
// the leftmost seen from outside.
type Cell struct {
	Row, Col int
}

// Frame is the typed parametric description of a window frame. All
// lengths are in metres.
type Frame struct {
	Construction Construction

	// Outer frame dimensions and sill height above the level.
	Width, Height, Sill float64

	// Wood frame member thicknesses.
	Top, Bottom, Side float64

	// Aluminium profile dimensions.
	SideProfile, TopBottomProfile float64
	OffsetSide, ExtraUnder, ViewSill float64

	// Vertical mullions split the width into MullionsV+1 columns,
	// horizontal transoms the height into MullionsH+1 rows.
	MullionsV, MullionsH                 int
	MullionThicknessV, MullionThicknessH float64

	// SashWidth is the visible sash member of an operable pane. Zero
	// means the configured default.
	SashWidth float64

	// Relative column widths and row heights. Nil means equal.
	ColumnWeights, RowWeights []float64

	// Fillings labels the panes; see Classify.
	Fillings map[Cell]string

	// Missing lists parameters the model did not provide.
	Missing []Param
}

// Has reports whether p was provided.
func (f *Frame) Has(p Param) bool {
	for _, m := range f.Missing {
		if m == p {
			return false
		}
	}
	return true
}

// Window is a window instance.
type Window struct {
	ID             string
	Level          string
	LevelElevation float64

	// Box is the instance bounding box in host coordinates.
	Box geom.Box

	// Facing is the outward normal of the opening.
	Facing r3.Vec

	// HostWall is the id of the wall the window sits in, if known.
	HostWall string

	Frame Frame
}
