package scene

import (
	"fmt"
	"strings"
)

// Category classifies model elements. It only drives candidate
// selection (α considers walls only) and diagnostic labels.
type Category int

const (
	Wall Category = iota
	Floor
	Roof
	Ceiling
	GenericModel
	StructuralFraming
	StructuralColumn
)

// Categories are the element categories that can obstruct daylight.
var Categories = []Category{Wall, Floor, Roof, Ceiling, GenericModel, StructuralFraming, StructuralColumn}

var categoryNames = map[Category]string{
	Wall:              "wall",
	Floor:             "floor",
	Roof:              "roof",
	Ceiling:           "ceiling",
	GenericModel:      "generic model",
	StructuralFraming: "structural framing",
	StructuralColumn:  "structural column",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts the names printed by String as well as the
// usual Dutch and Revit spellings.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	switch key {
	case "wall", "walls", "wand", "muur":
		return Wall, nil
	case "floor", "floors", "vloer":
		return Floor, nil
	case "roof", "roofs", "dak":
		return Roof, nil
	case "ceiling", "ceilings", "plafond":
		return Ceiling, nil
	case "generic model", "generic models", "generic":
		return GenericModel, nil
	case "structural framing", "framing", "beam", "balk":
		return StructuralFraming, nil
	case "structural column", "structural columns", "column", "kolom":
		return StructuralColumn, nil
	}
	return 0, fmt.Errorf("unknown element category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
