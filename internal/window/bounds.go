package window

import "math"

// bottomOfGlass returns the height of the lowest visible glass above
// the level.
func (s Settings) bottomOfGlass(w Window) float64 {
	f := &w.Frame
	sill := f.Sill
	if !f.Has(ParamSill) && w.Box.Valid() {
		sill = w.Box.Min.Z - w.LevelElevation
	}
	return sill + s.glassAboveSill(f)
}

// glassAboveSill is the height between the sill and the lowest visible
// glass.
func (s Settings) glassAboveSill(f *Frame) float64 {
	if f.Construction == Aluminium {
		return f.ExtraUnder + f.ViewSill - f.OffsetSide
	}
	bottom := f.Bottom
	if !f.Has(ParamFrameBottom) {
		bottom = s.DefaultBottomFrame
	}
	return bottom + s.BeadAllowance
}

// GlassBottom returns the absolute height of the lowest glass, before
// the floor cutoff is applied.
func (s Settings) GlassBottom(w Window) float64 {
	return w.LevelElevation + s.bottomOfGlass(w)
}

// ReferenceHeight is the absolute height from which obstruction angles
// are measured: the bottom of the glass, but never lower than the
// floor cutoff above the level.
func (s Settings) ReferenceHeight(w Window) float64 {
	return w.LevelElevation + math.Max(s.FloorCutoff, s.bottomOfGlass(w))
}

// glassTop returns the absolute height of the top of the glass.
func (s Settings) glassTop(w Window) float64 {
	f := &w.Frame
	var member float64
	switch {
	case f.Construction == Aluminium && f.Has(ParamTopBottomProfile):
		member = f.TopBottomProfile
	case f.Construction == Wood && f.Has(ParamFrameTop):
		member = f.Top
	}
	switch {
	case f.Has(ParamSill) && f.Has(ParamHeight):
		return w.LevelElevation + f.Sill + f.Height - member
	case w.Box.Valid():
		return w.Box.Max.Z - member
	}
	return s.GlassBottom(w)
}

// GlassBounds returns the absolute vertical extent of the counting
// glass. If the frame geometry leaves nothing above the reference
// height, the window's bounding box is used instead, or an empty band
// at the reference height when there is no box either.
func (s Settings) GlassBounds(w Window) (bottom, top float64) {
	bottom = s.ReferenceHeight(w)
	top = s.glassTop(w)
	if top <= bottom {
		if !w.Box.Valid() {
			return bottom, bottom
		}
		return w.Box.Min.Z, w.Box.Max.Z
	}
	return bottom, top
}
