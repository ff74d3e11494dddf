package nen

// NEN 2057 daylight opening constants

const (
	// Obstruction angle limits. Below the minimum the view is treated
	// as unobstructed; the Cb table is tabulated up to the maximum.
	AlphaMin = 20.0 // degrees
	AlphaMax = 32.0 // degrees

	// Daylight entering below this height above the floor does not
	// count towards the equivalent daylight area.
	FloorCutoff = 0.600 // m

	// Required equivalent daylight area as a fraction of the floor area
	// of a habitable area (verblijfsgebied).
	RequiredFraction = 0.55

	// Horizontal search distance for obstructions and overhangs.
	SearchRadius = 5.0 // m
)
