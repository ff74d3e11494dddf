package nen

import (
	"math"
	"sort"
)

// CbBand is one row of the obstruction factor table: a range of
// overhang angles β with the factor for each tabulated α.
type CbBand struct {
	// BetaFrom and BetaTo bound the band as [BetaFrom, BetaTo) degrees.
	// The first band also catches everything below BetaTo and the last
	// band everything from BetaFrom up.
	BetaFrom float64
	BetaTo   float64

	// Values holds Cb for α = 20°, 21°, ..., 32°.
	Values [13]float64
}

// CbTableNote qualifies every printed or exported Cb value.
const CbTableNote = "provisional Cb values, not transcribed from the published NEN 2057 table"

// CbTable is the obstruction factor Cb for a vertical daylight opening
// as a function of the obstruction angle α and overhang angle β.
//
// The values are provisional: they were derived from a CIE overcast
// sky model and are not a transcription of the NEN 2057 table. Replace
// them with the published values before using results for a permit.
var CbTable = []CbBand{
	{0, 20, [13]float64{1.00, 0.97, 0.95, 0.92, 0.90, 0.87, 0.84, 0.82, 0.79, 0.76, 0.74, 0.71, 0.69}},
	{20, 25, [13]float64{0.96, 0.93, 0.91, 0.88, 0.86, 0.83, 0.80, 0.78, 0.75, 0.72, 0.70, 0.67, 0.65}},
	{25, 30, [13]float64{0.92, 0.90, 0.87, 0.85, 0.82, 0.79, 0.77, 0.74, 0.71, 0.69, 0.66, 0.63, 0.61}},
	{30, 35, [13]float64{0.87, 0.85, 0.82, 0.79, 0.77, 0.74, 0.71, 0.69, 0.66, 0.64, 0.61, 0.58, 0.56}},
	{35, 40, [13]float64{0.80, 0.78, 0.75, 0.73, 0.70, 0.67, 0.65, 0.62, 0.59, 0.57, 0.54, 0.52, 0.49}},
	{40, 45, [13]float64{0.72, 0.70, 0.67, 0.64, 0.62, 0.59, 0.56, 0.54, 0.51, 0.48, 0.46, 0.43, 0.41}},
	{45, 50, [13]float64{0.62, 0.60, 0.57, 0.54, 0.52, 0.49, 0.47, 0.44, 0.41, 0.39, 0.36, 0.33, 0.31}},
	{50, 55, [13]float64{0.51, 0.49, 0.46, 0.43, 0.41, 0.38, 0.35, 0.33, 0.30, 0.28, 0.25, 0.22, 0.20}},
	{55, 60, [13]float64{0.39, 0.36, 0.34, 0.31, 0.29, 0.26, 0.23, 0.21, 0.18, 0.15, 0.13, 0.10, 0.08}},
	{60, 65, [13]float64{0.26, 0.24, 0.21, 0.18, 0.16, 0.13, 0.11, 0.08, 0.05, 0.03, 0.00, 0.00, 0.00}},
	{65, 70, [13]float64{0.13, 0.10, 0.08, 0.05, 0.03, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00}},
	{70, 75, [13]float64{0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00}},
	{75, 90, [13]float64{0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00}},
}

// Band returns the table row for β. β below the first band maps to the
// first band and β at or above the start of the last band to the last.
func Band(beta float64) *CbBand {
	n := len(CbTable)
	if math.IsNaN(beta) || beta < CbTable[0].BetaTo {
		return &CbTable[0]
	}
	if beta >= CbTable[n-1].BetaFrom {
		return &CbTable[n-1]
	}
	i := sort.Search(n, func(i int) bool { return beta < CbTable[i].BetaTo })
	if i == n {
		i = n - 1
	}
	return &CbTable[i]
}

// Cb looks up the obstruction factor. α is clamped to [AlphaMin,
// AlphaMax]; between integer degrees the two bracketing columns are
// interpolated linearly.
func Cb(alpha, beta float64) float64 {
	return Band(beta).At(alpha)
}

// At interpolates the band at α.
func (b *CbBand) At(alpha float64) float64 {
	if math.IsNaN(alpha) {
		alpha = AlphaMin
	}
	alpha = math.Max(AlphaMin, math.Min(AlphaMax, alpha))
	a1 := math.Floor(alpha)
	i := int(a1 - AlphaMin)
	if alpha == a1 || i >= len(b.Values)-1 {
		return b.Values[i]
	}
	a2 := a1 + 1
	t := (alpha - a1) / (a2 - a1)
	return b.Values[i]*(1-t) + b.Values[i+1]*t
}
