package nen

import "math"

// RequiredDaylightArea is the equivalent daylight area Ae a habitable
// area of the given floor area must reach.
func RequiredDaylightArea(area float64) float64 {
	return RequiredFraction * area
}

// ComplianceRatio is Cbi = ΣAe / (0.55 × area). A zero area yields 0.
func ComplianceRatio(aeSum, area float64) float64 {
	req := RequiredDaylightArea(area)
	if req <= 0 {
		return 0
	}
	return aeSum / req
}

// Deficit is the equivalent daylight area still missing.
func Deficit(aeSum, area float64) float64 {
	return math.Max(0, RequiredDaylightArea(area)-aeSum)
}

// MaxCompliantArea is the largest floor area the given ΣAe satisfies.
func MaxCompliantArea(aeSum float64) float64 {
	return aeSum / RequiredFraction
}

// AreaReduction is how much the floor area would have to shrink for
// the current ΣAe to suffice.
func AreaReduction(aeSum, area float64) float64 {
	return math.Max(0, area-MaxCompliantArea(aeSum))
}
