package daylight

import (
	"fmt"

	"github.com/bouwcheck/daglicht/internal/nen"
	"github.com/bouwcheck/daglicht/internal/window"
)

// Config holds the tunables of one calculation run. It is passed by
// value and never changed while the run is in progress.
type Config struct {
	// FanRays horizontal rays are cast FanStep degrees apart,
	// symmetric about the sight direction.
	FanRays int     `json:"fan_rays"`
	FanStep float64 `json:"fan_step_deg"`

	// SearchRadius limits both the α fan and the β section search.
	SearchRadius float64 `json:"search_radius_m"`

	// Walls within HostWallTolerance of the window box that run
	// parallel to the facade belong to the window's own wall assembly.
	HostWallTolerance float64 `json:"host_wall_tolerance_m"`

	// ParallelTolerance is the largest |cos| between a wall's run
	// direction and the facing for it to count as parallel.
	ParallelTolerance float64 `json:"parallel_tolerance"`

	// AlphaMin is the floor for every obstruction angle.
	AlphaMin float64 `json:"alpha_min_deg"`

	// FlipFacing reverses window facing vectors for models whose
	// windows face inwards.
	FlipFacing bool `json:"flip_facing"`

	// EdgeBudget caps the edge/plane tests of the β search per
	// window. Zero means unlimited.
	EdgeBudget int `json:"edge_budget"`

	// NoOverhangBeta is the β used for the Cb lookup of windows
	// without an overhang.
	NoOverhangBeta float64 `json:"no_overhang_beta_deg"`

	Glazing window.Settings `json:"glazing"`
}

// DefaultConfig returns the NEN 2057 defaults.
func DefaultConfig() Config {
	return Config{
		FanRays:           11,
		FanStep:           10,
		SearchRadius:      nen.SearchRadius,
		HostWallTolerance: 0.010,
		ParallelTolerance: 0.3,
		AlphaMin:          nen.AlphaMin,
		EdgeBudget:        200000,
		NoOverhangBeta:    0,
		Glazing:           window.DefaultSettings(),
	}
}

// Validate checks the configuration for values the geometry cannot
// work with.
func (c Config) Validate() error {
	switch {
	case c.FanRays < 1:
		return fmt.Errorf("fan needs at least one ray, got %d", c.FanRays)
	case c.FanStep < 0 || float64(c.FanRays-1)*c.FanStep >= 180:
		return fmt.Errorf("fan of %d rays %.1f° apart does not fit in a half plane", c.FanRays, c.FanStep)
	case c.SearchRadius <= 0:
		return fmt.Errorf("search radius must be positive, got %.3f", c.SearchRadius)
	case c.HostWallTolerance < 0:
		return fmt.Errorf("host wall tolerance must not be negative")
	case c.EdgeBudget < 0:
		return fmt.Errorf("edge budget must not be negative")
	case c.Glazing.FloorCutoff < 0:
		return fmt.Errorf("floor cutoff must not be negative")
	}
	return nil
}

// FanOffsets returns the angular offsets of the fan rays in degrees,
// e.g. -50, -40, ..., 50 for the defaults.
func (c Config) FanOffsets() []float64 {
	out := make([]float64, c.FanRays)
	mid := float64(c.FanRays-1) / 2
	for i := range out {
		out[i] = (float64(i) - mid) * c.FanStep
	}
	return out
}
