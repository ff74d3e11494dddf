package window

import "github.com/bouwcheck/daglicht/internal/nen"

// Settings are the tunables of the glazing resolver.
type Settings struct {
	// FloorCutoff is the height above the level below which glass does
	// not count.
	FloorCutoff float64 `json:"floor_cutoff_m"`

	// BeadAllowance is the glazing bead a wood frame adds above the
	// bottom member.
	BeadAllowance float64 `json:"bead_allowance_m"`

	// MullionGap is the extra glass lost next to each wood mullion.
	MullionGap float64 `json:"mullion_gap_m"`

	DefaultSashWidth   float64 `json:"default_sash_width_m"`
	DefaultBottomFrame float64 `json:"default_bottom_frame_m"`

	// TopScanSamples is the number of upward rays across the window
	// width that look for obstructions cutting into the glass.
	TopScanSamples int `json:"top_scan_samples"`

	PanelKeywords    []string `json:"panel_keywords"`
	OperableKeywords []string `json:"operable_keywords"`
}

// DefaultSettings returns the resolver defaults.
func DefaultSettings() Settings {
	return Settings{
		FloorCutoff:        nen.FloorCutoff,
		BeadAllowance:      0.017,
		MullionGap:         0.004,
		DefaultSashWidth:   0.060,
		DefaultBottomFrame: 0.060,
		TopScanSamples:     5,
		PanelKeywords:      []string{"paneel", "panel", "dicht", "borstwering", "opaque"},
		OperableKeywords:   []string{"draai", "kiep", "klep", "valraam", "schuif", "operable", "vent", "open"},
	}
}
