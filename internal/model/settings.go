package model

import "github.com/bouwcheck/daglicht/internal/daylight"

// Settings overrides calculation defaults for one building. Absent
// fields keep the default.
type Settings struct {
	Radius         *float64 `json:"radius_m,omitempty"`
	FanStep        *float64 `json:"fan_step_deg,omitempty"`
	FanRays        *int     `json:"fan_rays,omitempty"`
	FlipFacing     *bool    `json:"flip_facing,omitempty"`
	EdgeBudget     *int     `json:"edge_budget,omitempty"`
	NoOverhangBeta *float64 `json:"no_overhang_beta_deg,omitempty"`

	// Glazing defaults, in millimetres like the window parameters.
	FloorCutoff *float64 `json:"floor_cutoff_mm,omitempty"`
	SashWidth   *float64 `json:"sash_width_mm,omitempty"`
	BottomFrame *float64 `json:"bottom_frame_mm,omitempty"`
	TopScanRays *int     `json:"top_scan_samples,omitempty"`

	PanelKeywords    []string `json:"panel_keywords,omitempty"`
	OperableKeywords []string `json:"operable_keywords,omitempty"`
}

// Apply writes the set fields into cfg.
func (s *Settings) Apply(cfg *daylight.Config) {
	if s == nil {
		return
	}
	if s.Radius != nil {
		cfg.SearchRadius = *s.Radius
	}
	if s.FanStep != nil {
		cfg.FanStep = *s.FanStep
	}
	if s.FanRays != nil {
		cfg.FanRays = *s.FanRays
	}
	if s.FlipFacing != nil {
		cfg.FlipFacing = *s.FlipFacing
	}
	if s.EdgeBudget != nil {
		cfg.EdgeBudget = *s.EdgeBudget
	}
	if s.NoOverhangBeta != nil {
		cfg.NoOverhangBeta = *s.NoOverhangBeta
	}
	if s.FloorCutoff != nil {
		cfg.Glazing.FloorCutoff = *s.FloorCutoff * mm
	}
	if s.SashWidth != nil {
		cfg.Glazing.DefaultSashWidth = *s.SashWidth * mm
	}
	if s.BottomFrame != nil {
		cfg.Glazing.DefaultBottomFrame = *s.BottomFrame * mm
	}
	if s.TopScanRays != nil {
		cfg.Glazing.TopScanSamples = *s.TopScanRays
	}
	if len(s.PanelKeywords) > 0 {
		cfg.Glazing.PanelKeywords = s.PanelKeywords
	}
	if len(s.OperableKeywords) > 0 {
		cfg.Glazing.OperableKeywords = s.OperableKeywords
	}
}
