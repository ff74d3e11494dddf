// Package report assembles the records of one calculation run for
// export.
package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bouwcheck/daglicht/internal/compliance"
	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/nen"
)

// Report is the exported result of a run.
type Report struct {
	RunID    string          `json:"run_id"`
	Created  time.Time       `json:"created"`
	Building string          `json:"building"`
	Config   daylight.Config `json:"config"`
	CbNote   string          `json:"cb_note"`

	Summary    Summary  `json:"summary"`
	Windows    []Window `json:"windows"`
	Areas      []Area   `json:"areas"`
	Unassigned []string `json:"unassigned_windows,omitempty"`
}

// Summary counts the run's outcome.
type Summary struct {
	Windows         int `json:"windows"`
	WindowsNoArea   int `json:"windows_without_glazing_area"`
	Areas           int `json:"areas"`
	CompliantAreas  int `json:"compliant_areas"`
	AlphaAdjusted   int `json:"alpha_adjusted"`
	BudgetExhausted int `json:"budget_exhausted"`
}

// Window is the record of one window.
type Window struct {
	ID    string `json:"id"`
	Level string `json:"level,omitempty"`
	Area  string `json:"area,omitempty"`

	Alpha         measure.Value `json:"alpha_deg"`
	AlphaFan      float64       `json:"alpha_fan_deg"`
	AlphaAdjusted bool          `json:"alpha_adjusted,omitempty"`
	AlphaNote     string        `json:"alpha_note,omitempty"`

	Beta        measure.Value `json:"beta_deg"`
	BetaRad     measure.Value `json:"beta_rad"`
	BetaReason  string        `json:"beta_reason,omitempty"`
	BetaSource  string        `json:"beta_source,omitempty"`
	BetaUsed    float64       `json:"beta_used_deg"`
	BetaAssumed bool          `json:"beta_assumed,omitempty"`

	ReferenceHeight float64 `json:"reference_height_m"`
	GlassBottom     float64 `json:"glass_bottom_m"`
	GlassTop        float64 `json:"glass_top_m"`

	Ad    measure.Value `json:"ad_m2"`
	Cb    measure.Value `json:"cb"`
	Ae    measure.Value `json:"ae_m2"`
	Panes string        `json:"panes,omitempty"`

	EdgeTests       int  `json:"edge_tests"`
	BudgetExhausted bool `json:"budget_exhausted,omitempty"`

	Rays []Ray `json:"rays"`
}

// Ray is one sample of the α fan.
type Ray struct {
	Offset   float64       `json:"offset_deg"`
	Alpha    float64       `json:"alpha_deg"`
	Distance measure.Value `json:"distance_m"`
	Obstacle string        `json:"obstacle,omitempty"`
}

// Area is the compliance record of one habitable area.
type Area struct {
	Name             string   `json:"name"`
	Level            string   `json:"level,omitempty"`
	Area             float64  `json:"area_m2"`
	AeSum            float64  `json:"ae_sum_m2"`
	Ratio            float64  `json:"ratio"`
	RequiredAe       float64  `json:"required_ae_m2"`
	Cbi              float64  `json:"cbi"`
	Status           string   `json:"status"`
	Deficit          float64  `json:"deficit_m2"`
	MaxCompliantArea float64  `json:"max_compliant_area_m2"`
	AreaReduction    float64  `json:"area_reduction_m2"`
	Windows          []string `json:"windows"`
}

// New builds the report of a run. results and agg.Windows must be in
// the same order, as Aggregate returns them.
func New(building string, cfg daylight.Config, results []*daylight.WindowResult, agg compliance.Result) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		Created:    time.Now().UTC(),
		Building:   building,
		Config:     cfg,
		CbNote:     nen.CbTableNote,
		Windows:    make([]Window, 0, len(results)),
		Areas:      make([]Area, 0, len(agg.Areas)),
		Unassigned: agg.Unassigned,
	}
	for i, res := range results {
		var wc compliance.WindowCompliance
		if i < len(agg.Windows) {
			wc = agg.Windows[i]
		}
		r.Windows = append(r.Windows, windowRecord(res, wc))
		if !res.GlazingArea().Defined() {
			r.Summary.WindowsNoArea++
		}
		if res.AlphaAdjusted {
			r.Summary.AlphaAdjusted++
		}
		if res.BudgetExhausted {
			r.Summary.BudgetExhausted++
		}
	}
	for _, a := range agg.Areas {
		r.Areas = append(r.Areas, Area{
			Name:             a.Name,
			Level:            a.Level,
			Area:             a.Area,
			AeSum:            a.AeSum,
			Ratio:            a.Ratio,
			RequiredAe:       a.RequiredAe,
			Cbi:              a.Cbi,
			Status:           a.Status(),
			Deficit:          a.Deficit,
			MaxCompliantArea: a.MaxCompliantArea,
			AreaReduction:    a.AreaReduction,
			Windows:          a.WindowIDs,
		})
		if a.Compliant {
			r.Summary.CompliantAreas++
		}
	}
	r.Summary.Windows = len(r.Windows)
	r.Summary.Areas = len(r.Areas)
	return r
}

func windowRecord(res *daylight.WindowResult, wc compliance.WindowCompliance) Window {
	w := Window{
		ID:              res.WindowID,
		Level:           res.Level,
		Area:            wc.Area,
		Alpha:           res.Alpha,
		AlphaFan:        res.AlphaFan,
		AlphaAdjusted:   res.AlphaAdjusted,
		AlphaNote:       res.AlphaNote,
		Beta:            res.Beta,
		BetaRad:         res.BetaRad,
		BetaReason:      res.BetaReason,
		BetaSource:      res.BetaSource,
		BetaUsed:        wc.BetaUsed,
		BetaAssumed:     wc.BetaAssumed,
		ReferenceHeight: res.ReferenceHeight,
		GlassBottom:     res.GlassBottom,
		GlassTop:        res.GlassTop,
		Ad:              res.GlazingArea(),
		Cb:              wc.Cb,
		Ae:              wc.Ae,
		EdgeTests:       res.EdgeTests,
		BudgetExhausted: res.BudgetExhausted,
		Rays:            make([]Ray, 0, len(res.Rays)),
	}
	if len(res.Glazing.Panes) > 0 {
		w.Panes = res.Glazing.Describe()
	}
	for _, ray := range res.Rays {
		w.Rays = append(w.Rays, Ray{
			Offset:   ray.Offset,
			Alpha:    ray.Alpha,
			Distance: ray.Distance,
			Obstacle: ray.ObstacleID,
		})
	}
	return w
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Save writes the report to a file.
func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
