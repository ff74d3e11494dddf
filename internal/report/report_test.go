package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/compliance"
	"github.com/bouwcheck/daglicht/internal/daylight"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/nen"
	"github.com/bouwcheck/daglicht/internal/window"
)

func TestReport(t *testing.T) {
	results := []*daylight.WindowResult{
		{
			WindowID: "K-1",
			Center:   r3.Vec{X: 1, Y: 1},
			Located:  true,
			Alpha:    measure.Computed(24),
			AlphaFan: 24,
			Beta:     measure.NotApplicable("no obstruction found within cross-section / 5m"),
			Glazing:  window.Glazing{Area: measure.Computed(6), Panes: []window.Pane{{Kind: window.Fixed, Width: 2, Height: 3}}},
			Rays:     []daylight.RayResult{{Offset: 0, Alpha: 24, Distance: measure.Computed(4), ObstacleID: "W-2"}},
		},
		{
			WindowID: "K-2",
			Alpha:    measure.Computed(20),
			Glazing:  window.Glazing{Area: measure.NotApplicable("missing parameter: width")},
		},
	}
	areas := []compliance.HabitableArea{{
		Name:  "VG-1",
		Area:  10,
		Loops: []orb.Ring{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}},
	}}
	agg := compliance.Aggregate(results, areas, compliance.Options{})
	r := New("rijwoning.json", daylight.DefaultConfig(), results, agg)

	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("run id %q: %v", r.RunID, err)
	}
	if r.Summary.Windows != 2 || r.Summary.WindowsNoArea != 1 || r.Summary.Areas != 1 {
		t.Errorf("summary %+v", r.Summary)
	}
	if r.Windows[0].Area != "VG-1" || !r.Windows[0].BetaAssumed {
		t.Errorf("window record %+v", r.Windows[0])
	}
	if r.Windows[0].Panes == "" || r.Windows[1].Panes != "" {
		t.Errorf("panes %q / %q", r.Windows[0].Panes, r.Windows[1].Panes)
	}
	if len(r.Unassigned) != 1 || r.Unassigned[0] != "K-2" {
		t.Errorf("unassigned %v", r.Unassigned)
	}

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded struct {
		CbNote  string `json:"cb_note"`
		Windows []struct {
			ID   string `json:"id"`
			Beta struct {
				Value  *float64 `json:"value"`
				Reason string   `json:"reason"`
			} `json:"beta_deg"`
			Rays []struct {
				Obstacle string `json:"obstacle"`
			} `json:"rays"`
		} `json:"windows"`
		Areas []struct {
			Status string `json:"status"`
		} `json:"areas"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.CbNote != nen.CbTableNote {
		t.Errorf("cb note %q", decoded.CbNote)
	}
	w := decoded.Windows[0]
	if w.Beta.Value != nil || w.Beta.Reason == "" {
		t.Errorf("beta encoded as %+v", w.Beta)
	}
	if len(w.Rays) != 1 || w.Rays[0].Obstacle != "W-2" {
		t.Errorf("rays %+v", w.Rays)
	}
	if decoded.Areas[0].Status != compliance.NonCompliant {
		t.Errorf("status %q", decoded.Areas[0].Status)
	}
}
