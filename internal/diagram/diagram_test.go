package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sample() WindowDiagramData {
	d := WindowDiagramData{
		WindowID:        "K-1",
		Origin:          Point{0, 0},
		Obstacles:       []Obstacle{{Min: Point{-10, -4.2}, Max: Point{10, -4}, Label: "wall W-2"}},
		GlassBottom:     0.977,
		GlassTop:        2.34,
		ReferenceHeight: 0.977,
		SectionPoints:   []Point{{1.5, 2.6}, {1.5, 2.8}},
		BetaPoint:       &Point{1.5, 2.6},
		Radius:          5,
		Alpha:           31.2,
		Beta:            57.9,
	}
	for off := -50.0; off <= 50; off += 10 {
		hit := math.Abs(off) < 36.87
		alpha := 20.0
		if hit {
			alpha = 26.8
		}
		d.Rays = append(d.Rays, Ray{From: Point{0, 0}, To: Point{0, -4}, Offset: off, Alpha: alpha, Hit: hit})
	}
	return d
}

func TestAlphaChart(t *testing.T) {
	out := AlphaChart(sample())
	if !strings.Contains(out, "average 31.20°") {
		t.Errorf("caption missing:\n%s", out)
	}
	if AlphaChart(WindowDiagramData{}) != "" {
		t.Error("chart drawn without rays")
	}
}

func TestDrawASCIISection(t *testing.T) {
	out := DrawASCIISection(sample())
	for _, want := range []string{"◆", "●", "█", "β = 57.90°"} {
		if !strings.Contains(out, want) {
			t.Errorf("section lacks %q:\n%s", want, out)
		}
	}

	d := sample()
	d.Beta = math.NaN()
	d.BetaPoint = nil
	d.SectionPoints = nil
	if out := DrawASCIISection(d); !strings.Contains(out, "β undefined") {
		t.Errorf("undefined β not shown:\n%s", out)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("K-1", []string{"α = 20.00°", "Ad = 1.199 m²"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("%d lines:\n%s", len(lines), out)
	}
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("ragged box:\n%s", out)
			break
		}
	}
}

func TestExportWindowDiagram(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out", "fan.svg")
	if err := ExportWindowDiagram(sample(), name); err != nil {
		t.Fatalf("ExportWindowDiagram: %v", err)
	}
	for _, f := range []string{name, SectionFilename(name)} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}
	if got := SectionFilename("a/b.png"); got != "a/b-section.png" {
		t.Errorf("SectionFilename = %q", got)
	}
}
