package nen

import (
	"math"
	"testing"
)

func TestCbGridPoints(t *testing.T) {
	for _, band := range CbTable {
		mid := (band.BetaFrom + band.BetaTo) / 2
		for i, want := range band.Values {
			alpha := AlphaMin + float64(i)
			if got := Cb(alpha, mid); got != want {
				t.Errorf("Cb(%v, %v) = %v, want %v", alpha, mid, got, want)
			}
		}
	}
}

func TestCbInterpolation(t *testing.T) {
	b := &CbTable[0]
	got := Cb(20.5, 10)
	want := (b.Values[0] + b.Values[1]) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Cb(20.5, 10) = %v, want %v", got, want)
	}

	// Monotonic between adjacent columns for every band.
	for _, band := range CbTable {
		band := band
		for i := 0; i+1 < len(band.Values); i++ {
			lo, hi := band.Values[i], band.Values[i+1]
			prev := lo
			for step := 1; step <= 10; step++ {
				v := band.At(AlphaMin + float64(i) + float64(step)/10)
				if (hi <= lo && v > prev+1e-12) || (hi >= lo && v < prev-1e-12) {
					t.Fatalf("band %v: not monotonic at α=%v", band.BetaFrom, AlphaMin+float64(i)+float64(step)/10)
				}
				prev = v
			}
		}
	}
}

func TestCbClampAndBands(t *testing.T) {
	tests := []struct {
		alpha, beta float64
		want        float64
	}{
		{10, 0, CbTable[0].Values[0]},
		{45, 0, CbTable[0].Values[12]},
		{20, -15, CbTable[0].Values[0]},
		{20, 20, CbTable[1].Values[0]},
		{20, 24.999, CbTable[1].Values[0]},
		{20, 25, CbTable[2].Values[0]},
		{20, 89, CbTable[len(CbTable)-1].Values[0]},
		{20, 120, CbTable[len(CbTable)-1].Values[0]},
		{math.NaN(), math.NaN(), CbTable[0].Values[0]},
	}
	for _, tt := range tests {
		if got := Cb(tt.alpha, tt.beta); got != tt.want {
			t.Errorf("Cb(%v, %v) = %v, want %v", tt.alpha, tt.beta, got, tt.want)
		}
	}
}

func TestCbTableShape(t *testing.T) {
	for i, band := range CbTable {
		if i > 0 && band.BetaFrom != CbTable[i-1].BetaTo {
			t.Errorf("band %d starts at %v, previous ends at %v", i, band.BetaFrom, CbTable[i-1].BetaTo)
		}
		for _, v := range band.Values {
			if v < 0 || v > 1 {
				t.Errorf("band %d has factor %v outside [0,1]", i, v)
			}
		}
	}
}

func TestComplianceRatio(t *testing.T) {
	if got := ComplianceRatio(0.55*20, 20); math.Abs(got-1) > 1e-12 {
		t.Errorf("ratio at exact requirement = %v, want 1", got)
	}
	if got := ComplianceRatio(5, 0); got != 0 {
		t.Errorf("ratio for zero area = %v, want 0", got)
	}
	prev := -1.0
	for ae := 0.0; ae <= 20; ae += 0.5 {
		r := ComplianceRatio(ae, 20)
		if r < prev {
			t.Fatalf("ratio decreased at ΣAe=%v", ae)
		}
		prev = r
	}
	if got := Deficit(8, 20); math.Abs(got-3) > 1e-12 {
		t.Errorf("Deficit(8, 20) = %v, want 3", got)
	}
	if got := Deficit(12, 20); got != 0 {
		t.Errorf("Deficit(12, 20) = %v, want 0", got)
	}
	if got := AreaReduction(5.5, 20); math.Abs(got-10) > 1e-9 {
		t.Errorf("AreaReduction(5.5, 20) = %v, want 10", got)
	}
}
