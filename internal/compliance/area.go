// Package compliance turns per-window results into the NEN 2057
// equivalent daylight area and checks it per habitable area.
package compliance

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// HabitableArea is a verblijfsgebied: a named plan polygon, possibly
// made of several boundary loops, with its floor area.
type HabitableArea struct {
	Name  string
	Level string

	// Area is the floor area in m². Zero means it is derived from the
	// loops.
	Area float64

	Loops []orb.Ring
}

// PlanArea returns Area, or the summed area of the loops when no area
// was given. Loops wound against the first loop are holes.
func (a HabitableArea) PlanArea() float64 {
	if a.Area > 0 {
		return a.Area
	}
	var total, outer float64
	for i, l := range a.Loops {
		s := signedArea(l)
		if i == 0 {
			outer = s
		}
		if s*outer < 0 {
			total -= math.Abs(s)
		} else {
			total += math.Abs(s)
		}
	}
	return math.Max(0, total)
}

func signedArea(r orb.Ring) float64 {
	a := math.Abs(planar.Area(r))
	if r.Orientation() == orb.CW {
		return -a
	}
	return a
}

// Contains reports whether p lies inside any of the loops. A point
// exactly on a boundary is classified by the crossing rule and so is
// inside for some edges and outside for others, but always the same
// way for the same input.
func (a HabitableArea) Contains(p orb.Point) bool {
	for _, l := range a.Loops {
		if len(l) < 3 || !l.Bound().Contains(p) {
			continue
		}
		if ringContains(l, p) {
			return true
		}
	}
	return false
}

// ringContains counts the crossings of a ray from p towards +X with
// the ring's edges. Horizontal edges never cross. The half-open test
// on y counts a vertex shared by two edges once.
func ringContains(r orb.Ring, p orb.Point) bool {
	in := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if a[1] == b[1] {
			continue
		}
		if (a[1] > p[1]) == (b[1] > p[1]) {
			continue
		}
		x := a[0] + (p[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
		if p[0] < x {
			in = !in
		}
	}
	return in
}
