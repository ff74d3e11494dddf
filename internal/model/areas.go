package model

import (
	"github.com/paulmach/orb"

	"github.com/bouwcheck/daglicht/internal/compliance"
)

// HabitableAreas returns the building's habitable areas with closed
// boundary loops.
func (b *Building) HabitableAreas() []compliance.HabitableArea {
	out := make([]compliance.HabitableArea, 0, len(b.Areas))
	for _, a := range b.Areas {
		ha := compliance.HabitableArea{Name: a.Name, Level: a.Level, Area: a.Area}
		for _, loop := range a.Loops {
			r := make(orb.Ring, 0, len(loop)+1)
			for _, p := range loop {
				r = append(r, orb.Point(p))
			}
			if !r.Closed() {
				r = append(r, r[0])
			}
			ha.Loops = append(ha.Loops, r)
		}
		out = append(out, ha)
	}
	return out
}
