// Package daylight computes the NEN 2057 obstruction angle α, the
// overhang angle β and the glazing area of window openings against the
// obstructions of a scene.
package daylight

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bouwcheck/daglicht/internal/geom"
	"github.com/bouwcheck/daglicht/internal/measure"
	"github.com/bouwcheck/daglicht/internal/scene"
	"github.com/bouwcheck/daglicht/internal/window"
)

const rad2deg = 180 / math.Pi

// Parameters written back onto windows.
const (
	ParamAlpha = "NEN2057_Alpha"
	ParamBeta  = "NEN2057_Beta"
	ParamArea  = "NEN2057_Ad"
)

// ParameterWriter stores computed values on a window in the model.
type ParameterWriter interface {
	SetParameter(windowID, name string, value float64) error
}

// Calculator runs the per-window geometry against a read-only scene.
// Windows are independent; a Calculator may be shared by goroutines
// computing different windows.
type Calculator struct {
	cfg   Config
	scene *scene.Index
	log   logrus.FieldLogger
}

// NewCalculator returns a calculator for one run.
func NewCalculator(cfg Config, ix *scene.Index, log logrus.FieldLogger) *Calculator {
	return &Calculator{cfg: cfg, scene: ix, log: log}
}

// Config returns the run configuration.
func (c *Calculator) Config() Config { return c.cfg }

// Compute runs the full pipeline for one window: glass bounds, β, the
// α fan with the overhang rule, and the glazing area. Degenerate input
// never fails; it leaves the affected fields undefined or at their
// code minimum.
func (c *Calculator) Compute(w window.Window) *WindowResult {
	g := c.cfg.Glazing
	res := &WindowResult{
		WindowID:        w.ID,
		Level:           w.Level,
		ReferenceHeight: g.ReferenceHeight(w),
	}
	res.GlassBottom, res.GlassTop = g.GlassBounds(w)
	log := c.log.WithField("window", w.ID)

	if !w.Box.Valid() {
		c.degenerate(res, "window has no bounding box")
		res.Glazing = g.Area(w, 0)
		log.Debug("no bounding box, angles left at defaults")
		return res
	}
	res.Center, res.Located = w.Box.Center(), true
	dir, ok := c.sightDirection(w)
	if !ok {
		c.degenerate(res, "facing has no horizontal component")
		res.Glazing = g.Area(w, 0)
		log.Debug("degenerate facing, angles left at defaults")
		return res
	}
	res.Direction = dir
	res.Origin = c.castOrigin(w, dir, res.ReferenceHeight)

	top := res.GlassTop
	beta := c.ComputeBeta(w, res.Origin, dir, res.GlassBottom, top)
	res.Beta, res.BetaRad = beta.Value, beta.Rad
	res.BetaReason, res.BetaSource, res.BetaPoint = beta.Reason, beta.Source, beta.Point
	res.Section = beta.Section
	res.GlassTop = beta.GlassTop
	res.EdgeTests, res.BudgetExhausted = beta.EdgeTests, beta.Exhausted

	res.AlphaFan, res.Rays = c.ComputeAlpha(w, res.Origin, dir)
	res.Alpha = measure.Computed(res.AlphaFan)
	c.applyOverhangRule(res)

	near := c.scene.Intersecting(w.Box.Expand(c.cfg.HostWallTolerance), nil)
	trim := g.TopObstruction(w, res.GlassBottom, top, near)
	res.Glazing = g.Area(w, trim)

	log.WithFields(logrus.Fields{
		"alpha": res.Alpha.Format("%.2f"),
		"beta":  res.Beta.Format("%.2f"),
		"area":  res.Glazing.Area.Format("%.3f"),
	}).Debug("window computed")
	return res
}

func (c *Calculator) degenerate(res *WindowResult, reason string) {
	res.AlphaFan = c.cfg.AlphaMin
	res.Alpha = measure.Computed(c.cfg.AlphaMin)
	res.AlphaNote = reason
	res.Beta = measure.NotApplicable(reason)
	res.BetaRad = res.Beta
}

// Run computes every window in order and writes the results back
// through pw when it is not nil. Write failures are logged and
// otherwise ignored.
func (c *Calculator) Run(windows []window.Window, pw ParameterWriter) []*WindowResult {
	out := make([]*WindowResult, 0, len(windows))
	var failed int
	for _, w := range windows {
		res := c.Compute(w)
		if pw != nil {
			failed += c.annotate(res, pw)
		}
		out = append(out, res)
	}
	c.log.WithFields(logrus.Fields{
		"windows":        len(out),
		"obstructions":   c.scene.Len(),
		"failed_updates": failed,
	}).Info("daylight calculation finished")
	return out
}

func (c *Calculator) annotate(res *WindowResult, pw ParameterWriter) (failed int) {
	write := func(name string, v measure.Value) {
		x, ok := v.Get()
		if !ok {
			return
		}
		if err := pw.SetParameter(res.WindowID, name, x); err != nil {
			failed++
			c.log.WithFields(logrus.Fields{"window": res.WindowID, "parameter": name}).
				WithError(err).Debug("could not write parameter")
		}
	}
	write(ParamAlpha, res.Alpha)
	write(ParamBeta, res.Beta)
	write(ParamArea, res.Glazing.Area)
	return failed
}

// sightDirection is the horizontal direction the fan looks in.
func (c *Calculator) sightDirection(w window.Window) (r3.Vec, bool) {
	f := w.Facing
	if c.cfg.FlipFacing {
		f = r3.Scale(-1, f)
	}
	return geom.Horizontal(f)
}

// hostWall finds the wall the window sits in: the declared host, or
// else the first parallel wall whose solid spans the window center
// across its thickness.
func (c *Calculator) hostWall(w window.Window, dir r3.Vec) *scene.Obstruction {
	center := w.Box.Center()
	tol := c.cfg.HostWallTolerance
	var found *scene.Obstruction
	c.scene.NearXY(center, tol, func(o *scene.Obstruction) bool {
		if found != nil || o.Category != scene.Wall {
			return false
		}
		if w.HostWall != "" {
			if o.ID == w.HostWall {
				found = o
			}
			return false
		}
		if !o.Box.Expand(tol).ContainsXY(center) || !c.parallel(o, dir) {
			return false
		}
		if lo, hi := extent(o, center, dir); lo <= tol && hi >= -tol {
			found = o
		}
		return false
	})
	return found
}

// castOrigin moves the window center along the sight direction onto
// the outer face of its host wall and puts it at the reference height.
// Without a host wall the raw center is used.
func (c *Calculator) castOrigin(w window.Window, dir r3.Vec, zRef float64) r3.Vec {
	origin := w.Box.Center()
	if host := c.hostWall(w, dir); host != nil {
		if _, reach := extent(host, origin, dir); reach > 0 {
			origin = r3.Add(origin, r3.Scale(reach, dir))
		}
	}
	origin.Z = zRef
	return origin
}

// extent returns the range of o's solid along axis, measured from p.
// The box stands in when there is no mesh.
func extent(o *scene.Obstruction, p, axis r3.Vec) (lo, hi float64) {
	verts := o.Mesh.Verts
	if len(verts) == 0 {
		corners := o.Box.Corners()
		verts = corners[:]
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		d := r3.Dot(r3.Sub(v, p), axis)
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	return lo, hi
}

// parallel reports whether a wall runs along the facade.
func (c *Calculator) parallel(o *scene.Obstruction, dir r3.Vec) bool {
	run, ok := o.Mesh.RunDirection()
	if !ok {
		run = o.Box.RunDirection()
	}
	return math.Abs(r3.Dot(run, dir)) < c.cfg.ParallelTolerance
}

// hostAssembly reports whether o is part of the window's own wall:
// its declared host, or a parallel wall touching the window box.
func (c *Calculator) hostAssembly(o *scene.Obstruction, w window.Window, dir r3.Vec) bool {
	if w.HostWall != "" && o.ID == w.HostWall {
		return true
	}
	return o.Box.BoxDistance(w.Box) <= c.cfg.HostWallTolerance && c.parallel(o, dir)
}
