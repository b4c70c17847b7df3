package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the camera off the poles where the up vector degenerates.
const polarEpsilon = 1e-4

// Config constrains the orbit.
type Config struct {
	Damping      float32 // fraction of the pending rotation applied per update; 0 disables damping
	RotateSpeed  float32
	ZoomSpeed    float32
	MinDistance  float32
	MaxDistance  float32
	FixedAzimuth bool // pin horizontal rotation at the starting azimuth
}

// DefaultConfig mirrors the usual orbit-control defaults with damping 0.05.
func DefaultConfig() Config {
	return Config{
		Damping:      0.05,
		RotateSpeed:  1,
		ZoomSpeed:    1,
		MinDistance:  2,
		MaxDistance:  20,
		FixedAzimuth: true,
	}
}

// Controller orbits a camera around a target on a sphere. Pointer drags queue angular deltas;
// Update applies a damped share of them each frame.
type Controller struct {
	cfg    Config
	target mgl32.Vec3

	azimuth  float32 // around +Y, 0 looks down -Z from +Z
	polar    float32 // from +Y
	distance float32

	minAzimuth, maxAzimuth float32

	pendingAzimuth float32
	pendingPolar   float32
}

// New places the camera at position looking at target.
func New(position, target mgl32.Vec3, cfg Config) *Controller {
	c := &Controller{cfg: cfg, target: target}
	off := position.Sub(target)
	c.distance = off.Len()
	if c.distance > 0 {
		c.azimuth = math32.Atan2(off[0], off[2])
		c.polar = math32.Acos(clamp(off[1]/c.distance, -1, 1))
	}
	c.minAzimuth, c.maxAzimuth = math32.Inf(-1), math32.Inf(1)
	if cfg.FixedAzimuth {
		c.minAzimuth, c.maxAzimuth = c.azimuth, c.azimuth
	}
	return c
}

// Rotate queues a drag of (dx, dy) pixels on a viewport of the given height.
func (c *Controller) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	c.pendingAzimuth -= 2 * math32.Pi * dx / viewportHeight * c.cfg.RotateSpeed
	c.pendingPolar -= 2 * math32.Pi * dy / viewportHeight * c.cfg.RotateSpeed
}

// Zoom dollies by wheel steps; positive steps move closer.
func (c *Controller) Zoom(steps float32) {
	if steps == 0 {
		return
	}
	c.Dolly(math32.Pow(0.95, steps*c.cfg.ZoomSpeed))
}

// Dolly scales the distance by factor (<1 moves closer), clamped to the configured range.
// A two-finger pinch feeds the ratio of previous to current finger spacing here.
func (c *Controller) Dolly(factor float32) {
	if factor <= 0 {
		return
	}
	c.distance = clamp(c.distance*factor, c.cfg.MinDistance, c.cfg.MaxDistance)
}

// Update applies pending rotation. With damping the remainder decays so motion eases out over
// later frames. It returns false once nothing is pending.
func (c *Controller) Update() bool {
	if c.pendingAzimuth == 0 && c.pendingPolar == 0 {
		return false
	}
	share := float32(1)
	if c.cfg.Damping > 0 {
		share = c.cfg.Damping
	}
	c.azimuth = clamp(c.azimuth+c.pendingAzimuth*share, c.minAzimuth, c.maxAzimuth)
	c.polar = clamp(c.polar+c.pendingPolar*share, polarEpsilon, math32.Pi-polarEpsilon)
	if c.cfg.Damping > 0 {
		c.pendingAzimuth *= 1 - c.cfg.Damping
		c.pendingPolar *= 1 - c.cfg.Damping
		if math32.Abs(c.pendingAzimuth) < 1e-6 {
			c.pendingAzimuth = 0
		}
		if math32.Abs(c.pendingPolar) < 1e-6 {
			c.pendingPolar = 0
		}
	} else {
		c.pendingAzimuth, c.pendingPolar = 0, 0
	}
	return true
}

// Position is the camera position for the current angles.
func (c *Controller) Position() mgl32.Vec3 {
	sinP := math32.Sin(c.polar)
	return c.target.Add(mgl32.Vec3{
		c.distance * sinP * math32.Sin(c.azimuth),
		c.distance * math32.Cos(c.polar),
		c.distance * sinP * math32.Cos(c.azimuth),
	})
}

// Target is the point the camera looks at.
func (c *Controller) Target() mgl32.Vec3 {
	return c.target
}

// Angles returns azimuth, polar and distance.
func (c *Controller) Angles() (azimuth, polar, distance float32) {
	return c.azimuth, c.polar, c.distance
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
