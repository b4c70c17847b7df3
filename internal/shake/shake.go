package shake

import "github.com/go-gl/mathgl/mgl32"

// Positioner is anything with a world position that can be jittered (the ball root).
type Positioner interface {
	Position() mgl32.Vec3
	SetPosition(mgl32.Vec3)
}

// Random is the jitter source. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// DefaultInterval matches a 60Hz refresh.
const DefaultInterval = 0.016

// Shake jitters a target on X and Y around its rest position on its own interval, then puts it
// back exactly. It runs independently of the spin sequence; a new Start while running restarts
// the timer but keeps the original rest position.
type Shake struct {
	target   Positioner
	rng      Random
	interval float32

	active    bool
	rest      mgl32.Vec3
	intensity float32
	duration  float32
	elapsed   float32
	sinceTick float32
}

// New returns an idle shake for target. interval is the jitter period in seconds.
func New(target Positioner, rng Random, interval float32) *Shake {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Shake{target: target, rng: rng, interval: interval}
}

// Start begins a shake of the given peak-to-peak intensity lasting duration seconds.
func (s *Shake) Start(intensity, duration float32) {
	if s.target == nil {
		return
	}
	if !s.active {
		s.rest = s.target.Position()
	}
	s.active = true
	s.intensity = intensity
	s.duration = duration
	s.elapsed = 0
	s.sinceTick = 0
}

// Update advances the shake by dt seconds.
func (s *Shake) Update(dt float32) {
	if !s.active {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.duration {
		s.target.SetPosition(s.rest)
		s.active = false
		return
	}
	s.sinceTick += dt
	if s.sinceTick < s.interval {
		return
	}
	for s.sinceTick >= s.interval {
		s.sinceTick -= s.interval
	}
	p := s.rest
	p[0] += (float32(s.rng.Float64()) - 0.5) * s.intensity
	p[1] += (float32(s.rng.Float64()) - 0.5) * s.intensity
	s.target.SetPosition(p)
}

// Active reports whether the shake is still running.
func (s *Shake) Active() bool {
	return s.active
}

// Rest is the position the target returns to when the shake ends.
func (s *Shake) Rest() mgl32.Vec3 {
	return s.rest
}
