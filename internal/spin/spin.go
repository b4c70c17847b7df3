package spin

import (
	"math"

	"eightball/internal/tween"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the sequencer phase.
type State int

const (
	Idle State = iota
	RotationPhase
	ClipPlaying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RotationPhase:
		return "rotating"
	case ClipPlaying:
		return "clip"
	}
	return "unknown"
}

// Target is the mesh whose orientation the sequence drives (the die, or the whole ball as fallback).
type Target interface {
	Orientation() mgl32.Quat
	SetOrientation(mgl32.Quat)
}

// Clips is the animation clip pool. anim.Mixer satisfies it.
type Clips interface {
	ClipCount() int
	StopAll()
	PlayOnce(i int)
	Playing() bool
}

// Random picks clips and roll orientations. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Mode selects the rotation motion.
type Mode int

const (
	// ModeSpin is a four-phase wind-up/wind-down around one axis.
	ModeSpin Mode = iota
	// ModeRoll slerps to a uniformly random orientation.
	ModeRoll
)

// ParseMode maps a config string to a Mode; anything but "roll" is ModeSpin.
func ParseMode(s string) Mode {
	if s == "roll" {
		return ModeRoll
	}
	return ModeSpin
}

// Config describes the rotation motion.
type Config struct {
	Mode    Mode
	Axis    mgl32.Vec3
	Phases  []tween.Phase
	Overlap float32

	RollDuration float32
	RollEase     tween.Ease
}

// DefaultPhases is the stock spin: wind-up, fast spin, coast, settle. Deltas are radians.
func DefaultPhases() []tween.Phase {
	return []tween.Phase{
		{Name: "wind-up", Delta: -0.35, Duration: 0.25, Ease: tween.Power2Out},
		{Name: "spin", Delta: 3 * math32.Pi, Duration: 0.45, Ease: tween.Power2In},
		{Name: "coast", Delta: 1.5 * math32.Pi, Duration: 0.40, Ease: tween.Linear},
		{Name: "settle", Delta: math32.Pi / 2, Duration: 0.45, Ease: tween.BackOut},
	}
}

// DefaultConfig spins around +Y with phases overlapping by 50ms.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeSpin,
		Axis:         mgl32.Vec3{0, 1, 0},
		Phases:       DefaultPhases(),
		Overlap:      0.05,
		RollDuration: 0.6,
		RollEase:     tween.Power2InOut,
	}
}

// motion produces the target orientation over time.
type motion interface {
	advance(dt float32) (mgl32.Quat, bool)
}

type axisSpin struct {
	start  mgl32.Quat
	axis   mgl32.Vec3
	player *tween.Player
}

func (m *axisSpin) advance(dt float32) (mgl32.Quat, bool) {
	angle, done := m.player.Advance(dt)
	return mgl32.QuatRotate(angle, m.axis).Mul(m.start).Normalize(), done
}

type roll struct {
	from, to mgl32.Quat
	duration float32
	ease     tween.Ease
	elapsed  float32
}

func (m *roll) advance(dt float32) (mgl32.Quat, bool) {
	m.elapsed += dt
	if m.duration <= 0 || m.elapsed >= m.duration {
		return m.to, true
	}
	return mgl32.QuatSlerp(m.from, m.to, m.ease(m.elapsed/m.duration)), false
}

// Sequencer runs one spin at a time: Idle -> RotationPhase -> ClipPlaying -> Idle.
// A request is only refused while rotating; once the clip is issued a new spin may start while
// the clip finishes.
type Sequencer struct {
	cfg    Config
	target Target
	clips  Clips
	rng    Random

	state  State
	motion motion
	chain  *tween.Chain

	// OnClip, if set, is called with the index of each clip started.
	OnClip func(index int)
}

// New returns an idle sequencer. clips may be nil for a model without animations.
func New(cfg Config, target Target, clips Clips, rng Random) *Sequencer {
	if cfg.Axis.Len() == 0 {
		cfg.Axis = mgl32.Vec3{0, 1, 0}
	}
	cfg.Axis = cfg.Axis.Normalize()
	if len(cfg.Phases) == 0 {
		cfg.Phases = DefaultPhases()
	}
	if cfg.RollEase == nil {
		cfg.RollEase = tween.Power2InOut
	}
	return &Sequencer{
		cfg:    cfg,
		target: target,
		clips:  clips,
		rng:    rng,
		chain:  tween.NewChain(cfg.Overlap, cfg.Phases...),
	}
}

// State returns the current phase.
func (s *Sequencer) State() State {
	return s.state
}

// Active reports whether a rotation is in progress (the is-active guard).
func (s *Sequencer) Active() bool {
	return s.state == RotationPhase
}

// Duration is the wall-clock length of the rotation for the configured mode.
func (s *Sequencer) Duration() float32 {
	if s.cfg.Mode == ModeRoll {
		return s.cfg.RollDuration
	}
	return s.chain.Duration()
}

// Request starts a spin. It returns false, changing nothing, while a rotation is running.
func (s *Sequencer) Request() bool {
	if s.state == RotationPhase || s.target == nil {
		return false
	}
	start := s.target.Orientation()
	switch s.cfg.Mode {
	case ModeRoll:
		s.motion = &roll{
			from:     start,
			to:       RandomOrientation(s.rng),
			duration: s.cfg.RollDuration,
			ease:     s.cfg.RollEase,
		}
	default:
		s.motion = &axisSpin{start: start, axis: s.cfg.Axis, player: tween.NewPlayer(s.chain)}
	}
	s.state = RotationPhase
	return true
}

// Update advances the sequence by dt seconds.
func (s *Sequencer) Update(dt float32) {
	switch s.state {
	case RotationPhase:
		q, done := s.motion.advance(dt)
		s.target.SetOrientation(q)
		if done {
			s.motion = nil
			s.playClip()
		}
	case ClipPlaying:
		if s.clips == nil || !s.clips.Playing() {
			s.state = Idle
		}
	}
}

func (s *Sequencer) playClip() {
	if s.clips == nil || s.clips.ClipCount() == 0 {
		s.state = Idle
		return
	}
	i := PickClip(s.rng, s.clips.ClipCount())
	s.clips.StopAll()
	s.clips.PlayOnce(i)
	s.state = ClipPlaying
	if s.OnClip != nil {
		s.OnClip(i)
	}
}

// PickClip returns floor(r * n), clamped to n-1 for a source that can return 1.
func PickClip(rng Random, n int) int {
	i := int(math.Floor(rng.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// RandomOrientation builds a quaternion from three uniform Euler angles in XYZ order.
func RandomOrientation(rng Random) mgl32.Quat {
	a := float32(rng.Float64()) * 2 * math32.Pi
	b := float32(rng.Float64()) * 2 * math32.Pi
	c := float32(rng.Float64()) * 2 * math32.Pi
	return mgl32.AnglesToQuat(a, b, c, mgl32.XYZ)
}
