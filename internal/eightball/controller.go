package eightball

import (
	"time"

	"eightball/internal/anim"
	"eightball/internal/config"
	"eightball/internal/gesture"
	"eightball/internal/logger"
	"eightball/internal/shake"
	"eightball/internal/spin"
	"eightball/internal/tween"

	"github.com/go-gl/mathgl/mgl32"
)

// Pulser gives physical feedback for an accepted spin. *haptic.Pulser satisfies it.
type Pulser interface {
	Pulse()
}

// Random is shared by clip choice, roll orientation and shake jitter. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Config gathers the tunables the controller hands to its parts.
type Config struct {
	Gesture           gesture.Config
	DoubleClickWindow time.Duration
	Spin              spin.Config
	ClipTimeScale     float32
	ShakeIntensity    float32
	ShakeDuration     float32
	ShakeInterval     float32
}

// DefaultConfig matches config.Default().
func DefaultConfig() Config {
	return FromConfig(config.Default())
}

// FromConfig converts the file configuration. Ease names that do not resolve fall back to linear;
// config.Validate rejects them before this point.
func FromConfig(c config.Config) Config {
	sc := spin.DefaultConfig()
	sc.Mode = spin.ParseMode(c.Spin.Mode)
	sc.Axis = mgl32.Vec3{c.Spin.Axis[0], c.Spin.Axis[1], c.Spin.Axis[2]}
	sc.Overlap = config.Seconds(c.Spin.OverlapMs)
	if len(c.Spin.Phases) > 0 {
		sc.Phases = make([]tween.Phase, len(c.Spin.Phases))
		for i, p := range c.Spin.Phases {
			sc.Phases[i] = tween.Phase{
				Name:     p.Name,
				Delta:    p.Delta,
				Duration: config.Seconds(p.DurationMs),
				Ease:     ease(p.Ease),
			}
		}
	}
	if c.Spin.RollMs > 0 {
		sc.RollDuration = config.Seconds(c.Spin.RollMs)
	}
	sc.RollEase = ease(c.Spin.RollEase)
	return Config{
		Gesture: gesture.Config{
			MoveThreshold: c.Gesture.MoveThresholdPx,
			TapMax:        config.Ms(c.Gesture.TapMaxMs),
			Cooldown:      config.Ms(c.Gesture.CooldownMs),
		},
		DoubleClickWindow: config.Ms(c.Gesture.DoubleClickMs),
		Spin:              sc,
		ClipTimeScale:     c.Spin.ClipTimeScale,
		ShakeIntensity:    c.Shake.Intensity,
		ShakeDuration:     config.Seconds(c.Shake.DurationMs),
		ShakeInterval:     config.Seconds(c.Shake.IntervalMs),
	}
}

func ease(name string) tween.Ease {
	if e, ok := tween.ByName(name); ok {
		return e
	}
	return tween.Linear
}

// Controller owns the interaction state of one ball: the gesture classifier, the spin sequencer,
// the shake and the haptic pulser. Nothing can spin until Attach supplies the loaded model.
type Controller struct {
	cfg    Config
	log    *logger.Logger
	rng    Random
	pulser Pulser

	classifier *gesture.Classifier
	clicks     *gesture.DoubleClickDetector

	seq   *spin.Sequencer
	shake *shake.Shake
	mixer *anim.Mixer
	clips []string

	spins int
}

// New returns a controller waiting for its model. pulser may be nil.
func New(cfg Config, rng Random, pulser Pulser, log *logger.Logger) *Controller {
	return &Controller{
		cfg:        cfg,
		log:        log,
		rng:        rng,
		pulser:     pulser,
		classifier: gesture.NewClassifier(cfg.Gesture),
		clicks:     gesture.NewDoubleClickDetector(cfg.DoubleClickWindow, cfg.Gesture.MoveThreshold),
	}
}

// Attach wires the loaded model: die is the spin target, root is the shaken ball, clips are the
// animation clips in model order.
func (c *Controller) Attach(die spin.Target, root shake.Positioner, clips []anim.Clip) *anim.Mixer {
	c.mixer = anim.NewMixer(clips, c.cfg.ClipTimeScale)
	c.clips = make([]string, len(clips))
	for i, cl := range clips {
		c.clips[i] = cl.Name
	}
	c.seq = spin.New(c.cfg.Spin, die, c.mixer, c.rng)
	c.seq.OnClip = func(i int) {
		c.log.Info("playing clip", "index", i, "name", c.clips[i])
	}
	c.shake = shake.New(root, c.rng, c.cfg.ShakeInterval)
	c.log.Info("found animation clips", "count", len(clips))
	return c.mixer
}

// Ready reports whether a model is attached.
func (c *Controller) Ready() bool {
	return c.seq != nil
}

// HandlePointer feeds one pointer event through classification and triggers a spin when it asks for one.
func (c *Controller) HandlePointer(ev gesture.Event) gesture.Result {
	res := c.classifier.Handle(ev)
	if ev.Kind == gesture.Up {
		switch res.Gesture {
		case gesture.Tap, gesture.Press:
			if dbl, ok := c.clicks.Click(ev); ok {
				if r := c.classifier.Handle(dbl); r.Spin {
					c.Spin(r.Gesture)
				}
			}
		case gesture.None:
		default:
			c.clicks.Reset()
		}
	}
	if res.Throttled {
		c.log.Debug("tap dropped by cooldown")
	}
	if res.Spin {
		c.Spin(res.Gesture)
	}
	return res
}

// Spin requests a spin. It is dropped before the model is attached or while a rotation runs.
func (c *Controller) Spin(cause gesture.Gesture) bool {
	if c.seq == nil {
		c.log.Debug("spin ignored, model not loaded", "cause", cause.String())
		return false
	}
	if !c.seq.Request() {
		c.log.Debug("spin ignored, already spinning", "cause", cause.String())
		return false
	}
	c.spins++
	c.shake.Start(c.cfg.ShakeIntensity, c.cfg.ShakeDuration)
	if c.pulser != nil {
		c.pulser.Pulse()
	}
	c.log.Info("spin", "cause", cause.String(), "count", c.spins)
	return true
}

// Update advances clips, the spin sequence and the shake by dt seconds.
func (c *Controller) Update(dt float32) {
	if c.seq == nil {
		return
	}
	c.mixer.Update(dt)
	c.seq.Update(dt)
	c.shake.Update(dt)
}

// State is the sequencer state, Idle before load.
func (c *Controller) State() spin.State {
	if c.seq == nil {
		return spin.Idle
	}
	return c.seq.State()
}

// Spins counts accepted spins.
func (c *Controller) Spins() int {
	return c.spins
}

// Shaking reports whether the ball is currently jittering.
func (c *Controller) Shaking() bool {
	return c.shake != nil && c.shake.Active()
}

// Status is a one-line summary for the debug overlay.
func (c *Controller) Status() string {
	s := "state: " + c.State().String()
	if c.Shaking() {
		s += " (shake)"
	}
	return s
}
