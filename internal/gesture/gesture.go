package gesture

import (
	"time"

	"github.com/chewxy/math32"
)

// Kind is the raw pointer event type.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	DoubleClick
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case DoubleClick:
		return "dblclick"
	}
	return "unknown"
}

// PointerType tells mouse input from touch input.
type PointerType int

const (
	Mouse PointerType = iota
	Touch
)

func (p PointerType) String() string {
	if p == Touch {
		return "touch"
	}
	return "mouse"
}

// Event is one pointer sample. Touches is the number of simultaneous contacts (1 for a mouse).
type Event struct {
	Kind    Kind
	X, Y    float32
	Time    time.Time
	Touches int
	Pointer PointerType
}

// Gesture is the classification of a finished interaction.
type Gesture int

const (
	None Gesture = iota
	Tap
	Press
	Swipe
	Drag
	DoubleClickGesture
	MultiTouch
)

func (g Gesture) String() string {
	switch g {
	case Tap:
		return "tap"
	case Press:
		return "press"
	case Swipe:
		return "swipe"
	case Drag:
		return "drag"
	case DoubleClickGesture:
		return "double-click"
	case MultiTouch:
		return "multi-touch"
	}
	return "none"
}

// Result is what Handle decided for one event. Spin is true at most once per interaction.
// Throttled marks a tap that was dropped by the cooldown.
type Result struct {
	Gesture   Gesture
	Spin      bool
	Throttled bool
}

// Config holds the classification thresholds.
type Config struct {
	MoveThreshold float32       // pixels on either axis before an interaction counts as moved
	TapMax        time.Duration // pointer-up must come sooner than this for a tap
	Cooldown      time.Duration // minimum gap between accepted taps
}

// DefaultConfig returns 10px / 300ms / 1000ms.
func DefaultConfig() Config {
	return Config{
		MoveThreshold: 10,
		TapMax:        300 * time.Millisecond,
		Cooldown:      1000 * time.Millisecond,
	}
}

// Classifier turns a pointer stream into spin requests. It tracks a single pointer; interactions
// that ever see two or more contacts are left to the camera and never produce a tap.
type Classifier struct {
	cfg Config

	active bool
	startX float32
	startY float32
	start  time.Time
	moved  bool
	multi  bool

	lastAccepted time.Time
	accepted     bool
}

// NewClassifier returns a classifier with no interaction in progress.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Handle feeds one event and reports what, if anything, it triggered.
func (c *Classifier) Handle(ev Event) Result {
	switch ev.Kind {
	case Down:
		c.down(ev)
	case Move:
		c.move(ev)
	case Up:
		return c.up(ev)
	case DoubleClick:
		if ev.Pointer == Touch {
			return Result{}
		}
		return Result{Gesture: DoubleClickGesture, Spin: true}
	}
	return Result{}
}

func (c *Classifier) down(ev Event) {
	if ev.Touches >= 2 {
		// A second finger joins the current interaction or opens a pinch.
		if !c.active {
			c.active = true
			c.start = ev.Time
			c.startX, c.startY = ev.X, ev.Y
		}
		c.multi = true
		return
	}
	c.active = true
	c.startX, c.startY = ev.X, ev.Y
	c.start = ev.Time
	c.moved = false
	c.multi = false
}

func (c *Classifier) move(ev Event) {
	if !c.active {
		return
	}
	if ev.Touches >= 2 {
		c.multi = true
		return
	}
	if c.multi || c.moved {
		return
	}
	if math32.Abs(ev.X-c.startX) > c.cfg.MoveThreshold || math32.Abs(ev.Y-c.startY) > c.cfg.MoveThreshold {
		c.moved = true
	}
}

func (c *Classifier) up(ev Event) Result {
	if !c.active {
		return Result{}
	}
	elapsed := ev.Time.Sub(c.start)
	moved, multi := c.moved, c.multi
	c.reset()

	if multi {
		return Result{Gesture: MultiTouch}
	}
	short := elapsed < c.cfg.TapMax
	switch {
	case moved && short:
		return Result{Gesture: Swipe}
	case moved:
		return Result{Gesture: Drag}
	case !short:
		return Result{Gesture: Press}
	}
	if c.accepted && ev.Time.Sub(c.lastAccepted) < c.cfg.Cooldown {
		return Result{Gesture: Tap, Throttled: true}
	}
	c.accepted = true
	c.lastAccepted = ev.Time
	return Result{Gesture: Tap, Spin: true}
}

func (c *Classifier) reset() {
	c.active = false
	c.moved = false
	c.multi = false
	c.start = time.Time{}
}

// Active reports whether a pointer interaction is in progress.
func (c *Classifier) Active() bool {
	return c.active
}

// LastAccepted returns the time of the last accepted tap, and false if none has been accepted yet.
func (c *Classifier) LastAccepted() (time.Time, bool) {
	return c.lastAccepted, c.accepted
}
