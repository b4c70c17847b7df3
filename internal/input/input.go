package input

import (
	"eightball/internal/clock"
	"eightball/internal/gesture"

	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is the input gathered in one tick.
type Frame struct {
	Events []gesture.Event
	// DragX/DragY is single-pointer movement in pixels while the button is held.
	DragX, DragY float32
	Wheel        float32
	// Pinch is previous/current finger spacing while two fingers are down; 0 when not pinching.
	Pinch float32
}

// Poller turns raylib's polled input into pointer events. raylib reports a held left mouse
// button as one touch point on desktop, so a single contact is always treated as a mouse and
// only two or more contacts count as touch.
type Poller struct {
	clock clock.Clock

	down      bool
	multi     bool // the current interaction has seen two or more contacts
	last      rl.Vector2
	pinchDist float32
}

// NewPoller timestamps events with clk.
func NewPoller(clk clock.Clock) *Poller {
	return &Poller{clock: clk}
}

// Poll reads the current input state. Call once per frame.
func (p *Poller) Poll() Frame {
	var f Frame
	now := p.clock.Now()
	pos := rl.GetMousePosition()
	contacts := int(rl.GetTouchPointCount())

	if contacts >= 2 {
		a, b := rl.GetTouchPosition(0), rl.GetTouchPosition(1)
		dist := math32.Hypot(a.X-b.X, a.Y-b.Y)
		if !p.multi {
			f.Events = append(f.Events, gesture.Event{Kind: gesture.Down, X: a.X, Y: a.Y, Time: now, Touches: contacts, Pointer: gesture.Touch})
		} else if p.pinchDist > 0 && dist > 0 {
			f.Pinch = p.pinchDist / dist
			f.Events = append(f.Events, gesture.Event{Kind: gesture.Move, X: a.X, Y: a.Y, Time: now, Touches: contacts, Pointer: gesture.Touch})
		}
		p.pinchDist = dist
		p.multi = true
		p.down = true
		p.last = pos
		f.Wheel = rl.GetMouseWheelMove()
		return f
	}
	p.pinchDist = 0

	pointer := gesture.Mouse
	if p.multi {
		pointer = gesture.Touch
	}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		p.down = true
		f.Events = append(f.Events, gesture.Event{Kind: gesture.Down, X: pos.X, Y: pos.Y, Time: now, Touches: 1, Pointer: gesture.Mouse})
	case p.down && !rl.IsMouseButtonDown(rl.MouseButtonLeft):
		p.down = false
		p.multi = false
		f.Events = append(f.Events, gesture.Event{Kind: gesture.Up, X: pos.X, Y: pos.Y, Time: now, Touches: contacts, Pointer: pointer})
	case p.down && (pos.X != p.last.X || pos.Y != p.last.Y):
		f.DragX, f.DragY = pos.X-p.last.X, pos.Y-p.last.Y
		if !p.multi {
			f.Events = append(f.Events, gesture.Event{Kind: gesture.Move, X: pos.X, Y: pos.Y, Time: now, Touches: 1, Pointer: pointer})
		}
	}
	p.last = pos
	f.Wheel = rl.GetMouseWheelMove()
	return f
}
