package gesture

import (
	"time"

	"github.com/chewxy/math32"
)

// DoubleClickDetector pairs two mouse clicks into a DoubleClick event, the way a browser
// raises dblclick: the second click must land within Window of the first and within Slop pixels.
// A third click starts a new pair.
type DoubleClickDetector struct {
	Window time.Duration
	Slop   float32

	pending bool
	lastX   float32
	lastY   float32
	last    time.Time
}

// NewDoubleClickDetector returns a detector with the given pairing window and a slop equal to the tap move threshold.
func NewDoubleClickDetector(window time.Duration, slop float32) *DoubleClickDetector {
	return &DoubleClickDetector{Window: window, Slop: slop}
}

// Click records a completed click (pointer-up without movement). When it completes a pair it
// returns the DoubleClick event to feed into the classifier.
func (d *DoubleClickDetector) Click(up Event) (Event, bool) {
	if up.Pointer != Mouse {
		d.pending = false
		return Event{}, false
	}
	if d.pending &&
		up.Time.Sub(d.last) <= d.Window &&
		math32.Abs(up.X-d.lastX) <= d.Slop &&
		math32.Abs(up.Y-d.lastY) <= d.Slop {
		d.pending = false
		return Event{Kind: DoubleClick, X: up.X, Y: up.Y, Time: up.Time, Touches: 1, Pointer: Mouse}, true
	}
	d.pending = true
	d.lastX, d.lastY = up.X, up.Y
	d.last = up.Time
	return Event{}, false
}

// Reset forgets a half-finished pair (e.g. after a drag).
func (d *DoubleClickDetector) Reset() {
	d.pending = false
}
