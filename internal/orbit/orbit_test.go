package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var start = mgl32.Vec3{2, 1.5, 5}

func TestNewRecoversPosition(t *testing.T) {
	c := New(start, mgl32.Vec3{}, DefaultConfig())
	if got := c.Position(); !got.ApproxEqualThreshold(start, 1e-4) {
		t.Errorf("Expected position %v, got %v", start, got)
	}
	_, _, d := c.Angles()
	if math32.Abs(d-start.Len()) > 1e-5 {
		t.Errorf("Expected distance %v, got %v", start.Len(), d)
	}
}

func TestFixedAzimuthFreePolar(t *testing.T) {
	c := New(start, mgl32.Vec3{}, DefaultConfig())
	az0, pol0, _ := c.Angles()

	c.Rotate(300, 100, 720)
	for i := 0; i < 200; i++ {
		c.Update()
	}
	az, pol, _ := c.Angles()
	if az != az0 {
		t.Errorf("Expected azimuth pinned at %v, got %v", az0, az)
	}
	if pol >= pol0 {
		t.Errorf("Expected dragging down to lower the polar angle, got %v from %v", pol, pol0)
	}
}

func TestFreeAzimuth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FixedAzimuth = false
	c := New(start, mgl32.Vec3{}, cfg)
	az0, _, _ := c.Angles()
	c.Rotate(100, 0, 720)
	c.Update()
	if az, _, _ := c.Angles(); az >= az0 {
		t.Errorf("Expected azimuth to decrease, got %v from %v", az, az0)
	}
}

func TestDampingEasesOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FixedAzimuth = false
	c := New(start, mgl32.Vec3{}, cfg)
	az0, _, _ := c.Angles()
	c.Rotate(72, 0, 720) // 0.2*pi pending
	c.Update()
	az1, _, _ := c.Angles()
	c.Update()
	az2, _, _ := c.Angles()

	step1 := math32.Abs(az1 - az0)
	step2 := math32.Abs(az2 - az1)
	want := 0.2 * math32.Pi * 0.05
	if math32.Abs(step1-want) > 1e-5 {
		t.Errorf("Expected first step %v, got %v", want, step1)
	}
	if !(step2 < step1) {
		t.Errorf("Expected decaying steps, got %v then %v", step1, step2)
	}
	for i := 0; i < 2000 && c.Update(); i++ {
	}
	if c.Update() {
		t.Errorf("Expected motion to settle")
	}
}

func TestPolarClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 0
	c := New(start, mgl32.Vec3{}, cfg)
	c.Rotate(0, -100000, 720)
	c.Update()
	_, pol, _ := c.Angles()
	if pol > math32.Pi-polarEpsilon+1e-6 {
		t.Errorf("Expected polar clamped below pi, got %v", pol)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(start, mgl32.Vec3{}, DefaultConfig())
	for i := 0; i < 500; i++ {
		c.Zoom(1)
	}
	if _, _, d := c.Angles(); d != 2 {
		t.Errorf("Expected distance clamped at min 2, got %v", d)
	}
	for i := 0; i < 500; i++ {
		c.Dolly(1.2)
	}
	if _, _, d := c.Angles(); d != 20 {
		t.Errorf("Expected distance clamped at max 20, got %v", d)
	}
	c.Dolly(0)
	c.Zoom(0)
	c.Rotate(10, 10, 0)
	if c.Update() {
		t.Errorf("Expected invalid inputs ignored")
	}
}
