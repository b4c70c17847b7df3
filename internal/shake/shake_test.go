package shake

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type body struct {
	pos  mgl32.Vec3
	sets int
}

func (b *body) Position() mgl32.Vec3     { return b.pos }
func (b *body) SetPosition(p mgl32.Vec3) { b.pos = p; b.sets++ }

// seq returns a fixed repeating sequence of values in [0,1).
type seq struct {
	vals []float64
	i    int
}

func (s *seq) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestShakeRestoresExactPosition(t *testing.T) {
	tests := []struct {
		name     string
		start    mgl32.Vec3
		duration float32
		dt       float32
	}{
		{"Origin 60fps", mgl32.Vec3{0, 0, 0}, 0.3, 1.0 / 60},
		{"Offset 144fps", mgl32.Vec3{0.123, -4.56, 7.89}, 0.3, 1.0 / 144},
		{"Slow frames", mgl32.Vec3{1, 2, 3}, 0.2, 0.05},
		{"Single huge frame", mgl32.Vec3{-1, 0.5, 2}, 0.3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &body{pos: tt.start}
			s := New(b, &seq{vals: []float64{0.9, 0.1, 0.7, 0.3}}, DefaultInterval)
			s.Start(0.03, tt.duration)

			moved := false
			for i := 0; i < 1000 && s.Active(); i++ {
				s.Update(tt.dt)
				if s.Active() && b.pos != tt.start {
					moved = true
					if b.pos[2] != tt.start[2] {
						t.Fatalf("Expected Z untouched, got %v", b.pos)
					}
				}
			}
			if s.Active() {
				t.Fatal("Shake never finished")
			}
			if b.pos != tt.start {
				t.Errorf("Expected exact restore to %v, got %v", tt.start, b.pos)
			}
			if tt.dt < tt.duration && !moved {
				t.Errorf("Expected jitter while active")
			}
		})
	}
}

func TestShakeJitterBounded(t *testing.T) {
	b := &body{}
	s := New(b, &seq{vals: []float64{0, 0.999999}}, DefaultInterval)
	s.Start(0.03, 1)
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
		for axis := 0; axis < 2; axis++ {
			if b.pos[axis] < -0.015 || b.pos[axis] > 0.015 {
				t.Fatalf("Expected jitter within half intensity, got %v", b.pos)
			}
		}
	}
}

func TestRestartKeepsRestPosition(t *testing.T) {
	b := &body{pos: mgl32.Vec3{1, 1, 1}}
	s := New(b, &seq{vals: []float64{0.9}}, DefaultInterval)
	s.Start(0.1, 0.3)
	s.Update(0.02)
	if b.pos == (mgl32.Vec3{1, 1, 1}) {
		t.Fatal("Expected first shake to have moved the body")
	}
	s.Start(0.1, 0.3)
	if s.Rest() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected rest position preserved across restart, got %v", s.Rest())
	}
	for s.Active() {
		s.Update(0.05)
	}
	if b.pos != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected restore to the original rest, got %v", b.pos)
	}
}

func TestIdleUpdateDoesNothing(t *testing.T) {
	b := &body{pos: mgl32.Vec3{3, 2, 1}}
	s := New(b, &seq{vals: []float64{0.5}}, 0)
	s.Update(1)
	if b.sets != 0 {
		t.Errorf("Expected no writes while idle, got %d", b.sets)
	}
	New(nil, nil, 0).Start(1, 1) // nil target is ignored
}
