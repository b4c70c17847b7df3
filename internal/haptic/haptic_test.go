package haptic

import (
	"math"
	"testing"
	"time"
)

// TestPulserWithoutDevice verifies pulses are counted and silent before Initialize.
func TestPulserWithoutDevice(t *testing.T) {
	p := New(0, 0)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Pulser panicked without initialization: %v", r)
		}
	}()
	p.Pulse()
	p.Pulse()
	p.Cleanup()
	if p.Pulses() != 2 {
		t.Errorf("Expected 2 pulses counted, got %d", p.Pulses())
	}
}

func TestThumpShape(t *testing.T) {
	n := sampleRate.N(40 * time.Millisecond)
	g := NewThump(sampleRate, 70, n)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		k, ok := g.Stream(buf)
		for i := 0; i < k; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatalf("Expected mono output on both channels")
			}
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += k
		if !ok {
			break
		}
	}
	if total != n {
		t.Errorf("Expected %d samples, got %d", n, total)
	}
	if peak <= 0 || peak > 0.6 {
		t.Errorf("Expected peak in (0, 0.6], got %v", peak)
	}
	if g.Err() != nil {
		t.Errorf("Expected no stream error")
	}
}
