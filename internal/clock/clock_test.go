package clock

import (
	"testing"
	"time"
)

func TestMockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	m.Advance(1500 * time.Millisecond)
	if got := m.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", got)
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Errorf("Expected clock reset to %v, got %v", start, m.Now())
	}
}

func TestSystemIsMonotonic(t *testing.T) {
	c := New()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("Expected non-decreasing time, got %v then %v", a, b)
	}
}
