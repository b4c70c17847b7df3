package debug

import (
	"fmt"
	"testing"
)

func TestTextShowsStateAndRecentLog(t *testing.T) {
	var log []string
	for i := 0; i < 10; i++ {
		log = append(log, fmt.Sprintf("line %d", i))
	}
	d := New()
	d.ShowState = true
	d.State = func() string { return "state: idle" }
	d.LogLines = 3
	d.Log = func() []string { return log }

	want := "state: idle\nline 7\nline 8\nline 9"
	if got := d.Text(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTextShortLog(t *testing.T) {
	d := New()
	d.LogLines = 5
	d.Log = func() []string { return []string{"only"} }
	if got := d.Text(); got != "only" {
		t.Errorf("Expected the whole short log, got %q", got)
	}
}

func TestEnabled(t *testing.T) {
	d := New()
	if d.Enabled() || d.Text() != "" {
		t.Errorf("Expected nothing shown by default")
	}
	d.ShowState = true
	if d.Enabled() {
		t.Errorf("Expected state line to need a source")
	}
	d.State = func() string { return "x" }
	if !d.Enabled() {
		t.Errorf("Expected enabled with a state source")
	}
}
