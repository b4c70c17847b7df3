package debug

import (
	"fmt"
	"runtime"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInterval: only refresh FPS and memory every N frames to reduce allocations.
const updateInterval = 30

// Debug assembles the optional debug text. All lines are off by default.
type Debug struct {
	ShowFPS   bool
	ShowMem   bool
	ShowState bool
	// LogLines is how many of the most recent log records to show.
	LogLines int

	// State supplies the state line (the spin sequencer state).
	State func() string
	// Log supplies the retained log records, oldest first.
	Log func() []string

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a Debug with everything hidden.
func New() *Debug {
	return &Debug{}
}

// Enabled reports whether any line is switched on.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMem || (d.ShowState && d.State != nil) || (d.LogLines > 0 && d.Log != nil)
}

// Text returns the debug block for this frame. Call once per frame.
func (d *Debug) Text() string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMem && d.memText == "") {
		update = true
	}
	if update && d.ShowFPS {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if update && d.ShowMem {
		runtime.ReadMemStats(&d.memStats)
		d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}

	var lines []string
	if d.ShowFPS {
		lines = append(lines, d.fpsText)
	}
	if d.ShowMem {
		lines = append(lines, d.memText)
	}
	if d.ShowState && d.State != nil {
		lines = append(lines, d.State())
	}
	if d.LogLines > 0 && d.Log != nil {
		lines = append(lines, tail(d.Log(), d.LogLines)...)
	}
	return strings.Join(lines, "\n")
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
