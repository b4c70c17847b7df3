package haptic

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Pulser plays a short low thump when a spin is accepted, standing in for a vibration motor.
// Every method is safe to call before Initialize or after it failed; the pulse is then silent.
type Pulser struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	duration    time.Duration
	freq        float64
	pulses      int
}

// New returns an uninitialized pulser producing a thump of the given length and pitch.
func New(duration time.Duration, freq float64) *Pulser {
	if duration <= 0 {
		duration = 40 * time.Millisecond
	}
	if freq <= 0 {
		freq = 70
	}
	return &Pulser{mixer: &beep.Mixer{}, duration: duration, freq: freq}
}

// Initialize opens the audio device. It fails on machines without one; the toy keeps running.
func (p *Pulser) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Pulse queues one thump. Overlapping pulses mix.
func (p *Pulser) Pulse() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pulses++
	if !p.initialized {
		return
	}
	n := sampleRate.N(p.duration)
	speaker.Lock()
	p.mixer.Add(beep.Take(n, NewThump(sampleRate, p.freq, n)))
	speaker.Unlock()
}

// Pulses counts Pulse calls, audible or not.
func (p *Pulser) Pulses() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pulses
}

// Cleanup silences pending pulses.
func (p *Pulser) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Thump is a sine burst with a fast attack and exponential decay over length samples.
type Thump struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

// NewThump creates a thump generator.
func NewThump(sr beep.SampleRate, freq float64, length int) *Thump {
	return &Thump{sr: sr, freq: freq, length: length}
}

func (g *Thump) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.length)
		attack := math.Min(progress/0.05, 1)
		env := attack * math.Exp(-5*progress)
		s := 0.6 * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Thump) Err() error {
	return nil
}
