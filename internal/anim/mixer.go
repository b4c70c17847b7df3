package anim

// LoopMode controls what an action does when it reaches the end of its clip.
type LoopMode int

const (
	LoopOnce LoopMode = iota
	LoopRepeat
)

// DefaultFPS is the rate raylib bakes glTF animation frames at.
const DefaultFPS = 60

// Clip is a pre-authored, frame-sampled animation track.
type Clip struct {
	Name   string
	Frames int
	FPS    float32
}

// Duration is the clip length in seconds.
func (c Clip) Duration() float32 {
	if c.FPS <= 0 || c.Frames <= 0 {
		return 0
	}
	return float32(c.Frames) / c.FPS
}

// Action is the playback state of one clip inside a mixer.
type Action struct {
	Clip              Clip
	Loop              LoopMode
	ClampWhenFinished bool
	TimeScale         float32

	time     float32
	playing  bool
	finished bool
}

// Reset rewinds the action to its first frame without starting it.
func (a *Action) Reset() {
	a.time = 0
	a.finished = false
}

// Play starts (or resumes) the action.
func (a *Action) Play() {
	a.playing = true
}

// Stop halts the action and drops its pose.
func (a *Action) Stop() {
	a.playing = false
	a.finished = false
	a.time = 0
}

// Playing reports whether the action is still advancing.
func (a *Action) Playing() bool {
	return a.playing
}

// Finished reports whether a LoopOnce action reached its end.
func (a *Action) Finished() bool {
	return a.finished
}

// Time is the playhead in seconds.
func (a *Action) Time() float32 {
	return a.time
}

// Frame is the clip frame at the playhead, clamped to the last frame.
func (a *Action) Frame() int {
	if a.Clip.Frames <= 0 {
		return 0
	}
	f := int(a.time * a.Clip.FPS)
	if f >= a.Clip.Frames {
		f = a.Clip.Frames - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

func (a *Action) update(dt float32) {
	if !a.playing {
		return
	}
	a.time += dt * a.TimeScale
	d := a.Clip.Duration()
	if a.time < d {
		return
	}
	switch a.Loop {
	case LoopRepeat:
		if d > 0 {
			for a.time >= d {
				a.time -= d
			}
		}
	default:
		a.time = d
		a.playing = false
		a.finished = true
	}
}

// Mixer advances a fixed set of clip actions by frame time. Only the most recently played action
// drives the pose.
type Mixer struct {
	actions   []*Action
	current   int
	timeScale float32
}

// NewMixer creates one action per clip. timeScale applies to actions started with PlayOnce.
func NewMixer(clips []Clip, timeScale float32) *Mixer {
	if timeScale <= 0 {
		timeScale = 1
	}
	m := &Mixer{current: -1, timeScale: timeScale}
	for _, c := range clips {
		if c.FPS <= 0 {
			c.FPS = DefaultFPS
		}
		m.actions = append(m.actions, &Action{Clip: c, TimeScale: timeScale})
	}
	return m
}

// ClipCount is the size of the clip pool.
func (m *Mixer) ClipCount() int {
	return len(m.actions)
}

// Action returns the action for clip i.
func (m *Mixer) Action(i int) *Action {
	return m.actions[i]
}

// StopAll stops every action.
func (m *Mixer) StopAll() {
	for _, a := range m.actions {
		a.Stop()
	}
	m.current = -1
}

// PlayOnce rewinds clip i and plays it a single time, holding its final pose afterwards.
func (m *Mixer) PlayOnce(i int) {
	if i < 0 || i >= len(m.actions) {
		return
	}
	a := m.actions[i]
	a.Reset()
	a.Loop = LoopOnce
	a.ClampWhenFinished = true
	a.TimeScale = m.timeScale
	a.Play()
	m.current = i
}

// Playing reports whether any action is still advancing.
func (m *Mixer) Playing() bool {
	for _, a := range m.actions {
		if a.playing {
			return true
		}
	}
	return false
}

// Update advances all playing actions by dt seconds. With nothing playing it does nothing.
func (m *Mixer) Update(dt float32) {
	for _, a := range m.actions {
		a.update(dt)
	}
}

// Pose returns the clip and frame that should be applied to the model. ok is false when no clip
// holds a pose (nothing played yet, or the last clip was stopped or finished without clamping).
func (m *Mixer) Pose() (clip, frame int, ok bool) {
	if m.current < 0 {
		return 0, 0, false
	}
	a := m.actions[m.current]
	if a.playing || (a.finished && a.ClampWhenFinished) {
		return m.current, a.Frame(), true
	}
	return 0, 0, false
}
