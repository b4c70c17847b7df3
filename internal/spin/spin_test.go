package spin

import (
	"math/rand/v2"
	"testing"

	"eightball/internal/anim"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type die struct {
	q    mgl32.Quat
	sets int
}

func (d *die) Orientation() mgl32.Quat     { return d.q }
func (d *die) SetOrientation(q mgl32.Quat) { d.q = q; d.sets++ }

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func newMixer(n int) *anim.Mixer {
	clips := make([]anim.Clip, n)
	for i := range clips {
		clips[i] = anim.Clip{Frames: 30, FPS: 60}
	}
	return anim.NewMixer(clips, 0.5)
}

// runRotation updates until the rotation phase ends and returns the number of frames taken.
func runRotation(t *testing.T, s *Sequencer) int {
	t.Helper()
	frames := 0
	for s.State() == RotationPhase {
		s.Update(1.0 / 60)
		frames++
		if frames > 600 {
			t.Fatal("Rotation never finished")
		}
	}
	return frames
}

func TestStateMachineHappyPath(t *testing.T) {
	d := &die{q: mgl32.QuatIdent()}
	m := newMixer(3)
	s := New(DefaultConfig(), d, m, fixed(0.5))

	var played []int
	s.OnClip = func(i int) { played = append(played, i) }

	if s.State() != Idle || s.Active() {
		t.Fatalf("Expected idle start, got %v", s.State())
	}
	if !s.Request() {
		t.Fatal("Expected first request accepted")
	}
	if !s.Active() {
		t.Errorf("Expected active during rotation")
	}

	frames := runRotation(t, s)
	if frames < 80 || frames > 90 {
		t.Errorf("Expected about 1.4s of rotation, got %d frames", frames)
	}
	if s.State() != ClipPlaying {
		t.Fatalf("Expected clip playing after rotation, got %v", s.State())
	}
	if s.Active() {
		t.Errorf("Expected is-active cleared once the clip is issued")
	}
	if len(played) != 1 || played[0] != 1 {
		t.Errorf("Expected clip floor(0.5*3)=1 played, got %v", played)
	}
	if !m.Action(1).Playing() {
		t.Errorf("Expected mixer action 1 playing")
	}

	// The 0.5s clip at half speed takes 1s.
	for i := 0; i < 70; i++ {
		m.Update(1.0 / 60)
		s.Update(1.0 / 60)
	}
	if s.State() != Idle {
		t.Errorf("Expected idle after clip finished, got %v", s.State())
	}
}

func TestSpinEndsAtExactAngle(t *testing.T) {
	d := &die{q: mgl32.QuatIdent()}
	s := New(DefaultConfig(), d, nil, fixed(0))
	s.Request()
	runRotation(t, s)

	var total float32
	for _, p := range DefaultPhases() {
		total += p.Delta
	}
	want := mgl32.QuatRotate(total, mgl32.Vec3{0, 1, 0})
	if !d.q.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Expected final orientation %v, got %v", want, d.q)
	}
	if s.State() != Idle {
		t.Errorf("Expected idle with no clip pool, got %v", s.State())
	}
}

func TestRequestWhileActiveDropped(t *testing.T) {
	d := &die{q: mgl32.QuatIdent()}
	s := New(DefaultConfig(), d, newMixer(2), fixed(0.1))
	s.Request()
	s.Update(0.3)
	mid := d.q

	if s.Request() {
		t.Errorf("Expected request during rotation to be refused")
	}
	if d.q != mid {
		t.Errorf("Expected refused request to leave the orientation alone")
	}
	// The original sequence still completes on schedule.
	frames := runRotation(t, s)
	if frames > 70 {
		t.Errorf("Expected the running sequence not restarted, took %d more frames", frames)
	}
}

func TestRequestDuringClipAccepted(t *testing.T) {
	d := &die{q: mgl32.QuatIdent()}
	m := newMixer(2)
	s := New(DefaultConfig(), d, m, fixed(0.9))
	s.Request()
	runRotation(t, s)
	if s.State() != ClipPlaying {
		t.Fatalf("Expected clip playing, got %v", s.State())
	}
	if !s.Request() {
		t.Fatalf("Expected a new spin allowed while the clip finishes")
	}
	if !m.Playing() {
		t.Errorf("Expected previous clip to keep playing under the new rotation")
	}
}

func TestRollMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeRoll
	d := &die{q: mgl32.QuatIdent()}
	s := New(cfg, d, nil, fixed(0.25))
	s.Request()
	frames := runRotation(t, s)
	if frames < 35 || frames > 38 {
		t.Errorf("Expected 0.6s roll, got %d frames", frames)
	}
	want := RandomOrientation(fixed(0.25))
	if !d.q.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected roll to land on %v, got %v", want, d.q)
	}
	if s.Duration() != 0.6 {
		t.Errorf("Expected roll duration 0.6, got %v", s.Duration())
	}
}

func TestNilTargetRefuses(t *testing.T) {
	s := New(DefaultConfig(), nil, nil, fixed(0))
	if s.Request() {
		t.Errorf("Expected no spin without a target")
	}
}

func TestPickClipUniform(t *testing.T) {
	const (
		k      = 5
		trials = 50000
	)
	rng := rand.New(rand.NewPCG(1, 2))
	counts := make([]int, k)
	for i := 0; i < trials; i++ {
		counts[PickClip(rng, k)]++
	}
	for i, c := range counts {
		freq := float64(c) / trials
		if freq < 0.18 || freq > 0.22 {
			t.Errorf("Clip %d: expected frequency near 0.2, got %.3f", i, freq)
		}
	}
}

func TestPickClipEdges(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		n    int
		want int
	}{
		{"Zero", 0, 4, 0},
		{"Just under one", 0.9999, 4, 3},
		{"Exactly one clamps", 1, 4, 3},
		{"Single clip", 0.7, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickClip(fixed(tt.r), tt.n); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseModeAndStrings(t *testing.T) {
	if ParseMode("roll") != ModeRoll || ParseMode("spin") != ModeSpin || ParseMode("") != ModeSpin {
		t.Errorf("ParseMode mapping wrong")
	}
	names := map[State]string{Idle: "idle", RotationPhase: "rotating", ClipPlaying: "clip"}
	for st, want := range names {
		if st.String() != want {
			t.Errorf("Expected %q, got %q", want, st.String())
		}
	}
}

func TestDefaultDurationInRange(t *testing.T) {
	s := New(DefaultConfig(), &die{q: mgl32.QuatIdent()}, nil, fixed(0))
	d := s.Duration()
	if d < 1.3 || d > 1.5 {
		t.Errorf("Expected spin duration in [1.3, 1.5]s, got %v", d)
	}
	if math32.Abs(d-1.4) > 1e-5 {
		t.Errorf("Expected 1.4s, got %v", d)
	}
}
