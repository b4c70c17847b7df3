package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"eightball/internal/tween"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/eightball.yaml"

// Config holds every tunable of the toy. Persisted as YAML; missing keys keep their defaults.
type Config struct {
	Asset   string        `yaml:"asset"`
	Window  WindowConfig  `yaml:"window"`
	Gesture GestureConfig `yaml:"gesture"`
	Spin    SpinConfig    `yaml:"spin"`
	Shake   ShakeConfig   `yaml:"shake"`
	Haptic  HapticConfig  `yaml:"haptic"`
	Orbit   OrbitConfig   `yaml:"orbit"`
	Overlay OverlayConfig `yaml:"overlay"`
	Debug   DebugConfig   `yaml:"debug"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// GestureConfig: thresholds for tap classification. Times are milliseconds.
type GestureConfig struct {
	MoveThresholdPx float32 `yaml:"move_threshold_px"`
	TapMaxMs        int     `yaml:"tap_max_ms"`
	CooldownMs      int     `yaml:"cooldown_ms"`
	DoubleClickMs   int     `yaml:"double_click_ms"`
}

// SpinConfig selects the die motion. Mode is "spin" (chained axis spin) or "roll" (slerp to a random orientation).
// Eases are gsap-style names such as "power2.out" or "back.out".
type SpinConfig struct {
	Mode          string        `yaml:"mode"`
	Axis          [3]float32    `yaml:"axis,flow"`
	OverlapMs     int           `yaml:"overlap_ms"`
	Phases        []PhaseConfig `yaml:"phases"`
	RollMs        int           `yaml:"roll_ms"`
	RollEase      string        `yaml:"roll_ease"`
	ClipTimeScale float32       `yaml:"clip_time_scale"`
}

// PhaseConfig is one link of the spin chain. Delta is in radians.
type PhaseConfig struct {
	Name       string  `yaml:"name"`
	Delta      float32 `yaml:"delta"`
	DurationMs int     `yaml:"duration_ms"`
	Ease       string  `yaml:"ease"`
}

type ShakeConfig struct {
	Intensity  float32 `yaml:"intensity"`
	DurationMs int     `yaml:"duration_ms"`
	IntervalMs int     `yaml:"interval_ms"`
}

type HapticConfig struct {
	Enabled     bool    `yaml:"enabled"`
	DurationMs  int     `yaml:"duration_ms"`
	FrequencyHz float64 `yaml:"frequency_hz"`
}

// OrbitConfig: camera orbit. FixedAzimuth pins horizontal rotation to the initial angle.
type OrbitConfig struct {
	Damping      float32 `yaml:"damping"`
	MinDistance  float32 `yaml:"min_distance"`
	MaxDistance  float32 `yaml:"max_distance"`
	FixedAzimuth bool    `yaml:"fixed_azimuth"`
}

// OverlayConfig: Stylesheet, when set, replaces the built-in overlay CSS.
type OverlayConfig struct {
	Stylesheet string `yaml:"stylesheet"`
}

// DebugConfig: LogLines is how many recent log records the debug overlay shows; 0 hides them.
type DebugConfig struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowMem   bool `yaml:"show_mem"`
	ShowState bool `yaml:"show_state"`
	LogLines  int  `yaml:"log_lines"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Asset: "assets/magic8ball.glb",
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Magic 8-Ball",
			TargetFPS: 60,
		},
		Gesture: GestureConfig{
			MoveThresholdPx: 10,
			TapMaxMs:        300,
			CooldownMs:      1000,
			DoubleClickMs:   400,
		},
		Spin: SpinConfig{
			Mode:      "spin",
			Axis:      [3]float32{0, 1, 0},
			OverlapMs: 50,
			Phases: []PhaseConfig{
				{Name: "wind-up", Delta: -0.35, DurationMs: 250, Ease: "power2.out"},
				{Name: "spin", Delta: 3 * math.Pi, DurationMs: 450, Ease: "power2.in"},
				{Name: "coast", Delta: 1.5 * math.Pi, DurationMs: 400, Ease: "linear"},
				{Name: "settle", Delta: math.Pi / 2, DurationMs: 450, Ease: "back.out"},
			},
			RollMs:        600,
			RollEase:      "power2.inOut",
			ClipTimeScale: 0.5,
		},
		Shake: ShakeConfig{
			Intensity:  0.03,
			DurationMs: 300,
			IntervalMs: 16,
		},
		Haptic: HapticConfig{
			Enabled:     true,
			DurationMs:  40,
			FrequencyHz: 70,
		},
		Orbit: OrbitConfig{
			Damping:      0.05,
			MinDistance:  2,
			MaxDistance:  20,
			FixedAzimuth: true,
		},
	}
}

// Load reads the YAML file at path over Default(). A missing file is not an error.
// An invalid file returns Default() together with the parse error so the caller can log it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the gesture and spin code cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Gesture.MoveThresholdPx <= 0:
		return fmt.Errorf("gesture.move_threshold_px must be positive")
	case c.Gesture.TapMaxMs <= 0:
		return fmt.Errorf("gesture.tap_max_ms must be positive")
	case c.Gesture.CooldownMs < 0:
		return fmt.Errorf("gesture.cooldown_ms must not be negative")
	case c.Spin.Mode != "spin" && c.Spin.Mode != "roll":
		return fmt.Errorf("spin.mode %q is not spin or roll", c.Spin.Mode)
	case c.Spin.Axis == [3]float32{}:
		return fmt.Errorf("spin.axis must be non-zero")
	case c.Shake.IntervalMs <= 0:
		return fmt.Errorf("shake.interval_ms must be positive")
	case c.Orbit.MinDistance <= 0 || c.Orbit.MaxDistance < c.Orbit.MinDistance:
		return fmt.Errorf("orbit distance range [%g, %g] is invalid", c.Orbit.MinDistance, c.Orbit.MaxDistance)
	case len(c.Spin.Phases) == 0:
		return fmt.Errorf("spin.phases must not be empty")
	case c.Spin.OverlapMs < 0:
		return fmt.Errorf("spin.overlap_ms must not be negative")
	case c.Debug.LogLines < 0:
		return fmt.Errorf("debug.log_lines must not be negative")
	}
	if _, ok := tween.ByName(c.Spin.RollEase); !ok {
		return fmt.Errorf("spin.roll_ease %q is unknown", c.Spin.RollEase)
	}
	for i, p := range c.Spin.Phases {
		if p.DurationMs <= 0 {
			return fmt.Errorf("spin.phases[%d].duration_ms must be positive", i)
		}
		if _, ok := tween.ByName(p.Ease); !ok {
			return fmt.Errorf("spin.phases[%d].ease %q is unknown", i, p.Ease)
		}
	}
	return nil
}

// Merge returns base with every non-zero field of override applied on top, section by section.
// Zero values in override (false, 0, "") never clear a base value.
func Merge(base, override Config) (Config, error) {
	out := base
	opt := copier.Option{IgnoreEmpty: true}
	if override.Asset != "" {
		out.Asset = override.Asset
	}
	pairs := []struct{ to, from any }{
		{&out.Window, &override.Window},
		{&out.Gesture, &override.Gesture},
		{&out.Spin, &override.Spin},
		{&out.Shake, &override.Shake},
		{&out.Haptic, &override.Haptic},
		{&out.Orbit, &override.Orbit},
		{&out.Overlay, &override.Overlay},
		{&out.Debug, &override.Debug},
	}
	for _, p := range pairs {
		if err := copier.CopyWithOption(p.to, p.from, opt); err != nil {
			return base, fmt.Errorf("config: merge: %w", err)
		}
	}
	return out, nil
}

// ApplyEnv merges the environment overrides onto cfg and validates the result. On any error cfg is
// returned unchanged.
func ApplyEnv(cfg Config) (Config, error) {
	merged, err := Merge(cfg, FromEnv())
	if err != nil {
		return cfg, err
	}
	if err := merged.Validate(); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return merged, nil
}

// Ms converts a millisecond setting to a Duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Seconds converts a millisecond setting to float32 seconds for frame-driven timers.
func Seconds(ms int) float32 {
	return float32(ms) / 1000
}
