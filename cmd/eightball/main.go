package main

import (
	"math/rand/v2"

	"eightball/internal/clock"
	"eightball/internal/config"
	"eightball/internal/debug"
	"eightball/internal/eightball"
	"eightball/internal/env"
	"eightball/internal/graphics"
	"eightball/internal/haptic"
	"eightball/internal/input"
	"eightball/internal/logger"
	"eightball/internal/orbit"
	"eightball/internal/overlay"
	"eightball/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	log := logger.New(logger.LogFilePath)
	defer log.Close()

	if err := env.Load(".env"); err != nil {
		log.Warn("env file ignored", "err", err)
	}
	cfgPath := config.PathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("config invalid, using defaults", "path", cfgPath, "err", err)
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		log.Warn("env overrides ignored", "err", err)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	var pulser eightball.Pulser
	if cfg.Haptic.Enabled {
		p := haptic.New(config.Ms(cfg.Haptic.DurationMs), cfg.Haptic.FrequencyHz)
		if err := p.Initialize(); err != nil {
			log.Warn("no audio device, haptic pulse disabled", "err", err)
		}
		defer p.Cleanup()
		pulser = p
	}

	ctrl := eightball.New(eightball.FromConfig(cfg), rng, pulser, log)

	scn := scene.New(cfg.Asset, log)
	cam := orbit.New(
		mgl32.Vec3{scn.Camera.Position.X, scn.Camera.Position.Y, scn.Camera.Position.Z},
		mgl32.Vec3{},
		orbit.Config{
			Damping:      cfg.Orbit.Damping,
			RotateSpeed:  1,
			ZoomSpeed:    1,
			MinDistance:  cfg.Orbit.MinDistance,
			MaxDistance:  cfg.Orbit.MaxDistance,
			FixedAzimuth: cfg.Orbit.FixedAzimuth,
		},
	)

	hud := overlay.NewHUD()
	if cfg.Overlay.Stylesheet != "" {
		if err := hud.Engine.LoadCSS(cfg.Overlay.Stylesheet); err != nil {
			log.Warn("overlay stylesheet ignored", "err", err)
		}
	}
	var pose func() // applies the active clip frame once the model is in
	scn.OnLoad = func(b *scene.Ball) {
		mixer := ctrl.Attach(b, b, b.Clips())
		pose = func() { b.Pose(mixer) }
		hud.Loaded()
	}

	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowMem = cfg.Debug.ShowMem
	dbg.ShowState = cfg.Debug.ShowState
	dbg.LogLines = cfg.Debug.LogLines
	dbg.State = ctrl.Status
	dbg.Log = log.Lines

	poller := input.NewPoller(clock.New())
	height := float32(cfg.Window.Height)

	graphics.Run(
		graphics.Window{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Title:      cfg.Window.Title,
			TargetFPS:  cfg.Window.TargetFPS,
			Fullscreen: cfg.Window.Fullscreen,
			Background: scene.Background,
		},
		graphics.Loop{
			Update: func(dt float32) {
				in := poller.Poll()
				for _, ev := range in.Events {
					ctrl.HandlePointer(ev)
				}
				if in.DragX != 0 || in.DragY != 0 {
					cam.Rotate(in.DragX, in.DragY, height)
				}
				cam.Zoom(in.Wheel)
				if in.Pinch > 0 {
					cam.Dolly(in.Pinch)
				}

				ctrl.Update(dt)
				if pose != nil {
					pose()
				}
				cam.Update()
				scn.SetCamera(cam.Position(), cam.Target())
			},
			Draw: func() {
				scn.Draw()
				if dbg.Enabled() {
					hud.SetDebug(dbg.Text())
				}
				hud.Draw()
			},
			Resize: func(w, h int) {
				height = float32(h)
				log.Info("window resized", "width", w, "height", h)
			},
			Close: scn.Unload,
		},
	)
}
