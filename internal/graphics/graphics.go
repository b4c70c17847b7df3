package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window opened by Run.
type Window struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Fullscreen bool
	Background rl.Color
}

// Loop is what Run drives every frame: Update with the frame time in seconds, then Draw between
// BeginDrawing and EndDrawing. Resize is called when the framebuffer size changes; Close once
// the loop ends, while the GL context still exists.
type Loop struct {
	Update func(dt float32)
	Draw   func()
	Resize func(width, height int)
	Close  func()
}

// Run opens a resizable window and runs the loop until the window is closed. The 3D projection
// follows the framebuffer because raylib rebuilds it from the screen size at every BeginMode3D.
func Run(w Window, loop Loop) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := w.Width, w.Height
	if w.Fullscreen {
		width, height = rl.GetMonitorWidth(0), rl.GetMonitorHeight(0)
	}
	rl.InitWindow(int32(width), int32(height), w.Title)
	defer rl.CloseWindow()

	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && loop.Resize != nil {
			loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if loop.Update != nil {
			loop.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	if loop.Close != nil {
		loop.Close()
	}
}
