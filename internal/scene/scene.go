package scene

import (
	"eightball/internal/logger"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the clear colour.
var Background = rl.NewColor(0x11, 0x11, 0x11, 255)

// Scene holds the camera, lights and the ball model. The model is loaded on the first Draw,
// after the window and GL context exist.
type Scene struct {
	Camera   rl.Camera3D
	Lighting Lighting
	Glass    GlassParams

	// OnLoad runs once when the model is in; OnError when it could not be loaded. Neither retries.
	OnLoad  func(*Ball)
	OnError func(error)

	log     *logger.Logger
	path    string
	pending bool
	ball    *Ball
	lit     *litMaterial
	glass   *glassMaterial
}

// New returns a scene that will load the model at path. Camera: fovy 45 at (2, 1.5, 5) looking at the origin.
func New(path string, log *logger.Logger) *Scene {
	s := &Scene{
		Lighting: DefaultLighting(),
		Glass:    DefaultGlass(),
		log:      log,
		path:     path,
		pending:  true,
	}
	s.Camera.Position = rl.NewVector3(2, 1.5, 5)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetCamera moves the camera; the orbit controller calls it each frame.
func (s *Scene) SetCamera(position, target mgl32.Vec3) {
	s.Camera.Position = rl.NewVector3(position[0], position[1], position[2])
	s.Camera.Target = rl.NewVector3(target[0], target[1], target[2])
}

// ensureLoaded runs the deferred load once.
func (s *Scene) ensureLoaded() {
	if !s.pending {
		return
	}
	s.pending = false

	if lit, ok := loadLitMaterial(litFS); ok {
		s.lit = lit
		setFloat(lit.shader, lit.specPower, 32)
		setFloat(lit.shader, lit.specStr, 0.3)
	} else {
		s.log.Warn("lit shader failed to compile, using default shading")
	}

	b, err := loadBall(s.path)
	if err != nil {
		s.log.Error("model load failed", "path", s.path, "err", err)
		if s.OnError != nil {
			s.OnError(err)
		}
		return
	}
	s.ball = b
	s.log.Info("model loaded", "path", s.path, "layout", b.layout.Describe())
	if b.die.Whole {
		s.log.Warn("no die mesh found, spinning the whole model")
	} else {
		s.log.Info("die resolved", "node", b.die.Name, "meshes", len(b.die.Meshes))
	}
	if b.hasGlass {
		if g, ok := loadGlassMaterial(s.Glass); ok {
			s.glass = g
		} else {
			s.log.Warn("glass shader failed to compile, drawing glass opaque")
		}
	}
	if s.OnLoad != nil {
		s.OnLoad(b)
	}
}

// Draw renders the scene. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.ensureLoaded()
	view := mgl32.Vec3{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	if s.lit != nil {
		s.lit.apply(view, s.Lighting)
	}
	if s.glass != nil {
		s.glass.lit.apply(view, s.Lighting)
	}
	rl.BeginMode3D(s.Camera)
	if s.ball != nil {
		s.ball.draw(s.lit, s.glass)
	}
	rl.EndMode3D()
}

// GPU release calls; tests swap them for recorders.
var (
	unloadShader   = rl.UnloadShader
	unloadMaterial = rl.UnloadMaterial
)

// Unload frees the model, the lit shader and the glass material. Call before the window closes.
// The glass shader belongs to the glass material and goes with it.
func (s *Scene) Unload() {
	if s.ball != nil {
		s.ball.unload()
		s.ball = nil
	}
	if s.lit != nil {
		unloadShader(s.lit.shader)
		s.lit = nil
	}
	if s.glass != nil {
		unloadMaterial(s.glass.material)
		s.glass = nil
	}
}
