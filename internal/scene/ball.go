package scene

import (
	"fmt"
	"unsafe"

	"eightball/internal/anim"
	"eightball/internal/assets"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ball is the loaded model. Its root position is what the shake moves; the die orientation is
// what the spin sequence drives. It satisfies spin.Target and shake.Positioner.
type Ball struct {
	model  rl.Model
	anims  []rl.ModelAnimation
	layout *assets.Layout

	die       assets.Part
	glass     assets.Part
	hasGlass  bool
	isDie     []bool
	isGlass   []bool
	meshMtl   []int32
	position  mgl32.Vec3
	dieRot    mgl32.Quat
	lastClip  int
	lastFrame int
}

// loadBall reads the model, its animations and its node layout.
func loadBall(path string) (*Ball, error) {
	layout, err := assets.Inspect(path)
	if err != nil {
		return nil, err
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return nil, fmt.Errorf("scene: %s: model did not load", path)
	}
	b := &Ball{
		model:    model,
		anims:    rl.LoadModelAnimations(path),
		layout:   layout,
		dieRot:   mgl32.QuatIdent(),
		lastClip: -1,
	}
	n := int(model.MeshCount)
	if n != len(layout.Meshes) {
		// Names cannot be trusted to line up; spin everything.
		b.die = assets.Part{Whole: true}
	} else {
		b.die = layout.Die()
		b.glass, b.hasGlass = layout.Glass()
	}
	b.isDie = make([]bool, n)
	b.isGlass = make([]bool, n)
	for _, i := range b.die.Meshes {
		b.isDie[i] = true
	}
	if b.hasGlass {
		for _, i := range b.glass.Meshes {
			b.isGlass[i] = true
		}
	}
	if n > 0 {
		b.meshMtl = unsafe.Slice(model.MeshMaterial, n)
	}
	return b, nil
}

// Clips lists the model animations for the mixer, named from the glTF document.
func (b *Ball) Clips() []anim.Clip {
	out := make([]anim.Clip, len(b.anims))
	for i, a := range b.anims {
		name := fmt.Sprintf("clip%d", i)
		if i < len(b.layout.Clips) {
			name = b.layout.Clips[i]
		}
		out[i] = anim.Clip{Name: name, Frames: int(a.FrameCount), FPS: anim.DefaultFPS}
	}
	return out
}

func (b *Ball) Orientation() mgl32.Quat     { return b.dieRot }
func (b *Ball) SetOrientation(q mgl32.Quat) { b.dieRot = q }
func (b *Ball) Position() mgl32.Vec3        { return b.position }
func (b *Ball) SetPosition(p mgl32.Vec3)    { b.position = p }

// Pose applies the mixer's current clip frame to the model.
func (b *Ball) Pose(m *anim.Mixer) {
	clip, frame, ok := m.Pose()
	if !ok || clip >= len(b.anims) {
		return
	}
	if clip == b.lastClip && frame == b.lastFrame {
		return
	}
	rl.UpdateModelAnimation(b.model, b.anims[clip], int32(frame))
	b.lastClip, b.lastFrame = clip, frame
}

// transforms returns the root transform and the die transform (rotation about the die pivot).
func (b *Ball) transforms() (root, die rl.Matrix) {
	root = rl.MatrixMultiply(b.model.Transform, rl.MatrixTranslate(b.position[0], b.position[1], b.position[2]))
	q := rl.NewQuaternion(b.dieRot.V[0], b.dieRot.V[1], b.dieRot.V[2], b.dieRot.W)
	p := b.die.Pivot
	spinAbout := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixTranslate(-p[0], -p[1], -p[2]), rl.QuaternionToMatrix(q)),
		rl.MatrixTranslate(p[0], p[1], p[2]),
	)
	die = rl.MatrixMultiply(spinAbout, root)
	return root, die
}

// draw renders opaque meshes, then the glass with blending and no depth writes.
func (b *Ball) draw(lit *litMaterial, glass *glassMaterial) {
	root, die := b.transforms()
	meshes := b.model.GetMeshes()
	mats := b.model.GetMaterials()
	for i := range meshes {
		if b.isGlass[i] && glass != nil {
			continue
		}
		mtl := mats[b.meshMtl[i]]
		if lit != nil {
			mtl.Shader = lit.shader
		}
		t := root
		if b.die.Whole || b.isDie[i] {
			t = die
		}
		rl.DrawMesh(meshes[i], mtl, t)
	}
	if glass == nil || !b.hasGlass {
		return
	}
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	for _, i := range b.glass.Meshes {
		rl.DrawMesh(meshes[i], glass.material, root)
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

func (b *Ball) unload() {
	if len(b.anims) > 0 {
		rl.UnloadModelAnimations(b.anims)
	}
	rl.UnloadModel(b.model)
}
