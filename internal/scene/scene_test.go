package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestUnloadReleasesGlassMaterial(t *testing.T) {
	var shaders []uint32
	var materials []uint32
	origShader, origMaterial := unloadShader, unloadMaterial
	unloadShader = func(sh rl.Shader) { shaders = append(shaders, sh.ID) }
	unloadMaterial = func(m rl.Material) { materials = append(materials, m.Shader.ID) }
	defer func() { unloadShader, unloadMaterial = origShader, origMaterial }()

	glassShader := rl.Shader{ID: 7}
	s := &Scene{
		lit: &litMaterial{shader: rl.Shader{ID: 3}},
		glass: &glassMaterial{
			lit:      &litMaterial{shader: glassShader},
			material: rl.Material{Shader: glassShader},
		},
	}
	s.Unload()

	if len(shaders) != 1 || shaders[0] != 3 {
		t.Errorf("Expected only the lit shader unloaded directly, got %v", shaders)
	}
	if len(materials) != 1 || materials[0] != 7 {
		t.Errorf("Expected the glass material unloaded once, got %v", materials)
	}
	if s.lit != nil || s.glass != nil {
		t.Errorf("Expected references cleared")
	}

	s.Unload()
	if len(shaders) != 1 || len(materials) != 1 {
		t.Errorf("Expected a second Unload to do nothing")
	}
}
