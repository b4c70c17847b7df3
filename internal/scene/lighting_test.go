package scene

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestLightingUniforms(t *testing.T) {
	dirs, colors, n := DefaultLighting().uniforms()
	if n != 3 {
		t.Fatalf("Expected 3 lights, got %v", n)
	}
	if len(dirs) != 3*maxLights || len(colors) != 3*maxLights {
		t.Fatalf("Expected padded arrays of %d, got %d and %d", 3*maxLights, len(dirs), len(colors))
	}
	l := math32.Sqrt(dirs[0]*dirs[0] + dirs[1]*dirs[1] + dirs[2]*dirs[2])
	if math32.Abs(l-1) > 1e-5 {
		t.Errorf("Expected normalised direction, got length %v", l)
	}
	if colors[0] != 2 || colors[6] != 0.8 {
		t.Errorf("Expected intensity folded into colour, got %v", colors)
	}
	if colors[9] != 0 {
		t.Errorf("Expected unused slot zeroed")
	}
}

func TestGlassParams(t *testing.T) {
	g := DefaultGlass()
	f0 := g.fresnelF0()
	if f0 < 0.019 || f0 > 0.021 {
		t.Errorf("Expected water-like F0 near 0.02, got %v", f0)
	}
	if g.specularPower() < 100 {
		t.Errorf("Expected a tight highlight for low roughness, got %v", g.specularPower())
	}
}
