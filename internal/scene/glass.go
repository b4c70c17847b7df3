package scene

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GlassParams describes the translucent shell material.
type GlassParams struct {
	Color     rl.Color
	Opacity   float32
	Roughness float32
	Clearcoat float32
	IOR       float32
	Specular  float32
}

// DefaultGlass is a faint blue water-like shell.
func DefaultGlass() GlassParams {
	return GlassParams{
		Color:     rl.NewColor(0x88, 0xaa, 0xdd, 255),
		Opacity:   0.1,
		Roughness: 0.05,
		Clearcoat: 0.3,
		IOR:       1.33,
		Specular:  0.5,
	}
}

// fresnelF0 is the normal-incidence reflectance for the index of refraction.
func (g GlassParams) fresnelF0() float32 {
	r := (g.IOR - 1) / (g.IOR + 1)
	return r * r
}

// specularPower maps roughness to a Blinn-Phong exponent.
func (g GlassParams) specularPower() float32 {
	r := math32.Max(g.Roughness, 0.01)
	return 2/(r*r) - 2
}

// glassMaterial is the replacement material for the glass meshes.
type glassMaterial struct {
	lit      *litMaterial
	material rl.Material
	params   GlassParams
	coatLoc  int32
}

func loadGlassMaterial(p GlassParams) (*glassMaterial, bool) {
	lit, ok := loadLitMaterial(glassFS)
	if !ok {
		return nil, false
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = lit.shader
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = p.Color
	}
	g := &glassMaterial{lit: lit, material: mtl, params: p, coatLoc: rl.GetShaderLocation(lit.shader, "clearcoat")}
	setFloat(lit.shader, lit.opacity, p.Opacity)
	setFloat(lit.shader, lit.fresnelF0, p.fresnelF0())
	setFloat(lit.shader, lit.specPower, math32.Min(p.specularPower(), 512))
	setFloat(lit.shader, lit.specStr, p.Specular)
	setFloat(lit.shader, g.coatLoc, p.Clearcoat)
	return g, true
}
