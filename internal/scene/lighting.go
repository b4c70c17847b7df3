package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxLights is the size of the light arrays in litFS.
const maxLights = 4

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Position  mgl32.Vec3
	Color     [3]float32
	Intensity float32
}

// Lighting is one ambient term plus up to maxLights directional lights.
type Lighting struct {
	Ambient          [3]float32
	AmbientIntensity float32
	Lights           []DirectionalLight
}

// DefaultLighting: white ambient at 1.0, a key light and two fills.
func DefaultLighting() Lighting {
	white := [3]float32{1, 1, 1}
	return Lighting{
		Ambient:          white,
		AmbientIntensity: 1.0,
		Lights: []DirectionalLight{
			{Position: mgl32.Vec3{5, 10, 7}, Color: white, Intensity: 2.0},
			{Position: mgl32.Vec3{-5, 5, 5}, Color: white, Intensity: 1.0},
			{Position: mgl32.Vec3{-5, 5, -5}, Color: white, Intensity: 0.8},
		},
	}
}

// uniforms flattens the lighting into shader arrays: direction-to-light and colour*intensity.
func (l Lighting) uniforms() (dirs, colors []float32, count float32) {
	dirs = make([]float32, 0, 3*maxLights)
	colors = make([]float32, 0, 3*maxLights)
	for i, dl := range l.Lights {
		if i == maxLights {
			break
		}
		d := dl.Position
		if d.Len() > 0 {
			d = d.Normalize()
		}
		dirs = append(dirs, d[0], d[1], d[2])
		colors = append(colors, dl.Color[0]*dl.Intensity, dl.Color[1]*dl.Intensity, dl.Color[2]*dl.Intensity)
		count++
	}
	for len(dirs) < 3*maxLights {
		dirs = append(dirs, 0, 0, 0)
		colors = append(colors, 0, 0, 0)
	}
	return dirs, colors, count
}

// litMaterial holds a lit shader and the uniform locations set every frame.
type litMaterial struct {
	shader    rl.Shader
	viewPos   int32
	lightDir  int32
	lightCol  int32
	lightN    int32
	ambient   int32
	specPower int32
	specStr   int32
	opacity   int32
	fresnelF0 int32
}

func loadLitMaterial(fs string) (*litMaterial, bool) {
	sh := rl.LoadShaderFromMemory(litVS, fs)
	if !rl.IsShaderValid(sh) {
		return nil, false
	}
	return &litMaterial{
		shader:    sh,
		viewPos:   rl.GetShaderLocation(sh, "viewPos"),
		lightDir:  rl.GetShaderLocation(sh, "lightDir"),
		lightCol:  rl.GetShaderLocation(sh, "lightColor"),
		lightN:    rl.GetShaderLocation(sh, "lightCount"),
		ambient:   rl.GetShaderLocation(sh, "ambient"),
		specPower: rl.GetShaderLocation(sh, "specularPower"),
		specStr:   rl.GetShaderLocation(sh, "specularStrength"),
		opacity:   rl.GetShaderLocation(sh, "opacity"),
		fresnelF0: rl.GetShaderLocation(sh, "fresnelF0"),
	}, true
}

// apply uploads the per-frame uniforms.
func (m *litMaterial) apply(view mgl32.Vec3, l Lighting) {
	dirs, colors, n := l.uniforms()
	setVec3(m.shader, m.viewPos, view[:])
	if m.lightDir >= 0 {
		rl.SetShaderValueV(m.shader, m.lightDir, dirs, rl.ShaderUniformVec3, maxLights)
	}
	if m.lightCol >= 0 {
		rl.SetShaderValueV(m.shader, m.lightCol, colors, rl.ShaderUniformVec3, maxLights)
	}
	setFloat(m.shader, m.lightN, n)
	amb := []float32{
		l.Ambient[0] * l.AmbientIntensity * ambientScale,
		l.Ambient[1] * l.AmbientIntensity * ambientScale,
		l.Ambient[2] * l.AmbientIntensity * ambientScale,
	}
	setVec3(m.shader, m.ambient, amb)
}

// ambientScale maps a unit ambient intensity to a dim fill in this unnormalised shading model.
const ambientScale = 0.25

func setVec3(sh rl.Shader, loc int32, v []float32) {
	if loc >= 0 {
		rl.SetShaderValue(sh, loc, v, rl.ShaderUniformVec3)
	}
}

func setFloat(sh rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(sh, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: albedo texture * colDiffuse, Blinn-Phong over up to four directional lights.
	litFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightCount;
uniform vec3 ambient;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 color = ambient * tint.rgb;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 L = normalize(lightDir[i]);
    float NdotL = max(dot(N, L), 0.0);
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
    color += tint.rgb * NdotL * lightColor[i] * 0.5;
    color += lightColor[i] * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  }
  finalColor = vec4(color, tint.a);
}
`
	// glassFS: tinted, mostly transparent surface with a Fresnel rim and a clearcoat highlight.
	glassFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightCount;
uniform vec3 ambient;
uniform float specularPower;
uniform float specularStrength;
uniform float opacity;
uniform float fresnelF0;
uniform float clearcoat;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  if (!gl_FrontFacing) N = -N;
  float fresnel = fresnelF0 + (1.0 - fresnelF0) * pow(1.0 - max(dot(N, V), 0.0), 5.0);
  vec3 color = ambient * colDiffuse.rgb;
  float highlight = 0.0;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 L = normalize(lightDir[i]);
    vec3 H = normalize(L + V);
    float NdotH = max(dot(N, H), 0.0);
    float spec = pow(NdotH, specularPower) * specularStrength;
    float coat = pow(NdotH, specularPower * 4.0) * clearcoat;
    color += lightColor[i] * (spec + coat);
    highlight += spec + coat;
  }
  float alpha = clamp(opacity + fresnel + highlight, 0.0, 1.0);
  finalColor = vec4(color, alpha);
}
`
)
