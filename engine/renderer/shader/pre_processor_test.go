package shader

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefines = scene.Defines{
	SphereSize:      2,
	PlaneSize:       1,
	LightPointSize:  0,
	LightDirectSize: 1,
	Iterations:      3,
	AmbientColor:    [3]float32{0.1, 0.2, 1},
	ShadowAmbient:   [3]float32{0.05, 0.05, 0.05},
}

func TestProcessDefines(t *testing.T) {
	out, err := NewPreProcessor().Process("//@oxy:defines", testDefines)
	require.NoError(t, err)
	assert.Contains(t, out, "const SPHERE_SIZE: i32 = 2;")
	assert.Contains(t, out, "const PLANE_SIZE: i32 = 1;")
	assert.Contains(t, out, "const LIGHT_POINT_SIZE: i32 = 0;")
	assert.Contains(t, out, "const LIGHT_DIRECT_SIZE: i32 = 1;")
	assert.Contains(t, out, "const ITERATIONS: i32 = 3;")
	assert.Contains(t, out, "const AMBIENT_COLOR: vec3<f32> = vec3<f32>(0.1, 0.2, 1.0);")
	assert.Contains(t, out, "const SHADOW_AMBIENT: vec3<f32> = vec3<f32>(0.05, 0.05, 0.05);")
}

func TestProcessInclude(t *testing.T) {
	out, err := NewPreProcessor().Process("//@oxy:include sphere\nfn f() {}", testDefines)
	require.NoError(t, err)
	assert.Contains(t, out, primitive.GPUSphereSource)
	assert.Contains(t, out, "fn f() {}")
}

func TestProcessGroupArraysFollowDefines(t *testing.T) {
	pp := NewPreProcessor()
	src := "//@oxy:group 0 1 storage_uniform spheres array<sphere>\n" +
		"//@oxy:group 0 3 storage_uniform point_lights array<point_light>\n" +
		"//@oxy:group 0 0 storage_uniform globals scene_globals"
	out, err := pp.Process(src, testDefines)
	require.NoError(t, err)
	assert.Contains(t, out, "@group(0) @binding(1) var<uniform> spheres: array<Sphere, 2>;")
	// No point lights still declares one slot; WGSL has no zero-length arrays.
	assert.Contains(t, out, "@group(0) @binding(3) var<uniform> point_lights: array<PointLight, 1>;")
	assert.Contains(t, out, "@group(0) @binding(0) var<uniform> globals: SceneGlobals;")
	assert.Len(t, pp.Declarations(), 3)

	_, err = pp.Process("fn f() {}", testDefines)
	require.NoError(t, err)
	assert.Empty(t, pp.Declarations())
}

func TestProcessRejectsUncountedUniformArray(t *testing.T) {
	_, err := NewPreProcessor().Process("//@oxy:group 0 0 storage_uniform m array<material>", testDefines)
	assert.Error(t, err)

	out, err := NewPreProcessor().Process("//@oxy:group 0 0 storage_read m array<material>", testDefines)
	require.NoError(t, err)
	assert.Contains(t, out, "var<storage, read> m: array<Material>;")
}

func TestFloatLiteral(t *testing.T) {
	assert.Equal(t, "1.0", floatLiteral(1))
	assert.Equal(t, "0.25", floatLiteral(0.25))
	assert.Equal(t, "-3.0", floatLiteral(-3))
}
