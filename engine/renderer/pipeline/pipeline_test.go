package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("empty")

	assert.Equal(t, "empty", p.PipelineKey())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
	assert.Nil(t, p.Shader(shader.ShaderTypeFragment))
	assert.Nil(t, p.RenderPipeline())
	assert.Equal(t, scene.Defines{}, p.Defines())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())

	// no linked pipeline, so this must be a no-op
	p.Release()
	p.Release()
}

func TestPipelineCarriesShaderDefines(t *testing.T) {
	defines := scene.Defines{SphereSize: 3, PlaneSize: 1, LightDirectSize: 1, Iterations: 4}
	vertex, fragment, err := shader.NewRayTraceShaders(defines)
	require.NoError(t, err)

	p := NewPipeline("raytrace",
		WithVertexShader(vertex),
		WithFragmentShader(fragment),
		WithCullMode(wgpu.CullModeBack),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Same(t, vertex, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fragment, p.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, defines, p.Defines())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}
