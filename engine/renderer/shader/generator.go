package shader

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

const (
	// FullscreenKey identifies the fullscreen triangle vertex shader.
	FullscreenKey = "fullscreen"

	// RayTraceKey identifies the ray tracing fragment shader.
	RayTraceKey = "raytrace"
)

//go:embed assets/fullscreen.wgsl
var fullscreenSource string

//go:embed assets/raytrace.wgsl
var rayTraceSource string

// RayTraceSource returns the annotated ray tracing template before specialization.
func RayTraceSource() string {
	return rayTraceSource
}

// NewRayTraceShaders specializes the fullscreen vertex shader and the ray tracing fragment
// shader for one scene shape.
//
// Parameters:
//   - defines: the scene shape to compile for
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
//   - error: a *BuildError if either stage fails to build
func NewRayTraceShaders(defines scene.Defines) (Shader, Shader, error) {
	vertex, err := NewShader(FullscreenKey, ShaderTypeVertex, fullscreenSource, defines)
	if err != nil {
		return nil, nil, err
	}
	fragment, err := NewShader(RayTraceKey, ShaderTypeFragment, rayTraceSource, defines)
	if err != nil {
		return nil, nil, err
	}
	return vertex, fragment, nil
}
