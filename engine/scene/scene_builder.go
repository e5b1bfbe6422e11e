package scene

import (
	"log"

	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithCamera sets the initial eye position and rotation.
//
// Parameters:
//   - position: world-space eye position
//   - rotation: unit quaternion xyzw
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(position [3]float32, rotation [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.SetCamera(position, rotation)
	}
}

// WithCanvasSize sets the initial framebuffer dimensions.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCanvasSize(width, height int32) SceneBuilderOption {
	return func(s *scene) {
		s.SetCanvasSize(width, height)
	}
}

// WithReflectDepth sets the maximum bounce count. Defaults to 3.
//
// Parameters:
//   - depth: the bounce count
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithReflectDepth(depth int32) SceneBuilderOption {
	return func(s *scene) {
		s.SetReflectDepth(depth)
	}
}

// WithBackgroundColor sets the escape color.
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackgroundColor(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		s.SetBackgroundColor(r, g, b)
	}
}

// WithAmbientColor sets the ambient light term. A non-finite term is logged and ignored.
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientColor(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		if err := s.SetAmbientColor(r, g, b); err != nil {
			log.Printf("[Scene] ignoring ambient color: %v", err)
		}
	}
}

// WithShadowAmbient sets the light term applied inside shadows. A non-finite term is logged and ignored.
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShadowAmbient(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		if err := s.SetShadowAmbient(r, g, b); err != nil {
			log.Printf("[Scene] ignoring shadow ambient: %v", err)
		}
	}
}

// WithSpheres appends initial spheres.
func WithSpheres(spheres ...primitive.GPUSphere) SceneBuilderOption {
	return func(s *scene) {
		s.spheres = append(s.spheres, spheres...)
	}
}

// WithPlanes appends initial planes.
func WithPlanes(planes ...primitive.GPUPlane) SceneBuilderOption {
	return func(s *scene) {
		s.planes = append(s.planes, planes...)
	}
}

// WithPointLights appends initial point lights.
func WithPointLights(lights ...light.GPUPointLight) SceneBuilderOption {
	return func(s *scene) {
		s.pointLights = append(s.pointLights, lights...)
	}
}

// WithDirectionalLights appends initial directional lights.
func WithDirectionalLights(lights ...light.GPUDirectionalLight) SceneBuilderOption {
	return func(s *scene) {
		s.directionalLights = append(s.directionalLights, lights...)
	}
}

// WithRotatingPrimitives appends initial orbit directives. Options apply in order, so
// place this after the collections it targets. Directives with no target are dropped.
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRotatingPrimitives(rps ...RotatingPrimitive) SceneBuilderOption {
	return func(s *scene) {
		for _, rp := range rps {
			_, _ = s.AddRotatingPrimitive(rp)
		}
	}
}
