package renderer

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WindowFactory opens the window the renderer draws into.
type WindowFactory func(title string, width, height int, fullscreen bool) (window.Window, error)

// defaultWindowFactory opens a GLFW window.
func defaultWindowFactory(title string, width, height int, fullscreen bool) (window.Window, error) {
	return window.NewWindow(
		window.WithTitle(title),
		window.WithSize(width, height),
		window.WithFullscreen(fullscreen),
	)
}

// WithTitle sets the title of the window opened by InitWindow.
//
// Parameters:
//   - title: the window title; empty keeps the default
//
// Returns:
//   - RendererBuilderOption: a function that applies the title option to a renderer
func WithTitle(title string) RendererBuilderOption {
	return func(r *renderer) {
		r.title = common.Coalesce(title, r.title)
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithShaderValidation runs generated WGSL through the naga front end before it reaches the device,
// so malformed source is reported with naga's diagnostics.
//
// Parameters:
//   - validate: true to validate every build
//
// Returns:
//   - RendererBuilderOption: a function that applies the validation option to a renderer
func WithShaderValidation(validate bool) RendererBuilderOption {
	return func(r *renderer) {
		r.validateShaders = validate
	}
}

// WithWindowFactory replaces the GLFW window factory.
func WithWindowFactory(factory WindowFactory) RendererBuilderOption {
	return func(r *renderer) {
		if factory != nil {
			r.windowFactory = factory
		}
	}
}

// WithBackendFactory replaces the WebGPU backend factory.
func WithBackendFactory(factory BackendFactory) RendererBuilderOption {
	return func(r *renderer) {
		if factory != nil {
			r.backendFactory = factory
		}
	}
}
