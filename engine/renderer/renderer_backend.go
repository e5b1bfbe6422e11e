package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// ParsePresentMode maps a configuration string to a PresentMode. An empty string selects VSync.
//
// Parameters:
//   - s: "vsync", "uncapped" or ""
//
// Returns:
//   - PresentMode: the matching mode, VSync on error
//   - error: error if s names no present mode
func ParsePresentMode(s string) (PresentMode, error) {
	switch s {
	case "", "vsync":
		return PresentModeVSync, nil
	case "uncapped":
		return PresentModeUncapped, nil
	default:
		return PresentModeVSync, fmt.Errorf("unknown present mode %q", s)
	}
}

// BackendConfig carries the settings a backend needs before it requests an adapter.
type BackendConfig struct {
	// ForceFallbackAdapter requests a software adapter instead of hardware acceleration.
	ForceFallbackAdapter bool

	// PresentMode is applied before the surface is first configured.
	PresentMode PresentMode
}

// BackendFactory creates a RendererBackend bound to a window surface.
type BackendFactory func(surfaceDescriptor *wgpu.SurfaceDescriptor, cfg BackendConfig) (RendererBackend, error)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the presentation surface for the given size.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode used by the next ConfigureSurface call.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline compiles the pipeline's shader modules and links them into a GPU
	// render pipeline stored on p.
	//
	// Parameters:
	//   - p: the pipeline holding a vertex and a fragment shader
	//
	// Returns:
	//   - error: a *shader.BuildError with Stage StageCompile or StageLink on failure
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitBindGroup allocates one buffer per layout entry and creates the bind group on provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to populate
	//   - descriptor: the layout descriptor parsed from the shader
	//   - bufferSizes: buffer sizes keyed by binding; entries smaller than MinBindingSize are raised to it
	//
	// Returns:
	//   - error: an error if buffer, layout or bind group creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizes map[int]uint64) error

	// WriteBuffers queues every write to the GPU. Writes targeting a missing buffer are skipped.
	// Stops at the first failed write.
	//
	// Parameters:
	//   - writes: the staged buffer writes
	//
	// Returns:
	//   - error: the first write failure, naming its binding
	WriteBuffers(writes []bind_group_provider.BufferWrite) error

	// BeginFrame acquires the swapchain texture and begins the render pass.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawFullscreen binds the pipeline and bind groups and draws one fullscreen triangle.
	//
	// Parameters:
	//   - p: the linked pipeline
	//   - bindGroups: bind group providers, in group index order
	DrawFullscreen(p pipeline.Pipeline, bindGroups ...bind_group_provider.BindGroupProvider)

	// EndFrame ends the render pass and submits the command buffer.
	//
	// Returns:
	//   - error: an error if the command buffer could not be finished
	EndFrame() error

	// Present presents the surface and releases the swapchain texture.
	Present()

	// ReleasePipeline releases the linked GPU pipeline of p and the layout created for it.
	//
	// Parameters:
	//   - p: a pipeline previously passed to RegisterRenderPipeline
	ReleasePipeline(p pipeline.Pipeline)

	// Release releases the device and every surface object held by the backend.
	Release()
}
