package renderer

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeWindow struct {
	width, height int
	fullscreen    bool
	closed        int
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(func()) {}

func (w *fakeWindow) SetResizeCallback(func(width, height int)) {}

func (w *fakeWindow) SetKeyDownCallback(func(keyCode uint32)) {}

func (w *fakeWindow) SetKeyUpCallback(func(keyCode uint32)) {}

func (w *fakeWindow) SetMouseMoveCallback(func(x, y int32)) {}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

func (w *fakeWindow) IsRunning() bool {
	return w.closed == 0
}

func (w *fakeWindow) ProcessMessages() {}

func (w *fakeWindow) Width() int {
	return w.width
}

func (w *fakeWindow) Height() int {
	return w.height
}

func (w *fakeWindow) Fullscreen() bool {
	return w.fullscreen
}

func (w *fakeWindow) Close() error {
	w.closed++
	return nil
}

// fakeBackend records every call the renderer makes and fails on demand.
type fakeBackend struct {
	configured  [][2]int
	presentMode PresentMode

	registered []pipeline.Pipeline
	released   []pipeline.Pipeline
	bindSizes  []map[int]uint64
	writes     [][]bind_group_provider.BufferWrite

	frames, draws, presents int
	releasedAll             int

	failCompile   bool
	failLink      bool
	failBindGroup bool
	failBegin     bool
	failWrite     bool
}

var _ RendererBackend = &fakeBackend{}

func (b *fakeBackend) ConfigureSurface(width, height int) {
	b.configured = append(b.configured, [2]int{width, height})
}

func (b *fakeBackend) SetPresentMode(mode PresentMode) {
	b.presentMode = mode
}

func (b *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	b.registered = append(b.registered, p)
	switch {
	case b.failCompile:
		err := errors.New("error: unknown identifier 'foo'")
		return &shader.BuildError{Stage: shader.StageCompile, Key: shader.RayTraceKey, Log: err.Error(), Err: err}
	case b.failLink:
		err := errors.New("entry point not found")
		return &shader.BuildError{Stage: shader.StageLink, Key: p.PipelineKey(), Log: err.Error(), Err: err}
	}
	return nil
}

func (b *fakeBackend) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizes map[int]uint64) error {
	if b.failBindGroup {
		return errors.New("out of memory")
	}
	b.bindSizes = append(b.bindSizes, bufferSizes)
	for _, e := range descriptor.Entries {
		binding := int(e.Binding)
		provider.SetBuffer(binding, nil, bufferSizes[binding])
	}
	return nil
}

func (b *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) error {
	if b.failWrite {
		return errors.New("queue lost")
	}
	b.writes = append(b.writes, writes)
	return nil
}

func (b *fakeBackend) BeginFrame() error {
	if b.failBegin {
		return errors.New("surface lost")
	}
	b.frames++
	return nil
}

func (b *fakeBackend) DrawFullscreen(pipeline.Pipeline, ...bind_group_provider.BindGroupProvider) {
	b.draws++
}

func (b *fakeBackend) EndFrame() error {
	return nil
}

func (b *fakeBackend) Present() {
	b.presents++
}

func (b *fakeBackend) ReleasePipeline(p pipeline.Pipeline) {
	b.released = append(b.released, p)
}

func (b *fakeBackend) Release() {
	b.releasedAll++
}

// newTestRenderer wires a Renderer to a fake window and backend.
func newTestRenderer(opts ...RendererBuilderOption) (Renderer, *fakeWindow, *fakeBackend) {
	win := &fakeWindow{}
	backend := &fakeBackend{}
	base := []RendererBuilderOption{
		WithWindowFactory(func(_ string, width, height int, fullscreen bool) (window.Window, error) {
			win.width, win.height, win.fullscreen = width, height, fullscreen
			return win, nil
		}),
		WithBackendFactory(func(_ *wgpu.SurfaceDescriptor, cfg BackendConfig) (RendererBackend, error) {
			backend.presentMode = cfg.PresentMode
			return backend, nil
		}),
	}
	return NewRenderer(append(base, opts...)...), win, backend
}
