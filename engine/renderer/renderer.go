package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// MaxUniformBindingSize is the WebGPU default maxUniformBufferBindingSize. A scene collection
// whose uniform array would exceed it cannot be bound.
const MaxUniformBindingSize = 65536

var (
	// ErrNotReady is returned when an operation is called before its prerequisite state.
	ErrNotReady = errors.New("renderer: not ready")

	// ErrStopped is returned by every operation except Stop once the renderer is stopped.
	ErrStopped = errors.New("renderer: stopped")

	// ErrAlreadyInitialized is returned by a second InitWindow.
	ErrAlreadyInitialized = errors.New("renderer: window already initialized")

	// ErrStaleProgram is returned by Draw when the scene's shape no longer matches the linked program.
	ErrStaleProgram = errors.New("renderer: scene shape differs from linked program")

	// ErrSceneTooLarge is returned by InitShaders when a binding exceeds MaxUniformBindingSize.
	ErrSceneTooLarge = errors.New("renderer: scene exceeds uniform buffer limit")
)

// State is a Renderer lifecycle state.
type State int

const (
	// StateUninitialized is the state before InitWindow succeeds.
	StateUninitialized State = iota

	// StateWindowReady means a window and GPU surface exist but no program is linked.
	StateWindowReady

	// StateProgramReady means a program is linked and Draw may be called.
	StateProgramReady

	// StateStopped is terminal.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWindowReady:
		return "window-ready"
	case StateProgramReady:
		return "program-ready"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Scene binding variable names declared by the ray tracing shader.
const (
	varGlobals           = "globals"
	varSpheres           = "spheres"
	varPlanes            = "planes"
	varPointLights       = "point_lights"
	varDirectionalLights = "directional_lights"
)

var sceneVars = []string{varGlobals, varSpheres, varPlanes, varPointLights, varDirectionalLights}

// sceneGroup is the bind group holding every scene buffer.
const sceneGroup = 0

// buildFailure remembers the last shape that failed to build so Frame does not rebuild it every frame.
type buildFailure struct {
	defines scene.Defines
	err     error
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	title                string
	presentMode          PresentMode
	forceFallbackAdapter bool
	validateShaders      bool

	windowFactory  WindowFactory
	backendFactory BackendFactory

	state   State
	win     window.Window
	backend RendererBackend

	// program and provider are replaced together on every successful build
	program  pipeline.Pipeline
	provider bind_group_provider.BindGroupProvider
	bindings map[string]int
	defines  scene.Defines

	lastFailure *buildFailure
	rebuilds    int
}

// Renderer is the Render Context: it bridges a Scene to the GPU program specialized for the scene's shape.
//
// Lifecycle: Uninitialized -> InitWindow -> WindowReady -> InitShaders -> ProgramReady -> Draw (repeatable) -> Stop -> Stopped.
// A Renderer is owned by a single goroutine; none of its methods are safe for concurrent use.
type Renderer interface {
	// InitWindow opens the window and acquires a GPU surface and device for it.
	// A width or height of 0 selects the primary monitor's resolution.
	//
	// Parameters:
	//   - width: the window width in pixels
	//   - height: the window height in pixels
	//   - fullscreen: whether to open the window fullscreen on the primary monitor
	//
	// Returns:
	//   - error: ErrAlreadyInitialized, ErrStopped, or the windowing or adapter failure
	InitWindow(width, height int, fullscreen bool) error

	// InitShaders generates the ray tracing program for defines, compiles and links it, and allocates
	// the scene buffers it binds. On failure the previous state and program are kept.
	//
	// Parameters:
	//   - defines: the scene shape to build for
	//
	// Returns:
	//   - error: ErrNotReady, ErrStopped, ErrSceneTooLarge, or a *shader.BuildError
	InitShaders(defines scene.Defines) error

	// Draw uploads the scene into the bound buffers and draws one fullscreen pass.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: ErrNotReady, ErrStopped, ErrStaleProgram, or a frame acquisition/submission failure
	Draw(s scene.Scene) error

	// Frame derives the scene's defines, rebuilds the program if they changed, then draws.
	// A shape that failed to build is not rebuilt again until the shape changes.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: any error from InitShaders or Draw
	Frame(s scene.Scene) error

	// NeedsRebuild reports whether defines differ from those of the linked program.
	// It is always true when no program is linked.
	NeedsRebuild(defines scene.Defines) bool

	// Defines returns the defines of the linked program.
	//
	// Returns:
	//   - scene.Defines: the linked program's defines
	//   - bool: false when no program is linked
	Defines() (scene.Defines, bool)

	// Rebuilds returns how many programs have been linked successfully.
	Rebuilds() int

	// Resize reconfigures the surface. Zero sizes, as reported for minimized windows, are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Stop releases the program, the GPU device and the window. Calling it again is a no-op.
	Stop()

	// State returns the current lifecycle state.
	State() State

	// Window returns the window opened by InitWindow, or nil.
	Window() window.Window
}

var _ Renderer = &renderer{}

// NewRenderer creates an uninitialized Renderer. No window or GPU object exists until InitWindow.
//
// Parameters:
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer in StateUninitialized
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &renderer{
		title:          "oxy-rt",
		presentMode:    PresentModeVSync,
		windowFactory:  defaultWindowFactory,
		backendFactory: newWGPURendererBackend,
		state:          StateUninitialized,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) InitWindow(width, height int, fullscreen bool) error {
	switch r.state {
	case StateStopped:
		return ErrStopped
	case StateUninitialized:
	default:
		return ErrAlreadyInitialized
	}

	win, err := r.windowFactory(r.title, width, height, fullscreen)
	if err != nil {
		return fmt.Errorf("renderer: init window: %w", err)
	}

	backend, err := r.backendFactory(win.SurfaceDescriptor(), BackendConfig{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		PresentMode:          r.presentMode,
	})
	if err != nil {
		if closeErr := win.Close(); closeErr != nil {
			log.Printf("[Renderer] failed to close window after backend failure: %v", closeErr)
		}
		return fmt.Errorf("renderer: init backend: %w", err)
	}
	backend.ConfigureSurface(win.Width(), win.Height())

	r.win = win
	r.backend = backend
	r.state = StateWindowReady
	log.Printf("[Renderer] window ready %dx%d (fullscreen=%t)", win.Width(), win.Height(), win.Fullscreen())
	return nil
}

func (r *renderer) InitShaders(defines scene.Defines) error {
	switch r.state {
	case StateStopped:
		return ErrStopped
	case StateUninitialized:
		return fmt.Errorf("%w: InitShaders before InitWindow", ErrNotReady)
	}

	err := r.build(defines)
	if err != nil {
		r.lastFailure = &buildFailure{defines: defines, err: err}
		log.Printf("[Renderer] build for %s failed: %v", defines, err)
		return err
	}
	r.lastFailure = nil
	return nil
}

// build generates, validates, compiles and links a program for defines and swaps it in.
// Nothing about the current program changes unless every step succeeds.
func (r *renderer) build(defines scene.Defines) error {
	vertex, fragment, err := shader.NewRayTraceShaders(defines)
	if err != nil {
		return err
	}

	sizes := make(map[int]uint64)
	for _, b := range fragment.Bindings() {
		if b.Group != sceneGroup {
			continue
		}
		if b.Size > MaxUniformBindingSize {
			return fmt.Errorf("%w: %s needs %d bytes, limit is %d",
				ErrSceneTooLarge, fragment.BindGroupVarName(sceneGroup, b.Binding), b.Size, MaxUniformBindingSize)
		}
		sizes[b.Binding] = b.Size
	}

	bindings := make(map[string]int)
	for _, name := range sceneVars {
		if b, ok := fragment.BindGroupFromVarName(sceneGroup, name); ok {
			bindings[name] = b
		}
	}

	if r.validateShaders {
		if err := shader.Validate(vertex.Key(), vertex.Source()); err != nil {
			return err
		}
		if err := shader.Validate(fragment.Key(), fragment.Source()); err != nil {
			return err
		}
	}

	// one fullscreen triangle, no depth, every channel written
	p := pipeline.NewPipeline(fmt.Sprintf("%s[%s]", shader.RayTraceKey, defines),
		pipeline.WithVertexShader(vertex),
		pipeline.WithFragmentShader(fragment),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskAll),
	)
	if err := r.backend.RegisterRenderPipeline(p); err != nil {
		r.backend.ReleasePipeline(p)
		return err
	}

	provider := bind_group_provider.NewBindGroupProvider("Scene")
	if err := r.backend.InitBindGroup(provider, fragment.BindGroupLayoutDescriptor(sceneGroup), sizes); err != nil {
		provider.Release()
		r.backend.ReleasePipeline(p)
		return fmt.Errorf("renderer: init scene bind group: %w", err)
	}

	r.releaseProgram()
	r.program = p
	r.provider = provider
	r.bindings = bindings
	r.defines = defines
	r.state = StateProgramReady
	r.rebuilds++
	log.Printf("[Renderer] linked program %s", p.PipelineKey())
	return nil
}

func (r *renderer) Draw(s scene.Scene) error {
	switch r.state {
	case StateStopped:
		return ErrStopped
	case StateProgramReady:
	default:
		return fmt.Errorf("%w: Draw in state %s", ErrNotReady, r.state)
	}

	if current := s.Defines(); current != r.defines {
		return fmt.Errorf("%w: program has %s, scene has %s", ErrStaleProgram, r.defines, current)
	}

	payloads := map[int][]byte{}
	for name, data := range map[string][]byte{
		varGlobals:           s.MarshalGlobals(),
		varSpheres:           s.MarshalSpheres(),
		varPlanes:            s.MarshalPlanes(),
		varPointLights:       s.MarshalPointLights(),
		varDirectionalLights: s.MarshalDirectionalLights(),
	} {
		if b, ok := r.bindings[name]; ok {
			payloads[b] = data
		}
	}
	if err := r.backend.WriteBuffers(bind_group_provider.NewBufferWrites(r.provider, payloads)); err != nil {
		return fmt.Errorf("renderer: upload: %w", err)
	}

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("renderer: begin frame: %w", err)
	}
	r.backend.DrawFullscreen(r.program, r.provider)
	if err := r.backend.EndFrame(); err != nil {
		return fmt.Errorf("renderer: end frame: %w", err)
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Frame(s scene.Scene) error {
	defines := s.Defines()
	if r.state != StateStopped && r.NeedsRebuild(defines) {
		if r.lastFailure != nil && r.lastFailure.defines == defines {
			return r.lastFailure.err
		}
		if err := r.InitShaders(defines); err != nil {
			return err
		}
	}
	return r.Draw(s)
}

func (r *renderer) NeedsRebuild(defines scene.Defines) bool {
	return r.state != StateProgramReady || defines != r.defines
}

func (r *renderer) Defines() (scene.Defines, bool) {
	if r.state != StateProgramReady {
		return scene.Defines{}, false
	}
	return r.defines, true
}

func (r *renderer) Rebuilds() int {
	return r.rebuilds
}

func (r *renderer) Resize(width, height int) {
	if r.backend == nil || r.state == StateStopped {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Stop() {
	if r.state == StateStopped {
		return
	}

	r.releaseProgram()
	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
	if r.win != nil {
		if err := r.win.Close(); err != nil {
			log.Printf("[Renderer] failed to close window: %v", err)
		}
	}
	r.state = StateStopped
	log.Printf("[Renderer] stopped after %d program builds", r.rebuilds)
}

func (r *renderer) State() State {
	return r.state
}

func (r *renderer) Window() window.Window {
	return r.win
}

// releaseProgram releases the linked program and its scene buffers, if any.
func (r *renderer) releaseProgram() {
	if r.provider != nil {
		r.provider.Release()
		r.provider = nil
	}
	if r.program != nil {
		r.backend.ReleasePipeline(r.program)
		r.program = nil
	}
	r.bindings = nil
}
