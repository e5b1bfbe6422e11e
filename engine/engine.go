package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/animator"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

// ErrNoScene is returned by Run when the engine was built without a scene.
var ErrNoScene = errors.New("engine: no scene")

// engine implements the Engine interface.
// Every field is owned by the goroutine that calls Run.
type engine struct {
	cfg config.Config

	renderer   renderer.Renderer
	scene      scene.Scene
	animator   animator.Animator
	camera     camera.Camera
	controller camera.CameraController

	profiler         *profiler.Profiler
	profilingEnabled bool

	now       func() time.Time
	lastFrame time.Time

	canvasWidth, canvasHeight int
}

// Engine is the main entry point for the ray tracer.
// It drives the animator, the camera and the renderer from the window's message loop.
type Engine interface {
	// Run opens the window, builds the program for the scene, and blocks until the window closes.
	// The renderer is stopped before Run returns.
	//
	// Returns:
	//   - error: error if the window or the first program could not be created
	Run() error

	// Step advances the scene by dt seconds and renders one frame.
	// A frame that fails is logged and counted as dropped.
	//
	// Parameters:
	//   - dt: the elapsed time since the previous step in seconds
	//
	// Returns:
	//   - error: the frame error, if any
	Step(dt float32) error

	// Quit closes the window, ending Run after the current iteration.
	Quit()

	// Paused reports whether animation is paused.
	Paused() bool

	// SetPaused pauses or resumes animation. Rendering continues while paused.
	SetPaused(paused bool)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Stats returns the profiler's lifetime totals.
	Stats() profiler.Stats

	// Scene returns the scene being rendered.
	Scene() scene.Scene

	// Renderer returns the render context.
	Renderer() renderer.Renderer

	// Camera returns the camera, or nil if none was configured.
	Camera() camera.Camera
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Without WithRenderer a wgpu renderer configured from the engine's config is created.
// Without WithAnimator an orbit animator configured from the same config is created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		cfg: config.Default(),
		now: time.Now,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.renderer == nil {
		e.renderer = renderer.NewRenderer(rendererOptions(e.cfg)...)
	}
	if e.animator == nil {
		e.animator = animator.NewAnimator(animator.BackendTypeOrbit,
			animator.WithTimeScale(e.cfg.Animation.TimeScale),
			animator.WithFixedStep(e.cfg.Animation.FixedStep),
			animator.WithPaused(e.cfg.Animation.Paused),
		)
	}
	if e.camera != nil && e.controller == nil {
		e.controller = camera.NewCameraController()
	}

	e.profilingEnabled = e.profilingEnabled || e.cfg.Profiling.Enabled
	e.profiler = profiler.NewProfiler(
		profiler.WithInterval(time.Duration(e.cfg.Profiling.IntervalMs)*time.Millisecond),
		profiler.WithClock(e.now),
	)
	return e
}

// rendererOptions maps the render and window sections of cfg onto renderer options.
func rendererOptions(cfg config.Config) []renderer.RendererBuilderOption {
	mode, err := renderer.ParsePresentMode(cfg.Render.PresentMode)
	if err != nil {
		log.Printf("[Engine] %v, using vsync", err)
		mode = renderer.PresentModeVSync
	}
	return []renderer.RendererBuilderOption{
		renderer.WithTitle(cfg.Window.Title),
		renderer.WithPresentMode(mode),
		renderer.WithShaderValidation(cfg.Render.ValidateShaders),
		renderer.WithForceSoftwareRenderer(cfg.Render.ForceSoftware),
	}
}

func (e *engine) Run() error {
	if e.scene == nil {
		return ErrNoScene
	}
	defer e.renderer.Stop()

	if err := e.renderer.InitWindow(e.cfg.Window.Width, e.cfg.Window.Height, e.cfg.Window.Fullscreen); err != nil {
		return fmt.Errorf("failed to initialize window: %w", err)
	}
	w := e.renderer.Window()
	e.syncCanvas(w.Width(), w.Height())

	if e.camera != nil {
		e.camera.Apply(e.scene)
	}
	if err := e.renderer.InitShaders(e.scene.Defines()); err != nil {
		return fmt.Errorf("failed to build initial program: %w", err)
	}

	w.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		e.syncCanvas(width, height)
	})
	w.SetKeyDownCallback(e.keyDown)
	w.SetKeyUpCallback(func(keyCode uint32) {
		if e.controller != nil {
			e.controller.KeyUp(keyCode)
		}
	})

	e.lastFrame = e.now()
	w.SetUpdateCallback(func() {
		now := e.now()
		dt := float32(now.Sub(e.lastFrame).Seconds())
		e.lastFrame = now
		_ = e.Step(dt)
	})

	log.Printf("[Engine] running %q at %dx%d", e.scene.Name(), w.Width(), w.Height())
	w.ProcessMessages()

	stats := e.profiler.Stats()
	log.Printf("[Engine] stopped after %d frames (%d dropped, %d rebuilds)", stats.Frames, stats.Dropped, stats.Rebuilds)
	return nil
}

func (e *engine) Step(dt float32) error {
	e.animator.Tick(dt, e.scene)

	if e.camera != nil && e.controller != nil {
		if e.controller.Update(e.camera, dt) {
			e.camera.Apply(e.scene)
		}
	}

	if w := e.renderer.Window(); w != nil {
		e.syncCanvas(w.Width(), w.Height())
	}

	if err := e.renderer.Frame(e.scene); err != nil {
		log.Printf("[Engine] frame dropped: %v", err)
		e.profiler.Drop()
		e.profiler.SetRebuilds(e.renderer.Rebuilds())
		return err
	}

	e.profiler.SetRebuilds(e.renderer.Rebuilds())
	if e.profilingEnabled {
		e.profiler.Tick()
	} else {
		e.profiler.Count()
	}
	return nil
}

// syncCanvas writes the framebuffer size into the scene globals when it changes.
// Zero sizes from a minimized window are ignored.
func (e *engine) syncCanvas(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == e.canvasWidth && height == e.canvasHeight {
		return
	}
	e.canvasWidth, e.canvasHeight = width, height
	e.scene.SetCanvasSize(int32(width), int32(height))
}

// keyDown handles engine keys and forwards the rest to the camera controller.
func (e *engine) keyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyEsc:
		e.Quit()
	case common.KeySpace:
		e.SetPaused(!e.Paused())
		log.Printf("[Engine] paused: %t", e.Paused())
	case common.KeyP:
		if e.profilingEnabled {
			e.DisableProfiler()
		} else {
			e.EnableProfiler()
		}
	default:
		if e.controller != nil {
			e.controller.KeyDown(keyCode)
		}
	}
}

func (e *engine) Quit() {
	if w := e.renderer.Window(); w != nil {
		if err := w.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
	}
}

func (e *engine) Paused() bool {
	return e.animator.Paused()
}

func (e *engine) SetPaused(paused bool) {
	e.animator.SetPaused(paused)
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Stats() profiler.Stats {
	return e.profiler.Stats()
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}
