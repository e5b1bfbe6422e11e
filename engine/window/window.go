package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the drawing surface and event loop the renderer presents into.
type Window interface {
	// SetUpdateCallback sets the function run once per iteration of the message loop.
	//
	// Parameters:
	//   - callback: the per-iteration function
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function run when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: receives the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the function run when a key is pressed or repeats.
	//
	// Parameters:
	//   - callback: receives the GLFW key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function run when a key is released.
	//
	// Parameters:
	//   - callback: receives the GLFW key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseMoveCallback sets the function run when the cursor moves.
	//
	// Parameters:
	//   - callback: receives the cursor position in window coordinates
	SetMouseMoveCallback(callback func(x, y int32))

	// SurfaceDescriptor returns the platform descriptor the GPU instance creates its surface from.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// Close destroys the window. Safe to call more than once.
	//
	// Returns:
	//   - error: error if the window was never created
	Close() error

	// ProcessMessages runs the message loop until the window closes, calling the update
	// callback once per iteration. It blocks the calling goroutine.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// Fullscreen reports whether the window covers the primary monitor.
	Fullscreen() bool
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	// size limits applied while windowed
	maxWidth, maxHeight, minWidth, minHeight int

	// width and height hold the framebuffer size. Zero requests the monitor's native size.
	width, height int

	fullscreen bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onMouseMove func(x, y int32)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the windowing system could not provide a window
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy-rt",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformProcessMessages(w) {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) Fullscreen() bool {
	return w.fullscreen
}
