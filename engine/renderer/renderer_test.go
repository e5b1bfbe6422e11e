package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereAt(x float32) primitive.GPUSphere {
	return primitive.NewSphere([3]float32{x, 0, 0}, 1, material.NewMaterial())
}

func testScene() scene.Scene {
	return scene.NewScene(
		scene.WithReflectDepth(3),
		scene.WithSpheres(sphereAt(0), sphereAt(3)),
		scene.WithPlanes(primitive.NewPlane([3]float32{0, -1, 0}, [3]float32{0, 1, 0}, material.NewMaterial())),
		scene.WithDirectionalLights(light.NewDirectionalLight(light.WithDirection(1, -1, 0))),
	)
}

func TestRendererLifecycle(t *testing.T) {
	r, win, backend := newTestRenderer(WithPresentMode(PresentModeUncapped))
	s := testScene()

	assert.Equal(t, StateUninitialized, r.State())
	assert.ErrorIs(t, r.Draw(s), ErrNotReady)
	assert.ErrorIs(t, r.InitShaders(s.Defines()), ErrNotReady)

	require.NoError(t, r.InitWindow(800, 600, false))
	assert.Equal(t, StateWindowReady, r.State())
	assert.Same(t, win, r.Window())
	assert.Equal(t, [][2]int{{800, 600}}, backend.configured)
	assert.Equal(t, PresentModeUncapped, backend.presentMode)
	assert.ErrorIs(t, r.InitWindow(800, 600, false), ErrAlreadyInitialized)
	assert.ErrorIs(t, r.Draw(s), ErrNotReady)

	_, ok := r.Defines()
	assert.False(t, ok)

	require.NoError(t, r.InitShaders(s.Defines()))
	assert.Equal(t, StateProgramReady, r.State())
	d, ok := r.Defines()
	assert.True(t, ok)
	assert.Equal(t, s.Defines(), d)
	assert.Equal(t, 1, r.Rebuilds())

	require.NoError(t, r.Draw(s))
	assert.Equal(t, 1, backend.frames)
	assert.Equal(t, 1, backend.draws)
	assert.Equal(t, 1, backend.presents)

	r.Stop()
	assert.Equal(t, StateStopped, r.State())
	assert.Equal(t, 1, backend.releasedAll)
	assert.Equal(t, 1, win.closed)
	assert.Len(t, backend.released, 1)

	r.Stop()
	assert.Equal(t, 1, backend.releasedAll)
	assert.Equal(t, 1, win.closed)

	assert.ErrorIs(t, r.Draw(s), ErrStopped)
	assert.ErrorIs(t, r.InitShaders(s.Defines()), ErrStopped)
	assert.ErrorIs(t, r.InitWindow(800, 600, false), ErrStopped)
	assert.ErrorIs(t, r.Frame(s), ErrStopped)
}

func TestStopBeforeInit(t *testing.T) {
	r, win, backend := newTestRenderer()
	r.Stop()
	assert.Equal(t, StateStopped, r.State())
	assert.Zero(t, win.closed)
	assert.Zero(t, backend.releasedAll)
}

func TestInitWindowFailure(t *testing.T) {
	backendCalls := 0
	r := NewRenderer(
		WithWindowFactory(func(string, int, int, bool) (window.Window, error) {
			return nil, errors.New("no display")
		}),
		WithBackendFactory(func(*wgpu.SurfaceDescriptor, BackendConfig) (RendererBackend, error) {
			backendCalls++
			return &fakeBackend{}, nil
		}),
	)

	err := r.InitWindow(640, 480, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Equal(t, StateUninitialized, r.State())
	assert.Zero(t, backendCalls)
	assert.Nil(t, r.Window())
}

func TestInitBackendFailureClosesWindow(t *testing.T) {
	win := &fakeWindow{}
	r := NewRenderer(
		WithWindowFactory(func(string, int, int, bool) (window.Window, error) {
			return win, nil
		}),
		WithBackendFactory(func(*wgpu.SurfaceDescriptor, BackendConfig) (RendererBackend, error) {
			return nil, errors.New("no adapter")
		}),
	)

	require.Error(t, r.InitWindow(640, 480, false))
	assert.Equal(t, StateUninitialized, r.State())
	assert.Equal(t, 1, win.closed)
}

func TestFrameRebuildsOnlyOnShapeChange(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))

	require.NoError(t, r.Frame(s))
	assert.Equal(t, 1, r.Rebuilds())

	// moving a sphere or changing a light's color is a value change
	require.True(t, s.SetSphereCenter(0, [3]float32{5, 5, 5}))
	require.NoError(t, s.SetDirectionalLight(0, light.NewDirectionalLight(light.WithColor(1, 0, 0))))
	s.SetCamera([3]float32{0, 1, -5}, [4]float32{0, 0, 0, 1})
	require.NoError(t, r.Frame(s))
	assert.Equal(t, 1, r.Rebuilds())
	assert.False(t, r.NeedsRebuild(s.Defines()))

	s.AddSphere(sphereAt(9))
	assert.True(t, r.NeedsRebuild(s.Defines()))
	require.NoError(t, r.Frame(s))
	assert.Equal(t, 2, r.Rebuilds())
	d, _ := r.Defines()
	assert.Equal(t, 3, d.SphereSize)

	assert.Len(t, backend.registered, 2)
	require.Len(t, backend.released, 1)
	assert.Same(t, backend.registered[0], backend.released[0])
	assert.Equal(t, 3, backend.draws)
}

func TestFailedBuildKeepsProgram(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))
	require.NoError(t, r.Frame(s))
	linked, _ := r.Defines()

	backend.failLink = true
	s.AddSphere(sphereAt(9))

	err := r.Frame(s)
	var buildErr *shader.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, shader.StageLink, buildErr.Stage)
	assert.Equal(t, "entry point not found", buildErr.Log)

	assert.Equal(t, StateProgramReady, r.State())
	d, ok := r.Defines()
	assert.True(t, ok)
	assert.Equal(t, linked, d)
	assert.Equal(t, 1, r.Rebuilds())
	assert.ErrorIs(t, r.Draw(s), ErrStaleProgram)

	// the same failing shape is not rebuilt every frame
	attempts := len(backend.registered)
	assert.ErrorAs(t, r.Frame(s), &buildErr)
	assert.Len(t, backend.registered, attempts)

	// going back to the linked shape draws with the old program
	require.NoError(t, s.RemoveSphere(2))
	require.NoError(t, r.Frame(s))
	assert.Equal(t, 1, r.Rebuilds())

	// an explicit InitShaders always retries
	backend.failLink = false
	s.AddSphere(sphereAt(9))
	require.NoError(t, r.InitShaders(s.Defines()))
	assert.Equal(t, 2, r.Rebuilds())
	require.NoError(t, r.Draw(s))
}

func TestFailedFirstBuildStaysWindowReady(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))

	backend.failCompile = true
	var buildErr *shader.BuildError
	require.ErrorAs(t, r.InitShaders(s.Defines()), &buildErr)
	assert.Equal(t, shader.StageCompile, buildErr.Stage)
	assert.Equal(t, StateWindowReady, r.State())
	assert.ErrorIs(t, r.Draw(s), ErrNotReady)
	assert.Len(t, backend.released, 1)

	backend.failCompile = false
	backend.failBindGroup = true
	err := r.InitShaders(s.Defines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
	assert.Equal(t, StateWindowReady, r.State())
	assert.Len(t, backend.released, 2)
}

func TestSceneTooLarge(t *testing.T) {
	r, _, backend := newTestRenderer()
	require.NoError(t, r.InitWindow(800, 600, false))

	// 1000 spheres at 80 bytes each do not fit in a 64 KiB uniform binding
	defines := scene.Defines{SphereSize: 1000, PlaneSize: 1, Iterations: 2}
	err := r.InitShaders(defines)
	assert.ErrorIs(t, err, ErrSceneTooLarge)
	assert.Contains(t, err.Error(), "spheres")
	assert.Empty(t, backend.registered)
	assert.Equal(t, StateWindowReady, r.State())

	defines.SphereSize = 800
	require.NoError(t, r.InitShaders(defines))
}

func TestProgramPipelineState(t *testing.T) {
	r, _, backend := newTestRenderer()
	require.NoError(t, r.InitWindow(800, 600, false))
	require.NoError(t, r.InitShaders(testScene().Defines()))

	require.Len(t, backend.registered, 1)
	p := backend.registered[0]
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
}

func TestDrawUploadsSceneBuffers(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))
	require.NoError(t, r.Frame(s))

	require.Len(t, backend.bindSizes, 1)
	sizes := backend.bindSizes[0]
	assert.Equal(t, uint64(64), sizes[0])
	assert.Equal(t, uint64(2*80), sizes[1])
	assert.Equal(t, uint64(96), sizes[2])
	// no point lights, but the binding still gets a one-element buffer
	assert.Equal(t, uint64(32), sizes[3])
	assert.Equal(t, uint64(32), sizes[4])

	require.Len(t, backend.writes, 1)
	writes := backend.writes[0]
	require.Len(t, writes, 4)
	bindings := make([]int, 0, len(writes))
	for _, w := range writes {
		bindings = append(bindings, w.Binding)
	}
	assert.Equal(t, []int{0, 1, 2, 4}, bindings)
	assert.Equal(t, s.MarshalGlobals(), writes[0].Data)
	assert.Equal(t, s.MarshalSpheres(), writes[1].Data)
	assert.Equal(t, s.MarshalDirectionalLights(), writes[3].Data)
}

func TestDrawBeginFrameFailure(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))
	require.NoError(t, r.InitShaders(s.Defines()))

	backend.failBegin = true
	err := r.Draw(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface lost")
	assert.Zero(t, backend.draws)
	assert.Equal(t, StateProgramReady, r.State())

	backend.failBegin = false
	require.NoError(t, r.Draw(s))
}

func TestDrawUploadFailureDropsFrame(t *testing.T) {
	r, _, backend := newTestRenderer()
	s := testScene()
	require.NoError(t, r.InitWindow(800, 600, false))
	require.NoError(t, r.InitShaders(s.Defines()))

	backend.failWrite = true
	err := r.Draw(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload")
	assert.Zero(t, backend.frames)
	assert.Zero(t, backend.draws)
	assert.Zero(t, backend.presents)
	assert.Equal(t, StateProgramReady, r.State())

	backend.failWrite = false
	require.NoError(t, r.Draw(s))
	assert.Equal(t, 1, backend.presents)
}

func TestResize(t *testing.T) {
	r, _, backend := newTestRenderer()
	r.Resize(1024, 768)
	assert.Empty(t, backend.configured)

	require.NoError(t, r.InitWindow(800, 600, false))
	r.Resize(1024, 768)
	r.Resize(0, 0)
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, backend.configured)

	r.Stop()
	r.Resize(640, 480)
	assert.Len(t, backend.configured, 2)
}

func TestParsePresentMode(t *testing.T) {
	for in, expected := range map[string]PresentMode{
		"uncapped": PresentModeUncapped,
		"vsync":    PresentModeVSync,
		"":         PresentModeVSync,
	} {
		mode, err := ParsePresentMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, mode, in)
	}

	mode, err := ParsePresentMode("triple")
	assert.Error(t, err)
	assert.Equal(t, PresentModeVSync, mode)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "program-ready", StateProgramReady.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestWindowTitle(t *testing.T) {
	for _, tc := range []struct{ in, expected string }{{"", "oxy-rt"}, {"orbit", "orbit"}} {
		var got string
		r := NewRenderer(
			WithTitle(tc.in),
			WithWindowFactory(func(title string, _, _ int, _ bool) (window.Window, error) {
				got = title
				return &fakeWindow{}, nil
			}),
			WithBackendFactory(func(*wgpu.SurfaceDescriptor, BackendConfig) (RendererBackend, error) {
				return &fakeBackend{}, nil
			}),
		)
		require.NoError(t, r.InitWindow(640, 480, false))
		assert.Equal(t, tc.expected, got)
		r.Stop()
	}
}
