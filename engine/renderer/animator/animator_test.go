package animator

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orbitScene(t *testing.T, speed float32) scene.Scene {
	t.Helper()
	s := scene.NewScene(
		scene.WithSpheres(primitive.NewSphere([3]float32{0, 1, 0}, 0.75, material.NewMaterial())),
		scene.WithPointLights(light.NewPointLight(light.WithPosition(0, 5, 0), light.WithRadius(0.3))),
	)
	_, err := s.AddRotatingPrimitive(scene.RotatingPrimitive{
		Kind: scene.TargetSphere, Index: 0,
		Orbit: [4]float32{0, 1, -4, 2}, A: 1, B: 0.5, Speed: 1.3,
	})
	require.NoError(t, err)
	_, err = s.AddRotatingPrimitive(scene.RotatingPrimitive{
		Kind: scene.TargetPointLight, Index: 0,
		Orbit: [4]float32{0, 5, 0, 3}, A: 1, B: 1, Current: 1, Speed: speed,
	})
	require.NoError(t, err)
	return s
}

func assertVecInDelta(t *testing.T, expected, actual [3]float32) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], 1e-4, "component %d", i)
	}
}

func TestTickWritesOrbitPosition(t *testing.T) {
	s := orbitScene(t, 0.5)
	a := NewAnimator(BackendTypeOrbit)

	assert.Equal(t, 2, a.Tick(1, s))

	sp := s.Spheres()[0]
	assertVecInDelta(t, [3]float32{2 * math32.Cos(1.3), 1, -4 + 2*0.5*math32.Sin(1.3)}, sp.Center())
	assert.Equal(t, float32(0.75), sp.Radius())

	pl := s.PointLights()[0]
	assertVecInDelta(t, [3]float32{3 * math32.Cos(1.5), 5, 3 * math32.Sin(1.5)}, pl.Position())
	assert.Equal(t, float32(0.3), pl.Pos[3])

	assert.InDelta(t, 1.3, s.RotatingPrimitives()[0].Current, 1e-6)
}

func TestFullRevolutionIsPeriodic(t *testing.T) {
	s := orbitScene(t, 2)
	a := NewAnimator(BackendTypeOrbit)
	a.Tick(0.01, s)
	start := s.PointLights()[0].Position()

	a.Tick(common.TwoPi/2, s)
	assertVecInDelta(t, start, s.PointLights()[0].Position())

	phase := s.RotatingPrimitives()[1].Current
	assert.GreaterOrEqual(t, phase, float32(0))
	assert.Less(t, phase, common.TwoPi)
}

func TestPhaseStaysWrapped(t *testing.T) {
	s := orbitScene(t, -7)
	a := NewAnimator(BackendTypeOrbit)
	for range 1000 {
		a.Tick(0.37, s)
	}
	for _, rp := range s.RotatingPrimitives() {
		assert.GreaterOrEqual(t, rp.Current, float32(0))
		assert.Less(t, rp.Current, common.TwoPi)
	}
}

func TestRemovedTargetDropsDirective(t *testing.T) {
	s := orbitScene(t, 1)
	require.NoError(t, s.RemoveSphere(0))
	_, err := s.AddRotatingPrimitive(scene.RotatingPrimitive{Kind: scene.TargetSphere, Index: 0})
	assert.Error(t, err)

	before := s.PointLights()
	a := NewAnimator(BackendTypeOrbit)
	assert.Equal(t, 1, a.Tick(0.5, s))
	assert.NotEqual(t, before, s.PointLights())
	assert.Empty(t, s.Spheres())
}

func TestDanglingDirectiveLeavesSceneUnchanged(t *testing.T) {
	s := &danglingScene{Scene: orbitScene(t, 1)}
	spheres := s.Spheres()
	lights := s.PointLights()

	a := NewAnimator(BackendTypeOrbit)
	assert.NotPanics(t, func() {
		assert.Equal(t, 0, a.Tick(0.5, s))
	})
	assert.Equal(t, spheres, s.Spheres())
	assert.Equal(t, lights, s.PointLights())
}

func TestPausedAndScaled(t *testing.T) {
	s := orbitScene(t, 1)
	a := NewAnimator(BackendTypeOrbit, WithPaused(true))
	before := s.Spheres()
	assert.Equal(t, 0, a.Tick(1, s))
	assert.Equal(t, before, s.Spheres())

	a.SetPaused(false)
	a.SetTimeScale(0)
	a.Tick(1, s)
	assert.InDelta(t, 0, s.RotatingPrimitives()[0].Current, 1e-6)
}

func TestFixedStepIgnoresDelta(t *testing.T) {
	s := orbitScene(t, 1)
	a := NewAnimator(BackendTypeOrbit, WithFixedStep(0.25), WithTimeScale(2))
	a.Tick(100, s)
	assert.InDelta(t, 1.3*0.5, s.RotatingPrimitives()[0].Current, 1e-5)
}

// danglingScene reports directives whose indices point past every collection.
type danglingScene struct {
	scene.Scene
}

func (d *danglingScene) RotatingPrimitives() []scene.RotatingPrimitive {
	rps := d.Scene.RotatingPrimitives()
	for i := range rps {
		rps[i].Index += 10
	}
	return rps
}
