package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, expected, actual [3]float32) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], eps, "component %d of %v", i, actual)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, [3]float32{}, c.Position())
	assert.Equal(t, common.QuatIdentity(), c.Rotation())
	assertVec(t, [3]float32{0, 0, -1}, c.Forward())
	assertVec(t, [3]float32{1, 0, 0}, c.Right())
}

func TestForwardMatchesRotation(t *testing.T) {
	for _, angles := range [][2]float32{{0.3, 0.2}, {2.5, -0.7}, {5.9, 1.1}} {
		c := NewCamera(WithYawPitch(angles[0], angles[1]))
		q := c.Rotation()
		assertVec(t, c.Forward(), common.QuatRotate(q, [3]float32{0, 0, -1}))
		assertVec(t, c.Right(), common.QuatRotate(q, [3]float32{1, 0, 0}))
	}
}

func TestPitchIsClamped(t *testing.T) {
	c := NewCamera(WithMaxPitch(1))
	c.Rotate(0, 3)
	assert.InDelta(t, 1, c.Pitch(), eps)
	c.SetYawPitch(0, -3)
	assert.InDelta(t, -1, c.Pitch(), eps)
}

func TestYawIsWrapped(t *testing.T) {
	c := NewCamera()
	c.Rotate(-0.5, 0)
	assert.InDelta(t, common.TwoPi-0.5, c.Yaw(), eps)
	c.Rotate(1, 0)
	assert.InDelta(t, 0.5, c.Yaw(), eps)
}

func TestMove(t *testing.T) {
	// yaw of π/2 faces -X
	c := NewCamera(WithYawPitch(math32.Pi/2, 0), WithPosition(1, 2, 3))
	c.Move(2, 0, 0)
	assertVec(t, [3]float32{-1, 2, 3}, c.Position())
	c.Move(0, 1, 0.5)
	assertVec(t, [3]float32{-1, 2.5, 2}, c.Position())
}

func TestLookAt(t *testing.T) {
	c := NewCamera(WithPosition(0, 5, 10))
	target := [3]float32{0, 0, 0}
	c.LookAt(target)

	expected := common.Normalize3(0, -5, -10)
	assertVec(t, expected, c.Forward())
	assert.Less(t, c.Pitch(), float32(0))

	before := c.Rotation()
	c.LookAt(c.Position())
	assert.Equal(t, before, c.Rotation())
}

func TestApplyWritesSceneGlobals(t *testing.T) {
	s := scene.NewScene()
	c := NewCamera(WithPosition(1, 2, 3), WithYawPitch(0.4, 0.1))
	c.Apply(s)

	g := s.Globals()
	q := c.Rotation()
	for i := range q {
		assert.InDelta(t, q[i], g.QuatCameraRotation[i], eps)
	}
	assert.Equal(t, [3]float32{1, 2, 3}, g.CameraPos)
}

func TestControllerUpdate(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(2), WithTurnSpeed(1))
	c := NewCamera()

	assert.False(t, cc.Update(c, 1))
	assert.False(t, cc.KeyDown(common.KeySpace))

	assert.True(t, cc.KeyDown(common.KeyW))
	assert.True(t, cc.Update(c, 0.5))
	assertVec(t, [3]float32{0, 0, -1}, c.Position())

	// opposing keys cancel
	cc.KeyDown(common.KeyS)
	assert.False(t, cc.Update(c, 0.5))

	cc.Reset()
	cc.KeyDown(common.KeyLeft)
	assert.True(t, cc.Update(c, 0.25))
	assert.InDelta(t, 0.25, c.Yaw(), eps)

	cc.KeyUp(common.KeyLeft)
	assert.False(t, cc.Update(c, 1))
}
