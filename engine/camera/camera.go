package camera

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/chewxy/math32"
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	position [3]float32

	// yaw turns around world +Y, pitch around the camera's right axis
	yaw   float32
	pitch float32

	// maxPitch bounds |pitch| so the view never flips over the pole
	maxPitch float32
}

// Camera is a free-flying viewpoint described by a position plus yaw and pitch angles.
// The ray tracer consumes it as a position and a unit orientation quaternion stored in the
// scene globals. With zero yaw and pitch the camera looks down -Z with +Y up.
type Camera interface {
	// Position returns the camera position in world space.
	Position() [3]float32

	// Yaw returns the rotation around world +Y in radians, in [0, 2π).
	Yaw() float32

	// Pitch returns the rotation around the camera's right axis in radians.
	// Positive pitch looks up.
	Pitch() float32

	// Rotation returns the orientation as a unit quaternion (x, y, z, w).
	Rotation() [4]float32

	// Forward returns the unit view direction.
	Forward() [3]float32

	// Right returns the unit right vector, always horizontal.
	Right() [3]float32

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - position: the new world position
	SetPosition(position [3]float32)

	// SetYawPitch sets both angles. Yaw is wrapped and pitch clamped.
	//
	// Parameters:
	//   - yaw: rotation around world +Y in radians
	//   - pitch: rotation around the right axis in radians
	SetYawPitch(yaw, pitch float32)

	// Rotate adds to the current angles.
	//
	// Parameters:
	//   - dYaw: yaw change in radians
	//   - dPitch: pitch change in radians
	Rotate(dYaw, dPitch float32)

	// Move translates along the camera's forward and right axes and world up.
	//
	// Parameters:
	//   - forward: distance along Forward
	//   - right: distance along Right
	//   - up: distance along world +Y
	Move(forward, right, up float32)

	// LookAt turns the camera toward target. Does nothing if target equals the position.
	//
	// Parameters:
	//   - target: the world point to face
	LookAt(target [3]float32)

	// Apply writes the camera position and orientation into the scene globals.
	//
	// Parameters:
	//   - s: the scene to update
	Apply(s scene.Scene)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the new camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		maxPitch: math32.Pi/2 - 0.01,
	}
	for _, opt := range options {
		opt(c)
	}
	c.SetYawPitch(c.yaw, c.pitch)
	return c
}

func (c *cameraImpl) Position() [3]float32 {
	return c.position
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Rotation() [4]float32 {
	return common.QuatFromYawPitch(c.yaw, c.pitch)
}

func (c *cameraImpl) Forward() [3]float32 {
	cp := math32.Cos(c.pitch)
	return [3]float32{
		-math32.Sin(c.yaw) * cp,
		math32.Sin(c.pitch),
		-math32.Cos(c.yaw) * cp,
	}
}

func (c *cameraImpl) Right() [3]float32 {
	return [3]float32{math32.Cos(c.yaw), 0, -math32.Sin(c.yaw)}
}

func (c *cameraImpl) SetPosition(position [3]float32) {
	c.position = position
}

func (c *cameraImpl) SetYawPitch(yaw, pitch float32) {
	c.yaw = common.WrapAngle(yaw)
	c.pitch = clamp(pitch, -c.maxPitch, c.maxPitch)
}

func (c *cameraImpl) Rotate(dYaw, dPitch float32) {
	c.SetYawPitch(c.yaw+dYaw, c.pitch+dPitch)
}

func (c *cameraImpl) Move(forward, right, up float32) {
	f := c.Forward()
	r := c.Right()
	for i := range c.position {
		c.position[i] += f[i]*forward + r[i]*right
	}
	c.position[1] += up
}

func (c *cameraImpl) LookAt(target [3]float32) {
	d := [3]float32{
		target[0] - c.position[0],
		target[1] - c.position[1],
		target[2] - c.position[2],
	}
	if d == [3]float32{} {
		return
	}
	d = common.Normalize3(d[0], d[1], d[2])
	c.SetYawPitch(math32.Atan2(-d[0], -d[2]), math32.Asin(d[1]))
}

func (c *cameraImpl) Apply(s scene.Scene) {
	s.SetCamera(c.position, c.Rotation())
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
