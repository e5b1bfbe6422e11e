package camera

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - x: X coordinate
//   - y: Y coordinate
//   - z: Z coordinate
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = [3]float32{x, y, z}
	}
}

// WithYawPitch sets the initial view angles in radians.
//
// Parameters:
//   - yaw: rotation around world +Y
//   - pitch: rotation around the right axis, positive looks up
//
// Returns:
//   - CameraBuilderOption: functional option to set the angles
func WithYawPitch(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

// WithMaxPitch bounds the absolute pitch. Values at or past π/2 let the view flip over the pole.
func WithMaxPitch(maxPitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if maxPitch > 0 {
			c.maxPitch = maxPitch
		}
	}
}
