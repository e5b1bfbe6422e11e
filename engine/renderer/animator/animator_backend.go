package animator

import "github.com/Carmen-Shannon/oxy-rt/engine/scene"

// AnimatorBackendType identifies the motion model used by an Animator.
type AnimatorBackendType int

const (
	// BackendTypeOrbit moves targets along the ellipse described by their RotatingPrimitive.
	BackendTypeOrbit AnimatorBackendType = iota
)

// AnimatorBackend computes the next state of one orbit directive. Backends are pure:
// they never touch the Scene, the Animator writes their results back.
type AnimatorBackend interface {
	// Advance moves rp forward by dt seconds.
	//
	// Parameters:
	//   - rp: the orbit directive at its current phase
	//   - dt: the time step in seconds
	//
	// Returns:
	//   - float32: the new phase in [0, 2π)
	//   - [3]float32: the target's new world-space position
	Advance(rp scene.RotatingPrimitive, dt float32) (float32, [3]float32)
}
