package animator

import "github.com/Carmen-Shannon/oxy-rt/engine/scene"

// animator is the implementation of the Animator interface.
type animator struct {
	backendType AnimatorBackendType
	backend     AnimatorBackend
	timeScale   float32
	fixedStep   float32
	paused      bool
}

// Animator advances every RotatingPrimitive of a Scene and writes the resulting
// positions into the spheres and point lights they target.
//
// Only positions and orbit phases are written. Radii, materials and every other field
// of the target are left as they were, so a tick never changes the Scene's Defines.
type Animator interface {
	// Tick advances all orbit directives by dt seconds (scaled by the time scale, or
	// replaced by the fixed step when one is configured). Directives whose target index
	// is out of range are skipped and leave the scene unchanged.
	//
	// Parameters:
	//   - dt: elapsed time since the previous tick in seconds
	//   - s: the scene to animate
	//
	// Returns:
	//   - int: the number of targets written
	Tick(dt float32, s scene.Scene) int

	// BackendType returns the motion model in use.
	BackendType() AnimatorBackendType

	// Paused reports whether ticks are currently ignored.
	Paused() bool

	// SetPaused stops or resumes animation.
	SetPaused(paused bool)

	// TimeScale returns the multiplier applied to every time step.
	TimeScale() float32

	// SetTimeScale sets the multiplier applied to every time step.
	SetTimeScale(scale float32)
}

var _ Animator = &animator{}

// NewAnimator creates a new Animator.
//
// Parameters:
//   - backendType: the motion model to use
//   - options: functional options applied in order
//
// Returns:
//   - Animator: the new animator
func NewAnimator(backendType AnimatorBackendType, options ...AnimatorBuilderOption) Animator {
	a := &animator{
		backendType: backendType,
		timeScale:   1,
	}
	switch backendType {
	case BackendTypeOrbit:
		fallthrough
	default:
		a.backend = newOrbitAnimatorBackend()
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *animator) Tick(dt float32, s scene.Scene) int {
	if a.paused {
		return 0
	}
	step := dt
	if a.fixedStep > 0 {
		step = a.fixedStep
	}
	step *= a.timeScale

	written := 0
	for i, rp := range s.RotatingPrimitives() {
		phase, pos := a.backend.Advance(rp, step)

		var ok bool
		switch rp.Kind {
		case scene.TargetSphere:
			ok = s.SetSphereCenter(rp.Index, pos)
		case scene.TargetPointLight:
			ok = s.SetPointLightPosition(rp.Index, pos)
		}
		if !ok {
			continue
		}
		s.SetRotationPhase(i, phase)
		written++
	}
	return written
}

func (a *animator) BackendType() AnimatorBackendType {
	return a.backendType
}

func (a *animator) Paused() bool {
	return a.paused
}

func (a *animator) SetPaused(paused bool) {
	a.paused = paused
}

func (a *animator) TimeScale() float32 {
	return a.timeScale
}

func (a *animator) SetTimeScale(scale float32) {
	a.timeScale = scale
}
