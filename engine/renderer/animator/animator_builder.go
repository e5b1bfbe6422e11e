package animator

// AnimatorBuilderOption is a functional option for configuring an Animator during construction.
type AnimatorBuilderOption func(*animator)

// WithTimeScale is an option builder that sets the multiplier applied to every time step.
//
// Parameters:
//   - scale: the time multiplier, 1 for real time
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the time scale option to an animator
func WithTimeScale(scale float32) AnimatorBuilderOption {
	return func(a *animator) {
		a.timeScale = scale
	}
}

// WithFixedStep is an option builder that makes every Tick advance by the same amount
// of time regardless of the measured frame delta. A step of 0 restores real time.
//
// Parameters:
//   - step: the fixed time step in seconds
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the fixed step option to an animator
func WithFixedStep(step float32) AnimatorBuilderOption {
	return func(a *animator) {
		a.fixedStep = step
	}
}

// WithPaused is an option builder that creates the Animator in the paused state.
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the paused option to an animator
func WithPaused(paused bool) AnimatorBuilderOption {
	return func(a *animator) {
		a.paused = paused
	}
}
