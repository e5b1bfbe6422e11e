package shader

import "fmt"

// BuildStage names the step of a shader build that failed.
type BuildStage string

const (
	// StagePreprocess covers annotation expansion.
	StagePreprocess BuildStage = "preprocess"

	// StageParse covers entry point and binding extraction.
	StageParse BuildStage = "parse"

	// StageValidate covers the WGSL front-end check run before the source reaches the device.
	StageValidate BuildStage = "validate"

	// StageCompile covers shader module creation on the device.
	StageCompile BuildStage = "compile"

	// StageLink covers render pipeline creation from the compiled modules.
	StageLink BuildStage = "link"
)

// BuildError reports a failed shader build together with the diagnostic text produced by
// whichever stage rejected it. Log is meant for humans and is not parsed.
type BuildError struct {
	Stage BuildStage
	Key   string
	Log   string
	Err   error
}

// Error implements error.
func (e *BuildError) Error() string {
	return fmt.Sprintf("shader %q: %s failed: %s", e.Key, e.Stage, e.Log)
}

// Unwrap returns the underlying cause, if any.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// newBuildError wraps err as a BuildError for the given stage.
func newBuildError(stage BuildStage, key string, err error) *BuildError {
	return &BuildError{Stage: stage, Key: key, Log: err.Error(), Err: err}
}
