package shader

import (
	"github.com/gogpu/naga"
)

// Validate runs processed WGSL through the naga front end and reports its diagnostics as a
// BuildError. A nil result means naga compiled the module; the device driver still gets the
// final word when the module is created.
//
// Parameters:
//   - key: the shader key used in the error
//   - source: the processed WGSL source
//
// Returns:
//   - error: a *BuildError with Stage StageValidate, or nil
func Validate(key, source string) error {
	if _, err := naga.Compile(source); err != nil {
		return newBuildError(StageValidate, key, err)
	}
	return nil
}
