package shader

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader feeds.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage, paired with a vertex shader.
	ShaderTypeFragment
)

// String returns the lowercase stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// shader is the implementation of the Shader interface.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	defines                    scene.Defines
	bindings                   []Binding
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	entryPoint                 string
	module                     *wgpu.ShaderModuleDescriptor

	pp PreProcessor
}

// Shader is one WGSL stage specialized for a scene shape. It exposes the processed source,
// its entry point and the bind group layouts parsed from it.
type Shader interface {
	// Key returns the shader's identifier.
	Key() string

	// Source returns the processed WGSL source.
	Source() string

	// ShaderType returns the pipeline stage.
	ShaderType() ShaderType

	// Defines returns the scene shape the source was specialized for.
	Defines() scene.Defines

	// EntryPoint returns the entry point function name.
	EntryPoint() string

	// Bindings returns every buffer binding declared by the source, sorted by group and binding.
	Bindings() []Binding

	// BindGroupLayoutDescriptor returns the layout descriptor for a group, or an empty
	// descriptor if the group is not declared.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors returns all layout descriptors keyed by group index.
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName returns the variable bound at group/binding, or "".
	BindGroupVarName(group, binding int) string

	// BindGroupFromVarName returns the binding index of varName within group.
	//
	// Returns:
	//   - int: the binding index, or -1
	//   - bool: whether varName was found
	BindGroupFromVarName(group int, varName string) (int, bool)

	// Module returns the descriptor used to create the device shader module.
	Module() *wgpu.ShaderModuleDescriptor

	// Declarations returns the group annotations expanded while processing the source.
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes annotated WGSL source for the given scene shape and extracts its
// entry point and bindings.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the pipeline stage
//   - source: annotated WGSL source
//   - defines: the scene shape to specialize for
//
// Returns:
//   - Shader: the specialized shader
//   - error: a *BuildError when pre-processing or parsing fails
func NewShader(key string, shaderType ShaderType, source string, defines scene.Defines) (Shader, error) {
	s := &shader{
		key:        key,
		shaderType: shaderType,
		defines:    defines,
		pp:         NewPreProcessor(),
	}
	if err := s.parseSource(source); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Defines() scene.Defines {
	return s.defines
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Bindings() []Binding {
	return s.bindings
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	return s.bindingVarNames[group][binding]
}

func (s *shader) BindGroupFromVarName(group int, varName string) (int, bool) {
	for binding, name := range s.bindingVarNames[group] {
		if name == varName {
			return binding, true
		}
	}
	return -1, false
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}

// parseSource processes the annotated source and fills in everything derived from it.
func (s *shader) parseSource(raw string) error {
	processed, err := s.pp.Process(raw, s.defines)
	if err != nil {
		return newBuildError(StagePreprocess, s.key, err)
	}
	s.source = processed

	s.entryPoint = parseEntryPoint(processed, s.shaderType)
	if s.entryPoint == "" {
		return newBuildError(StageParse, s.key, errors.New("no @"+s.shaderType.String()+" entry point"))
	}

	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: processed,
		},
	}

	var visibility wgpu.ShaderStage
	switch s.shaderType {
	case ShaderTypeVertex:
		visibility = wgpu.ShaderStageVertex
	case ShaderTypeFragment:
		visibility = wgpu.ShaderStageFragment
	}
	s.bindings = parseBindings(processed)
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(processed, visibility)
	return nil
}
