// pre_processor.go implements the WGSL shader pre-processor. It scans shader source for
// @oxy: annotations, replaces them with injected record structs, scene-shape constants and
// generated binding declarations, and collects the declarations list the renderer uses to
// match bindings to scene buffers.
package shader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

// registryEntry pairs a WGSL struct source with the type name used in generated declarations.
type registryEntry struct {
	// Source is the raw WGSL struct definition text injected by @oxy:include.
	Source string

	// Type is the WGSL type name emitted in @oxy:group declarations (e.g. "Sphere").
	Type string

	// Count returns the number of elements an array<T> binding of this struct holds for the
	// given scene shape. Nil for structs that are never bound as arrays.
	Count func(scene.Defines) int
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string

	// declarations accumulates group annotations during a Process call.
	declarations []Annotation
}

// PreProcessor specializes annotated WGSL source for one scene shape.
type PreProcessor interface {
	// Process replaces every @oxy: annotation in source with its WGSL output for the given
	// defines. The declarations list is reset at the start of each call.
	//
	// Parameters:
	//   - source: the annotated WGSL source
	//   - defines: the scene shape to specialize for
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: an error if any annotation is malformed or cannot be expanded
	Process(source string, defines scene.Defines) (string, error)

	// Declarations returns the group annotations collected during the most recent Process
	// call, in source order.
	//
	// Returns:
	//   - []Annotation: the declarations collected during the last Process call
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with every record struct registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgMaterial: {Source: material.GPUMaterialSource, Type: "Material"},
			AnnotationArgSphere: {Source: primitive.GPUSphereSource, Type: "Sphere",
				Count: func(d scene.Defines) int { return d.SphereSize }},
			AnnotationArgPlane: {Source: primitive.GPUPlaneSource, Type: "Plane",
				Count: func(d scene.Defines) int { return d.PlaneSize }},
			AnnotationArgPointLight: {Source: light.GPUPointLightSource, Type: "PointLight",
				Count: func(d scene.Defines) int { return d.LightPointSize }},
			AnnotationArgDirectionalLight: {Source: light.GPUDirectionalLightSource, Type: "DirectionalLight",
				Count: func(d scene.Defines) int { return d.LightDirectSize }},
			AnnotationArgSceneGlobals: {Source: scene.GPUSceneGlobalsSource, Type: "SceneGlobals"},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform: "var<uniform>",
			annotationArgStorageTypeRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string, defines scene.Defines) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			out = append(out, p.structRegistry[a.Args[0]].Source)
		case annotationTypeDefines:
			out = append(out, definesSource(defines))
		case AnnotationTypeBindingGroup:
			decl, err := p.bindingSource(*a, defines)
			if err != nil {
				return "", err
			}
			out = append(out, decl)
			p.declarations = append(p.declarations, *a)
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

// bindingSource renders the @group/@binding declaration for a group annotation.
// Uniform arrays get a fixed length of max(1, count) since WGSL has no zero-length arrays.
func (p *preProcessor) bindingSource(a Annotation, defines scene.Defines) (string, error) {
	addrSpace := p.addressSpaceRegistry[a.Args[0]]
	entry := p.structRegistry[a.ElementType()]

	wgslType := entry.Type
	if a.IsArray() {
		switch {
		case entry.Count != nil:
			wgslType = fmt.Sprintf("array<%s, %d>", entry.Type, max(1, entry.Count(defines)))
		case a.Args[0] == annotationArgStorageTypeUniform:
			return "", fmt.Errorf("line %d: %s has no scene count and cannot be a uniform array", a.Line, a.ElementType())
		default:
			wgslType = fmt.Sprintf("array<%s>", entry.Type)
		}
	}
	return fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;", *a.Group, *a.Binding, addrSpace, a.Args[1], wgslType), nil
}

// definesSource renders the scene shape as WGSL constants.
func definesSource(d scene.Defines) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "const SPHERE_SIZE: i32 = %d;\n", d.SphereSize)
	fmt.Fprintf(&sb, "const PLANE_SIZE: i32 = %d;\n", d.PlaneSize)
	fmt.Fprintf(&sb, "const LIGHT_POINT_SIZE: i32 = %d;\n", d.LightPointSize)
	fmt.Fprintf(&sb, "const LIGHT_DIRECT_SIZE: i32 = %d;\n", d.LightDirectSize)
	fmt.Fprintf(&sb, "const ITERATIONS: i32 = %d;\n", d.Iterations)
	fmt.Fprintf(&sb, "const AMBIENT_COLOR: vec3<f32> = %s;\n", vec3Literal(d.AmbientColor))
	fmt.Fprintf(&sb, "const SHADOW_AMBIENT: vec3<f32> = %s;", vec3Literal(d.ShadowAmbient))
	return sb.String()
}

func vec3Literal(v [3]float32) string {
	return fmt.Sprintf("vec3<f32>(%s, %s, %s)", floatLiteral(v[0]), floatLiteral(v[1]), floatLiteral(v[2]))
}

// floatLiteral formats v as a WGSL float literal that always carries a decimal point.
func floatLiteral(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
