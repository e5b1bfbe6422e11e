// annotations.go defines the annotation types and argument constants understood by the
// WGSL pre-processor. Annotations are single-line WGSL comments prefixed with @oxy: that
// inject record struct sources, emit the scene-shape constants, and declare bindings
// whose array lengths follow the scene's collection sizes.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an annotation within a WGSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered record struct at the
	// annotation site.
	//
	// Syntax: //@oxy:include <struct_type>
	//
	// Example: //@oxy:include sphere
	annotationTypeInclude AnnotationType = "include"

	// annotationTypeDefines emits the scene-shape constants (collection sizes, iteration
	// depth, ambient terms) as WGSL const declarations.
	//
	// Syntax: //@oxy:defines
	annotationTypeDefines AnnotationType = "defines"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration and is
	// recorded in the pre-processor's declarations list. An array<T> type becomes a fixed-size
	// array sized by the matching scene collection.
	//
	// Syntax: //@oxy:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@oxy:group 0 1 storage_uniform spheres array<sphere>
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Annotation is a single parsed @oxy: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include: [0] = struct type key (e.g. "sphere")
	//   - defines: empty
	//   - group:   [0] = address space, [1] = var name, [2] = type key, optionally array<key>
	Args []AnnotationArg

	// Line is the 1-based source line the annotation was found on.
	Line int

	// Group is the @group index for group annotations. Nil otherwise.
	Group *int

	// Binding is the @binding index for group annotations. Nil otherwise.
	Binding *int
}

// IsArray reports whether a group annotation binds an array of records.
func (a Annotation) IsArray() bool {
	if a.Type != AnnotationTypeBindingGroup || len(a.Args) < 3 {
		return false
	}
	return strings.HasPrefix(string(a.Args[2]), "array<")
}

// ElementType returns the struct type key bound by a group annotation, with any array<>
// wrapper removed.
func (a Annotation) ElementType() AnnotationArg {
	if len(a.Args) < 3 {
		return ""
	}
	return AnnotationArg(unwrapArray(string(a.Args[2])))
}

// AnnotationArg is a typed string constant used as an annotation argument.
type AnnotationArg string

// Struct type arguments. Each maps to a Go record with an embedded .wgsl asset.
const (
	// AnnotationArgMaterial identifies the Material struct.
	// Source: engine/renderer/material/assets/material.wgsl
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgSphere identifies the Sphere struct.
	// Source: engine/primitive/assets/sphere.wgsl
	AnnotationArgSphere AnnotationArg = "sphere"

	// AnnotationArgPlane identifies the Plane struct.
	// Source: engine/primitive/assets/plane.wgsl
	AnnotationArgPlane AnnotationArg = "plane"

	// AnnotationArgPointLight identifies the PointLight struct.
	// Source: engine/light/assets/point_light.wgsl
	AnnotationArgPointLight AnnotationArg = "point_light"

	// AnnotationArgDirectionalLight identifies the DirectionalLight struct.
	// Source: engine/light/assets/directional_light.wgsl
	AnnotationArgDirectionalLight AnnotationArg = "directional_light"

	// AnnotationArgSceneGlobals identifies the SceneGlobals struct.
	// Source: engine/scene/assets/scene_globals.wgsl
	AnnotationArgSceneGlobals AnnotationArg = "scene_globals"
)

// Address space arguments for group annotations.
const (
	// annotationArgStorageTypeUniform maps to var<uniform> in WGSL.
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	// annotationArgStorageTypeRead maps to var<storage, read> in WGSL.
	annotationArgStorageTypeRead AnnotationArg = "storage_read"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgMaterial,
	AnnotationArgSphere,
	AnnotationArgPlane,
	AnnotationArgPointLight,
	AnnotationArgDirectionalLight,
	AnnotationArgSceneGlobals,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
}

// parseAnnotation attempts to parse a single line of WGSL source as an @oxy: annotation.
// Lines without the prefix yield (nil, nil).
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{Type: annotationTypeInclude, Args: []AnnotationArg{AnnotationArg(args[1])}, Line: lineNum}, nil

	case annotationTypeDefines:
		if len(args) != 1 {
			return nil, fmt.Errorf("line %d: @oxy defines annotation takes no arguments", lineNum)
		}
		return &Annotation{Type: annotationTypeDefines, Line: lineNum}, nil

	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires five arguments (group, binding, address space, name, type)", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q in @oxy group annotation", lineNum, args[1])
		}
		binding, err := strconv.Atoi(args[2])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @oxy group annotation", lineNum, args[2])
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @oxy group annotation", lineNum, args[3])
		}
		if elem := unwrapArray(args[5]); !slices.Contains(validStructTypes, AnnotationArg(elem)) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy group annotation", lineNum, elem)
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil

	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}

// unwrapArray strips an array<...> wrapper, returning the input unchanged when absent.
func unwrapArray(typeArg string) string {
	if inner, ok := strings.CutPrefix(typeArg, "array<"); ok {
		return strings.TrimSuffix(inner, ">")
	}
	return typeArg
}
