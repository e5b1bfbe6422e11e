package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/primitive"
	"github.com/chewxy/math32"
)

// ErrIndexOutOfRange is returned when a collection index does not name an element.
var ErrIndexOutOfRange = errors.New("scene: index out of range")

// ErrNonFiniteColor is returned when an ambient term has a NaN or infinite component.
// Such a term cannot be written as a shader constant.
var ErrNonFiniteColor = errors.New("scene: color component is not finite")

// Scene is the single owner of everything the ray tracer draws: the globals block,
// the ambient terms, the primitive and light collections, and the orbit directives
// that animate them.
//
// A Scene is not safe for concurrent use. The render loop, the animator and any
// scene editor must all run on the same goroutine.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Globals returns a copy of the uniform globals block.
	Globals() GPUSceneGlobals

	// SetCamera sets the eye position and its rotation quaternion.
	//
	// Parameters:
	//   - position: world-space eye position
	//   - rotation: unit quaternion xyzw
	SetCamera(position [3]float32, rotation [4]float32)

	// SetCanvasSize sets the framebuffer dimensions the shader maps pixels against.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	SetCanvasSize(width, height int32)

	// SetReflectDepth sets the maximum bounce count. Changing it changes Defines.
	//
	// Parameters:
	//   - depth: the bounce count, clamped to at least 0
	SetReflectDepth(depth int32)

	// SetBackgroundColor sets the color returned by rays that leave the scene.
	SetBackgroundColor(r, g, b float32)

	// AmbientColor returns the ambient light term.
	AmbientColor() [3]float32

	// SetAmbientColor sets the ambient light term. Changing it changes Defines.
	// A non-finite component leaves the term unchanged and returns ErrNonFiniteColor.
	SetAmbientColor(r, g, b float32) error

	// ShadowAmbient returns the light term applied inside shadows.
	ShadowAmbient() [3]float32

	// SetShadowAmbient sets the light term applied inside shadows. Changing it changes Defines.
	// A non-finite component leaves the term unchanged and returns ErrNonFiniteColor.
	SetShadowAmbient(r, g, b float32) error

	// Spheres returns a copy of the sphere collection.
	Spheres() []primitive.GPUSphere

	// AddSphere appends a sphere and returns its index.
	AddSphere(s primitive.GPUSphere) int

	// SetSphere replaces the sphere at index i.
	SetSphere(i int, s primitive.GPUSphere) error

	// RemoveSphere deletes the sphere at index i. Orbit directives targeting it are
	// dropped and those targeting later spheres are re-pointed.
	RemoveSphere(i int) error

	// SetSphereCenter moves the sphere at index i, keeping its radius and material.
	//
	// Returns:
	//   - bool: false when i is out of range and nothing was written
	SetSphereCenter(i int, center [3]float32) bool

	// Planes returns a copy of the plane collection.
	Planes() []primitive.GPUPlane

	// AddPlane appends a plane and returns its index.
	AddPlane(p primitive.GPUPlane) int

	// SetPlane replaces the plane at index i.
	SetPlane(i int, p primitive.GPUPlane) error

	// RemovePlane deletes the plane at index i.
	RemovePlane(i int) error

	// PointLights returns a copy of the point light collection.
	PointLights() []light.GPUPointLight

	// AddPointLight appends a point light and returns its index.
	AddPointLight(l light.GPUPointLight) int

	// SetPointLight replaces the point light at index i.
	SetPointLight(i int, l light.GPUPointLight) error

	// RemovePointLight deletes the point light at index i. Orbit directives targeting it
	// are dropped and those targeting later lights are re-pointed.
	RemovePointLight(i int) error

	// SetPointLightPosition moves the point light at index i, keeping its radius.
	//
	// Returns:
	//   - bool: false when i is out of range and nothing was written
	SetPointLightPosition(i int, position [3]float32) bool

	// DirectionalLights returns a copy of the directional light collection.
	DirectionalLights() []light.GPUDirectionalLight

	// AddDirectionalLight appends a directional light and returns its index.
	AddDirectionalLight(l light.GPUDirectionalLight) int

	// SetDirectionalLight replaces the directional light at index i.
	SetDirectionalLight(i int, l light.GPUDirectionalLight) error

	// RemoveDirectionalLight deletes the directional light at index i.
	RemoveDirectionalLight(i int) error

	// RotatingPrimitives returns a copy of the orbit directives.
	RotatingPrimitives() []RotatingPrimitive

	// AddRotatingPrimitive registers an orbit directive. The target must exist.
	//
	// Returns:
	//   - int: the directive's index
	//   - error: ErrIndexOutOfRange if the target does not exist
	AddRotatingPrimitive(rp RotatingPrimitive) (int, error)

	// RemoveRotatingPrimitive deletes the orbit directive at index i.
	RemoveRotatingPrimitive(i int) error

	// SetRotationPhase stores a new phase for the orbit directive at index i.
	//
	// Returns:
	//   - bool: false when i is out of range
	SetRotationPhase(i int, phase float32) bool

	// PurgeStaleReferences drops every orbit directive whose target index is out of range.
	//
	// Returns:
	//   - int: the number of directives dropped
	PurgeStaleReferences() int

	// Defines derives the compile-time shape of the scene from its current state.
	// It is recomputed on every call.
	Defines() Defines

	// MarshalGlobals returns the bytes for the globals binding.
	MarshalGlobals() []byte

	// MarshalSpheres returns the bytes for the sphere binding, nil when empty.
	MarshalSpheres() []byte

	// MarshalPlanes returns the bytes for the plane binding, nil when empty.
	MarshalPlanes() []byte

	// MarshalPointLights returns the bytes for the point light binding, nil when empty.
	MarshalPointLights() []byte

	// MarshalDirectionalLights returns the bytes for the directional light binding, nil when empty.
	MarshalDirectionalLights() []byte
}

type scene struct {
	name          string
	globals       GPUSceneGlobals
	ambientColor  [3]float32
	shadowAmbient [3]float32

	spheres           []primitive.GPUSphere
	planes            []primitive.GPUPlane
	pointLights       []light.GPUPointLight
	directionalLights []light.GPUDirectionalLight
	rotating          []RotatingPrimitive
}

var _ Scene = &scene{}

// NewScene creates an empty Scene looking down -Z from the origin.
//
// Parameters:
//   - options: functional options applied in order
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		name: "scene",
		globals: GPUSceneGlobals{
			QuatCameraRotation: common.QuatIdentity(),
			ReflectDepth:       3,
		},
		ambientColor:  [3]float32{0.1, 0.1, 0.1},
		shadowAmbient: [3]float32{0.05, 0.05, 0.05},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Globals() GPUSceneGlobals {
	return s.globals
}

func (s *scene) SetCamera(position [3]float32, rotation [4]float32) {
	s.globals.CameraPos = position
	s.globals.QuatCameraRotation = common.QuatNormalize(rotation)
}

func (s *scene) SetCanvasSize(width, height int32) {
	s.globals.CanvasWidth = width
	s.globals.CanvasHeight = height
}

func (s *scene) SetReflectDepth(depth int32) {
	s.globals.ReflectDepth = max(depth, 0)
}

func (s *scene) SetBackgroundColor(r, g, b float32) {
	s.globals.BgColor = [3]float32{r, g, b}
}

func (s *scene) AmbientColor() [3]float32 {
	return s.ambientColor
}

func (s *scene) SetAmbientColor(r, g, b float32) error {
	c, err := finiteColor(r, g, b)
	if err != nil {
		return err
	}
	s.ambientColor = c
	return nil
}

func (s *scene) ShadowAmbient() [3]float32 {
	return s.shadowAmbient
}

func (s *scene) SetShadowAmbient(r, g, b float32) error {
	c, err := finiteColor(r, g, b)
	if err != nil {
		return err
	}
	s.shadowAmbient = c
	return nil
}

// finiteColor keeps Defines comparable with == and its constants valid WGSL.
func finiteColor(r, g, b float32) ([3]float32, error) {
	c := [3]float32{r, g, b}
	for _, v := range c {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return [3]float32{}, fmt.Errorf("%w: %v", ErrNonFiniteColor, c)
		}
	}
	return c, nil
}

func (s *scene) Spheres() []primitive.GPUSphere {
	return slices.Clone(s.spheres)
}

func (s *scene) AddSphere(sp primitive.GPUSphere) int {
	s.spheres = append(s.spheres, sp)
	return len(s.spheres) - 1
}

func (s *scene) SetSphere(i int, sp primitive.GPUSphere) error {
	if i < 0 || i >= len(s.spheres) {
		return fmt.Errorf("sphere %d: %w", i, ErrIndexOutOfRange)
	}
	s.spheres[i] = sp
	return nil
}

func (s *scene) RemoveSphere(i int) error {
	if i < 0 || i >= len(s.spheres) {
		return fmt.Errorf("sphere %d: %w", i, ErrIndexOutOfRange)
	}
	s.spheres = slices.Delete(s.spheres, i, i+1)
	s.repoint(TargetSphere, i)
	return nil
}

func (s *scene) SetSphereCenter(i int, center [3]float32) bool {
	if i < 0 || i >= len(s.spheres) {
		return false
	}
	s.spheres[i].Obj[0] = center[0]
	s.spheres[i].Obj[1] = center[1]
	s.spheres[i].Obj[2] = center[2]
	return true
}

func (s *scene) Planes() []primitive.GPUPlane {
	return slices.Clone(s.planes)
}

func (s *scene) AddPlane(p primitive.GPUPlane) int {
	s.planes = append(s.planes, p)
	return len(s.planes) - 1
}

func (s *scene) SetPlane(i int, p primitive.GPUPlane) error {
	if i < 0 || i >= len(s.planes) {
		return fmt.Errorf("plane %d: %w", i, ErrIndexOutOfRange)
	}
	s.planes[i] = p
	return nil
}

func (s *scene) RemovePlane(i int) error {
	if i < 0 || i >= len(s.planes) {
		return fmt.Errorf("plane %d: %w", i, ErrIndexOutOfRange)
	}
	s.planes = slices.Delete(s.planes, i, i+1)
	return nil
}

func (s *scene) PointLights() []light.GPUPointLight {
	return slices.Clone(s.pointLights)
}

func (s *scene) AddPointLight(l light.GPUPointLight) int {
	s.pointLights = append(s.pointLights, l)
	return len(s.pointLights) - 1
}

func (s *scene) SetPointLight(i int, l light.GPUPointLight) error {
	if i < 0 || i >= len(s.pointLights) {
		return fmt.Errorf("point light %d: %w", i, ErrIndexOutOfRange)
	}
	s.pointLights[i] = l
	return nil
}

func (s *scene) RemovePointLight(i int) error {
	if i < 0 || i >= len(s.pointLights) {
		return fmt.Errorf("point light %d: %w", i, ErrIndexOutOfRange)
	}
	s.pointLights = slices.Delete(s.pointLights, i, i+1)
	s.repoint(TargetPointLight, i)
	return nil
}

func (s *scene) SetPointLightPosition(i int, position [3]float32) bool {
	if i < 0 || i >= len(s.pointLights) {
		return false
	}
	s.pointLights[i].Pos[0] = position[0]
	s.pointLights[i].Pos[1] = position[1]
	s.pointLights[i].Pos[2] = position[2]
	return true
}

func (s *scene) DirectionalLights() []light.GPUDirectionalLight {
	return slices.Clone(s.directionalLights)
}

func (s *scene) AddDirectionalLight(l light.GPUDirectionalLight) int {
	s.directionalLights = append(s.directionalLights, l)
	return len(s.directionalLights) - 1
}

func (s *scene) SetDirectionalLight(i int, l light.GPUDirectionalLight) error {
	if i < 0 || i >= len(s.directionalLights) {
		return fmt.Errorf("directional light %d: %w", i, ErrIndexOutOfRange)
	}
	s.directionalLights[i] = l
	return nil
}

func (s *scene) RemoveDirectionalLight(i int) error {
	if i < 0 || i >= len(s.directionalLights) {
		return fmt.Errorf("directional light %d: %w", i, ErrIndexOutOfRange)
	}
	s.directionalLights = slices.Delete(s.directionalLights, i, i+1)
	return nil
}

func (s *scene) RotatingPrimitives() []RotatingPrimitive {
	return slices.Clone(s.rotating)
}

func (s *scene) AddRotatingPrimitive(rp RotatingPrimitive) (int, error) {
	if !s.targetExists(rp) {
		return -1, fmt.Errorf("rotating %s %d: %w", rp.Kind, rp.Index, ErrIndexOutOfRange)
	}
	s.rotating = append(s.rotating, rp)
	return len(s.rotating) - 1, nil
}

func (s *scene) RemoveRotatingPrimitive(i int) error {
	if i < 0 || i >= len(s.rotating) {
		return fmt.Errorf("rotating primitive %d: %w", i, ErrIndexOutOfRange)
	}
	s.rotating = slices.Delete(s.rotating, i, i+1)
	return nil
}

func (s *scene) SetRotationPhase(i int, phase float32) bool {
	if i < 0 || i >= len(s.rotating) {
		return false
	}
	s.rotating[i].Current = phase
	return true
}

func (s *scene) PurgeStaleReferences() int {
	before := len(s.rotating)
	s.rotating = slices.DeleteFunc(s.rotating, func(rp RotatingPrimitive) bool {
		return !s.targetExists(rp)
	})
	return before - len(s.rotating)
}

func (s *scene) Defines() Defines {
	return Defines{
		SphereSize:      len(s.spheres),
		PlaneSize:       len(s.planes),
		LightPointSize:  len(s.pointLights),
		LightDirectSize: len(s.directionalLights),
		Iterations:      int(s.globals.ReflectDepth),
		AmbientColor:    s.ambientColor,
		ShadowAmbient:   s.shadowAmbient,
	}
}

func (s *scene) MarshalGlobals() []byte {
	return s.globals.Marshal()
}

func (s *scene) MarshalSpheres() []byte {
	return marshalAll(s.spheres, (*primitive.GPUSphere).Marshal)
}

func (s *scene) MarshalPlanes() []byte {
	return marshalAll(s.planes, (*primitive.GPUPlane).Marshal)
}

func (s *scene) MarshalPointLights() []byte {
	return marshalAll(s.pointLights, (*light.GPUPointLight).Marshal)
}

func (s *scene) MarshalDirectionalLights() []byte {
	return marshalAll(s.directionalLights, (*light.GPUDirectionalLight).Marshal)
}

// targetExists reports whether rp's index names an element of its target collection.
func (s *scene) targetExists(rp RotatingPrimitive) bool {
	var n int
	switch rp.Kind {
	case TargetSphere:
		n = len(s.spheres)
	case TargetPointLight:
		n = len(s.pointLights)
	default:
		return false
	}
	return rp.Index >= 0 && rp.Index < n
}

// repoint keeps orbit directives attached to the same elements after removed was
// deleted from the kind collection.
func (s *scene) repoint(kind TargetKind, removed int) {
	s.rotating = slices.DeleteFunc(s.rotating, func(rp RotatingPrimitive) bool {
		return rp.Kind == kind && rp.Index == removed
	})
	for i := range s.rotating {
		if s.rotating[i].Kind == kind && s.rotating[i].Index > removed {
			s.rotating[i].Index--
		}
	}
}

// marshalAll concatenates the GPU encoding of every record in items.
func marshalAll[T any](items []T, marshal func(*T) []byte) []byte {
	if len(items) == 0 {
		return nil
	}
	var out []byte
	for i := range items {
		out = append(out, marshal(&items[i])...)
	}
	return out
}
