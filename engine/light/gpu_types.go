package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPointLightSource is the canonical WGSL definition of the PointLight struct.
// Matches GPUPointLight layout exactly (32 bytes).
//
//go:embed assets/point_light.wgsl
var GPUPointLightSource string

// GPUPointLight is the GPU-aligned representation of a point light.
// The radius in Pos.w turns the light into a spherical area light for soft shadows.
// Size: 32 bytes.
type GPUPointLight struct {
	Pos       [4]float32 // offset  0: world-space position xyz, radius w
	Color     [3]float32 // offset 16: RGB color
	Intensity float32    // offset 28: scalar multiplier
}

// GPUPointLight must stay 32 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [32]byte = [unsafe.Sizeof(GPUPointLight{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUPointLight{}.Color) % 16]byte{}
)

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (l *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*l))
}

// Position returns the light position without its radius.
//
// Returns:
//   - [3]float32: the position
func (l *GPUPointLight) Position() [3]float32 {
	return [3]float32{l.Pos[0], l.Pos[1], l.Pos[2]}
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (l *GPUPointLight) Marshal() []byte {
	buf := make([]byte, 32)
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(l.Pos[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(l.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(l.Intensity))
	return buf
}

// GPUDirectionalLightSource is the canonical WGSL definition of the DirectionalLight struct.
// Matches GPUDirectionalLight layout exactly (32 bytes).
//
//go:embed assets/directional_light.wgsl
var GPUDirectionalLightSource string

// GPUDirectionalLight is the GPU-aligned representation of a directional light.
// Size: 32 bytes.
type GPUDirectionalLight struct {
	Direction [3]float32 // offset  0: normalized direction the light travels
	_p1       float32    // offset 12: padding
	Color     [3]float32 // offset 16: RGB color
	Intensity float32    // offset 28: scalar multiplier
}

// GPUDirectionalLight must stay 32 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [32]byte = [unsafe.Sizeof(GPUDirectionalLight{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUDirectionalLight{}.Color) % 16]byte{}
)

// Size returns the size of the GPUDirectionalLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (l *GPUDirectionalLight) Size() int {
	return int(unsafe.Sizeof(*l))
}

// Marshal serializes the GPUDirectionalLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (l *GPUDirectionalLight) Marshal() []byte {
	buf := make([]byte, 32)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(l.Direction[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(l.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:16], 0) // _p1
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(l.Intensity))
	return buf
}
