package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (64 bytes, uniform address space aligned).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned surface description shared by value into every sphere and plane.
// Matches the WGSL Material struct layout exactly (see GPUMaterialSource).
// Size: 64 bytes.
type GPUMaterial struct {
	Color    [3]float32 // offset  0: base RGB color
	_p1      float32    // offset 12: padding so Absorb starts on a 16-byte boundary
	Absorb   [3]float32 // offset 16: per-channel absorption used for refracted rays
	Diffuse  float32    // offset 28: diffuse coefficient
	Reflect  float32    // offset 32: reflection coefficient
	Refract  float32    // offset 36: refraction coefficient (index of refraction, 0 = opaque)
	Specular int32      // offset 40: specular exponent
	Kd       float32    // offset 44: diffuse weight
	Ks       float32    // offset 48: specular weight
	_pad     [3]float32 // offset 52: padding to 64 bytes
}

// GPUMaterial must stay 64 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [64]byte = [unsafe.Sizeof(GPUMaterial{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUMaterial{}.Absorb) % 16]byte{}
)

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (m *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*m))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (m *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 64)
	m.MarshalTo(buf)
	return buf
}

// MarshalTo writes the material into the first 64 bytes of buf. Records that embed a material
// use this to serialize it in place.
//
// Parameters:
//   - buf: destination buffer, at least 64 bytes long
func (m *GPUMaterial) MarshalTo(buf []byte) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(m.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:16], 0) // _p1
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(m.Absorb[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(m.Diffuse))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(m.Reflect))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(m.Refract))
	binary.LittleEndian.PutUint32(buf[40:44], uint32(m.Specular))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(m.Kd))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(m.Ks))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[52+i*4:], 0) // _pad
	}
}
