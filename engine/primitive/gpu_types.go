// Package primitive holds the GPU layout records for the ray-traced geometry: spheres and planes.
// Every record embeds its material by value and is uploaded byte-for-byte into a uniform array.
package primitive

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/material"
)

// GPUSphereSource is the canonical WGSL definition of the Sphere struct.
// Matches GPUSphere layout exactly (80 bytes). Requires the Material struct to be declared first.
//
//go:embed assets/sphere.wgsl
var GPUSphereSource string

// GPUSphere is the GPU-aligned representation of a sphere.
// Size: 80 bytes.
type GPUSphere struct {
	Material material.GPUMaterial // offset  0: surface description (64 bytes)
	Obj      [4]float32           // offset 64: center xyz, radius w
}

// GPUSphere must stay 80 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [80]byte = [unsafe.Sizeof(GPUSphere{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUSphere{}.Obj) % 16]byte{}
)

// Size returns the size of the GPUSphere struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (s *GPUSphere) Size() int {
	return int(unsafe.Sizeof(*s))
}

// Center returns the sphere center.
//
// Returns:
//   - [3]float32: center position
func (s *GPUSphere) Center() [3]float32 {
	return [3]float32{s.Obj[0], s.Obj[1], s.Obj[2]}
}

// Radius returns the sphere radius.
//
// Returns:
//   - float32: the radius
func (s *GPUSphere) Radius() float32 {
	return s.Obj[3]
}

// Marshal serializes the GPUSphere struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (s *GPUSphere) Marshal() []byte {
	buf := make([]byte, 80)
	s.Material.MarshalTo(buf[0:64])
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(s.Obj[i]))
	}
	return buf
}

// GPUPlaneSource is the canonical WGSL definition of the Plane struct.
// Matches GPUPlane layout exactly (96 bytes). Requires the Material struct to be declared first.
//
//go:embed assets/plane.wgsl
var GPUPlaneSource string

// GPUPlane is the GPU-aligned representation of an infinite plane.
// Size: 96 bytes.
type GPUPlane struct {
	Material material.GPUMaterial // offset  0: surface description (64 bytes)
	Position [3]float32           // offset 64: any point on the plane
	_p1      float32              // offset 76: padding
	Normal   [3]float32           // offset 80: unit surface normal
	_p2      float32              // offset 92: padding to 96 bytes
}

// GPUPlane must stay 96 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [96]byte = [unsafe.Sizeof(GPUPlane{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUPlane{}.Position) % 16]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUPlane{}.Normal) % 16]byte{}
)

// Size returns the size of the GPUPlane struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (p *GPUPlane) Size() int {
	return int(unsafe.Sizeof(*p))
}

// Marshal serializes the GPUPlane struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (p *GPUPlane) Marshal() []byte {
	buf := make([]byte, 96)
	p.Material.MarshalTo(buf[0:64])
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(p.Position[i]))
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(p.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:80], 0) // _p1
	binary.LittleEndian.PutUint32(buf[92:96], 0) // _p2
	return buf
}
