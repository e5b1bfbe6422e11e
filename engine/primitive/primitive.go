package primitive

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer/material"
)

// NewSphere builds a sphere record.
//
// Parameters:
//   - center: world-space center
//   - radius: sphere radius
//   - m: the material, copied into the record
//
// Returns:
//   - GPUSphere: the sphere record
func NewSphere(center [3]float32, radius float32, m material.GPUMaterial) GPUSphere {
	return GPUSphere{
		Material: m,
		Obj:      [4]float32{center[0], center[1], center[2], radius},
	}
}

// NewPlane builds a plane record. The normal is normalized before storing.
//
// Parameters:
//   - position: any point on the plane
//   - normal: the plane normal (any length but zero)
//   - m: the material, copied into the record
//
// Returns:
//   - GPUPlane: the plane record
func NewPlane(position, normal [3]float32, m material.GPUMaterial) GPUPlane {
	return GPUPlane{
		Material: m,
		Position: position,
		Normal:   common.Normalize3(normal[0], normal[1], normal[2]),
	}
}
