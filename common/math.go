package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math32.Pi

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// WrapAngle folds an angle in radians into [0, 2π).
//
// Parameters:
//   - angle: the angle to wrap
//
// Returns:
//   - float32: the equivalent angle in [0, 2π)
func WrapAngle(angle float32) float32 {
	wrapped := math32.Mod(angle, TwoPi)
	if wrapped < 0 {
		wrapped += TwoPi
	}
	// Mod can round a tiny negative up to exactly 2π.
	if wrapped >= TwoPi {
		wrapped = 0
	}
	return wrapped
}

// Normalize3 returns the unit-length version of the vector (x, y, z).
// A zero vector is returned unchanged.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - [3]float32: the normalized vector
func Normalize3(x, y, z float32) [3]float32 {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return [3]float32{x, y, z}
	}
	return [3]float32{x / l, y / l, z / l}
}

// QuatIdentity returns the identity rotation quaternion stored as (x, y, z, w).
//
// Returns:
//   - [4]float32: the identity quaternion
func QuatIdentity() [4]float32 {
	return [4]float32{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a unit quaternion (x, y, z, w) rotating by angle radians around the given axis.
// The axis does not need to be normalized.
//
// Parameters:
//   - axis: rotation axis
//   - angle: rotation angle in radians
//
// Returns:
//   - [4]float32: the rotation quaternion
func QuatFromAxisAngle(axis [3]float32, angle float32) [4]float32 {
	n := Normalize3(axis[0], axis[1], axis[2])
	s := math32.Sin(angle / 2)
	return [4]float32{n[0] * s, n[1] * s, n[2] * s, math32.Cos(angle / 2)}
}

// QuatMul returns the Hamilton product a * b. Applying the result rotates by b first, then a.
//
// Parameters:
//   - a: left-hand quaternion
//   - b: right-hand quaternion
//
// Returns:
//   - [4]float32: the product quaternion
func QuatMul(a, b [4]float32) [4]float32 {
	return [4]float32{
		a[3]*b[0] + a[0]*b[3] + a[1]*b[2] - a[2]*b[1],
		a[3]*b[1] - a[0]*b[2] + a[1]*b[3] + a[2]*b[0],
		a[3]*b[2] + a[0]*b[1] - a[1]*b[0] + a[2]*b[3],
		a[3]*b[3] - a[0]*b[0] - a[1]*b[1] - a[2]*b[2],
	}
}

// QuatNormalize scales q to unit length. The zero quaternion maps to the identity.
//
// Parameters:
//   - q: the quaternion to normalize
//
// Returns:
//   - [4]float32: the unit quaternion
func QuatNormalize(q [4]float32) [4]float32 {
	l := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l == 0 {
		return QuatIdentity()
	}
	return [4]float32{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// QuatFromYawPitch builds the camera orientation for a yaw around +Y followed by a pitch around the
// rotated +X axis.
//
// Parameters:
//   - yaw: rotation around the world up axis in radians
//   - pitch: rotation around the camera's right axis in radians
//
// Returns:
//   - [4]float32: the unit orientation quaternion
func QuatFromYawPitch(yaw, pitch float32) [4]float32 {
	qYaw := QuatFromAxisAngle([3]float32{0, 1, 0}, yaw)
	qPitch := QuatFromAxisAngle([3]float32{1, 0, 0}, pitch)
	return QuatNormalize(QuatMul(qYaw, qPitch))
}

// QuatRotate rotates vector v by the unit quaternion q.
//
// Parameters:
//   - q: unit rotation quaternion (x, y, z, w)
//   - v: the vector to rotate
//
// Returns:
//   - [3]float32: the rotated vector
func QuatRotate(q [4]float32, v [3]float32) [3]float32 {
	// v' = v + 2w(u x v) + 2(u x (u x v))
	u := [3]float32{q[0], q[1], q[2]}
	w := q[3]
	t := cross(u, v)
	t = [3]float32{2 * t[0], 2 * t[1], 2 * t[2]}
	ut := cross(u, t)
	return [3]float32{
		v[0] + w*t[0] + ut[0],
		v[1] + w*t[1] + ut[1],
		v[2] + w*t[2] + ut[2],
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
