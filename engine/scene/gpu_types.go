package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSceneGlobalsSource is the canonical WGSL definition of the SceneGlobals struct.
// Matches GPUSceneGlobals layout exactly (64 bytes).
//
//go:embed assets/scene_globals.wgsl
var GPUSceneGlobalsSource string

// GPUSceneGlobals is the per-frame uniform block shared by every ray in the shader.
// Size: 64 bytes.
type GPUSceneGlobals struct {
	QuatCameraRotation [4]float32 // offset  0: unit quaternion xyzw
	CameraPos          [3]float32 // offset 16: world-space eye position
	_p1                float32    // offset 28: padding
	BgColor            [3]float32 // offset 32: color returned by rays that escape the scene
	CanvasWidth        int32      // offset 44: framebuffer width in pixels
	CanvasHeight       int32      // offset 48: framebuffer height in pixels
	ReflectDepth       int32      // offset 52: maximum bounce count
	_pad               [2]float32 // offset 56: padding to 64
}

// GPUSceneGlobals must stay 64 bytes with its vectors on 16-byte boundaries; a drift fails the build.
var (
	_ [64]byte = [unsafe.Sizeof(GPUSceneGlobals{})]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUSceneGlobals{}.CameraPos) % 16]byte{}
	_ [0]byte  = [unsafe.Offsetof(GPUSceneGlobals{}.BgColor) % 16]byte{}
)

// Size returns the size of the GPUSceneGlobals struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUSceneGlobals) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneGlobals struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUSceneGlobals) Marshal() []byte {
	buf := make([]byte, 64)
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.QuatCameraRotation[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.CameraPos[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.BgColor[i]))
	}
	binary.LittleEndian.PutUint32(buf[44:48], uint32(g.CanvasWidth))
	binary.LittleEndian.PutUint32(buf[48:52], uint32(g.CanvasHeight))
	binary.LittleEndian.PutUint32(buf[52:56], uint32(g.ReflectDepth))
	return buf
}
