package light

import (
	"testing"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/stretchr/testify/assert"
)

func TestGPUPointLightLayout(t *testing.T) {
	var l GPUPointLight
	assert.Equal(t, 32, l.Size())
	assert.Zero(t, unsafe.Offsetof(l.Pos)%16)
	assert.Zero(t, unsafe.Offsetof(l.Color)%16)
	assert.Equal(t, uintptr(28), unsafe.Offsetof(l.Intensity))
}

func TestGPUDirectionalLightLayout(t *testing.T) {
	var l GPUDirectionalLight
	assert.Equal(t, 32, l.Size())
	assert.Zero(t, unsafe.Offsetof(l.Direction)%16)
	assert.Zero(t, unsafe.Offsetof(l.Color)%16)
	assert.Equal(t, uintptr(28), unsafe.Offsetof(l.Intensity))
}

func TestMarshalMatchesMemory(t *testing.T) {
	p := NewPointLight(WithPosition(1, 2, 3), WithRadius(0.5), WithColor(1, 0.9, 0.8), WithIntensity(2))
	assert.Equal(t, common.StructToBytes(&p), p.Marshal())

	d := NewDirectionalLight(WithDirection(1, -1, 0), WithColor(0.5, 0.5, 1), WithIntensity(0.7))
	assert.Equal(t, common.StructToBytes(&d), d.Marshal())
}

func TestBuilders(t *testing.T) {
	p := NewPointLight(WithPosition(1, 2, 3), WithRadius(0.25))
	assert.Equal(t, [4]float32{1, 2, 3, 0.25}, p.Pos)
	assert.Equal(t, [3]float32{1, 2, 3}, p.Position())
	assert.Equal(t, float32(1), p.Intensity)

	d := NewDirectionalLight(WithDirection(0, -4, 0))
	assert.InDelta(t, -1.0, d.Direction[1], 1e-6)
	assert.Equal(t, [3]float32{1, 1, 1}, d.Color)
}
