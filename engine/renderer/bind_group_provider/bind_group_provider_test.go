package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("scene")

	assert.Equal(t, "scene", p.Label())
	assert.Nil(t, p.BindGroup())
	assert.Nil(t, p.BindGroupLayout())
	assert.Nil(t, p.Buffer(0))
	assert.Zero(t, p.BufferSize(0))
	assert.Empty(t, p.Buffers())
}

func TestSetBufferTracksSize(t *testing.T) {
	p := NewBindGroupProvider("scene")
	p.SetBuffer(1, nil, 160)
	p.SetBuffer(3, nil, 32)

	assert.Equal(t, uint64(160), p.BufferSize(1))
	assert.Equal(t, uint64(32), p.BufferSize(3))
	assert.Len(t, p.Buffers(), 2)

	p.Release()
	assert.Empty(t, p.Buffers())
	assert.Zero(t, p.BufferSize(1))

	p.Release()
}

func TestNewBufferWrites(t *testing.T) {
	p := NewBindGroupProvider("scene")
	payloads := map[int][]byte{
		4: {7, 8},
		0: {1, 2, 3},
		3: nil,
		2: {},
		1: {4, 5, 6},
	}

	writes := NewBufferWrites(p, payloads)
	require.Len(t, writes, 3)

	assert.Equal(t, 0, writes[0].Binding)
	assert.Equal(t, 1, writes[1].Binding)
	assert.Equal(t, 4, writes[2].Binding)
	assert.Equal(t, []byte{7, 8}, writes[2].Data)
	for _, w := range writes {
		assert.Same(t, p, w.Provider)
		assert.Zero(t, w.Offset)
	}
}

func TestNewBufferWritesAllEmpty(t *testing.T) {
	writes := NewBufferWrites(NewBindGroupProvider("scene"), map[int][]byte{0: nil, 1: {}})
	assert.Empty(t, writes)
}
