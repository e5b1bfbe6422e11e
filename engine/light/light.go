package light

import "github.com/Carmen-Shannon/oxy-rt/common"

// lightImpl collects builder options before they are packed into a GPU record.
type lightImpl struct {
	position  [3]float32
	radius    float32
	direction [3]float32
	color     [3]float32
	intensity float32
}

func newLightImpl(options []LightBuilderOption) *lightImpl {
	l := &lightImpl{
		direction: [3]float32{0, -1, 0},
		color:     [3]float32{1, 1, 1},
		intensity: 1,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// NewPointLight builds a point light record.
// Defaults: white, intensity 1, radius 0 (hard shadows), positioned at the origin.
//
// Parameters:
//   - options: functional options applied in order
//
// Returns:
//   - GPUPointLight: the point light record
func NewPointLight(options ...LightBuilderOption) GPUPointLight {
	l := newLightImpl(options)
	return GPUPointLight{
		Pos:       [4]float32{l.position[0], l.position[1], l.position[2], l.radius},
		Color:     l.color,
		Intensity: l.intensity,
	}
}

// NewDirectionalLight builds a directional light record.
// Defaults: white, intensity 1, pointing straight down.
//
// Parameters:
//   - options: functional options applied in order
//
// Returns:
//   - GPUDirectionalLight: the directional light record
func NewDirectionalLight(options ...LightBuilderOption) GPUDirectionalLight {
	l := newLightImpl(options)
	return GPUDirectionalLight{
		Direction: common.Normalize3(l.direction[0], l.direction[1], l.direction[2]),
		Color:     l.color,
		Intensity: l.intensity,
	}
}
