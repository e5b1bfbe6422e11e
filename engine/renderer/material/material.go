package material

// NewMaterial builds a GPUMaterial value from the given options.
// Defaults describe a plain white diffuse surface: diffuse 1, kd 1, ks 0, specular exponent 1,
// no reflection, no refraction and no absorption.
//
// Materials are values: every primitive receives its own copy, so changing one primitive's
// material never affects another.
//
// Parameters:
//   - options: functional options applied in order
//
// Returns:
//   - GPUMaterial: the configured material
func NewMaterial(options ...MaterialBuilderOption) GPUMaterial {
	m := GPUMaterial{
		Color:    [3]float32{1, 1, 1},
		Diffuse:  1,
		Specular: 1,
		Kd:       1,
	}
	for _, opt := range options {
		opt(&m)
	}
	return m
}

// Mirror returns a highly reflective material tinted by the given color.
//
// Parameters:
//   - r, g, b: tint color
//
// Returns:
//   - GPUMaterial: the mirror material
func Mirror(r, g, b float32) GPUMaterial {
	return NewMaterial(
		WithColor(r, g, b),
		WithDiffuse(0.1),
		WithReflect(0.9),
		WithSpecular(200),
		WithKd(0.2),
		WithKs(0.8),
	)
}

// Glass returns a refractive material with the given index of refraction and per-channel absorption.
//
// Parameters:
//   - ior: index of refraction (e.g. 1.5 for glass)
//   - absorb: RGB absorption applied inside the medium
//
// Returns:
//   - GPUMaterial: the glass material
func Glass(ior float32, absorb [3]float32) GPUMaterial {
	return NewMaterial(
		WithColor(1, 1, 1),
		WithAbsorb(absorb[0], absorb[1], absorb[2]),
		WithDiffuse(0),
		WithReflect(0.1),
		WithRefract(ior),
		WithSpecular(300),
		WithKd(0),
		WithKs(1),
	)
}
