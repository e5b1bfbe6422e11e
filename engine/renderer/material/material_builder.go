package material

// MaterialBuilderOption is a functional option that configures a GPUMaterial during NewMaterial.
type MaterialBuilderOption func(*GPUMaterial)

// WithColor sets the base RGB color of the material.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithColor(r, g, b float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Color = [3]float32{r, g, b}
	}
}

// WithAbsorb sets the per-channel absorption used for rays travelling inside the material.
//
// Parameters:
//   - r, g, b: absorption components
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithAbsorb(r, g, b float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Absorb = [3]float32{r, g, b}
	}
}

// WithDiffuse sets the diffuse coefficient.
//
// Parameters:
//   - diffuse: the diffuse coefficient
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithDiffuse(diffuse float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Diffuse = diffuse
	}
}

// WithReflect sets the reflection coefficient.
//
// Parameters:
//   - reflect: the fraction of light carried by the reflected ray
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithReflect(reflect float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Reflect = reflect
	}
}

// WithRefract sets the refraction coefficient. Zero marks the material as opaque.
//
// Parameters:
//   - refract: the index of refraction
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithRefract(refract float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Refract = refract
	}
}

// WithSpecular sets the specular (Phong) exponent.
//
// Parameters:
//   - exponent: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithSpecular(exponent int32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Specular = exponent
	}
}

// WithKd sets the diffuse weight.
//
// Parameters:
//   - kd: the diffuse weight
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithKd(kd float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Kd = kd
	}
}

// WithKs sets the specular weight.
//
// Parameters:
//   - ks: the specular weight
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithKs(ks float32) MaterialBuilderOption {
	return func(m *GPUMaterial) {
		m.Ks = ks
	}
}
