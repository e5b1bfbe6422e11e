package light

// LightBuilderOption is a function that configures a light during NewPointLight or NewDirectionalLight.
// Options that do not apply to the light type being built are ignored.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of a point light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithRadius is an option builder that sets the emitter radius of a point light.
// The shader samples across this radius to produce soft shadows.
//
// Parameters:
//   - radius: the emitter radius, 0 for a hard point
//
// Returns:
//   - LightBuilderOption: a function that applies the radius option to a lightImpl
func WithRadius(radius float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.radius = radius
	}
}

// WithDirection is an option builder that sets the direction of a directional light.
// The direction is normalized when the record is built.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = [3]float32{x, y, z}
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}
