package scene

import "fmt"

// Defines summarizes the shape of a Scene: everything the ray tracing program needs
// at compile time. Two Defines values compare equal with == exactly when the same
// compiled program can render both scenes.
type Defines struct {
	SphereSize      int
	PlaneSize       int
	LightPointSize  int
	LightDirectSize int
	Iterations      int
	AmbientColor    [3]float32
	ShadowAmbient   [3]float32
}

// String renders the defines compactly for log lines and pipeline keys.
func (d Defines) String() string {
	return fmt.Sprintf("spheres=%d planes=%d point=%d direct=%d iter=%d ambient=%v shadow=%v",
		d.SphereSize, d.PlaneSize, d.LightPointSize, d.LightDirectSize, d.Iterations,
		d.AmbientColor, d.ShadowAmbient)
}
