package scene

// TargetKind selects which Scene collection a RotatingPrimitive indexes into.
type TargetKind int

const (
	// TargetSphere points a RotatingPrimitive at the sphere collection.
	TargetSphere TargetKind = iota

	// TargetPointLight points a RotatingPrimitive at the point light collection.
	TargetPointLight
)

// String returns the lowercase name of the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetSphere:
		return "sphere"
	case TargetPointLight:
		return "point_light"
	default:
		return "unknown"
	}
}

// RotatingPrimitive drives one sphere or point light along an elliptical orbit.
// It is CPU-only animation state and is never uploaded.
//
// Index is a non-owning reference into the collection selected by Kind. The Scene
// re-points or drops it on structural edits; anything that still dangles is skipped
// by the animator.
type RotatingPrimitive struct {
	Index   int
	Kind    TargetKind
	Orbit   [4]float32 // center xyz, radius w
	A       float32    // x-axis scale of the ellipse
	B       float32    // z-axis scale of the ellipse
	Current float32    // phase in radians
	Speed   float32    // radians per second
}

// Center returns the orbit center.
func (r RotatingPrimitive) Center() [3]float32 {
	return [3]float32{r.Orbit[0], r.Orbit[1], r.Orbit[2]}
}
