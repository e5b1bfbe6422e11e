package animator

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/chewxy/math32"
)

// orbitAnimatorBackendImpl places targets on an axis-aligned ellipse in the XZ plane.
type orbitAnimatorBackendImpl struct{}

var _ AnimatorBackend = &orbitAnimatorBackendImpl{}

func newOrbitAnimatorBackend() AnimatorBackend {
	return &orbitAnimatorBackendImpl{}
}

func (b *orbitAnimatorBackendImpl) Advance(rp scene.RotatingPrimitive, dt float32) (float32, [3]float32) {
	phase := common.WrapAngle(rp.Current + rp.Speed*dt)
	r := rp.Orbit[3]
	return phase, [3]float32{
		rp.Orbit[0] + r*rp.A*math32.Cos(phase),
		rp.Orbit[1],
		rp.Orbit[2] + r*rp.B*math32.Sin(phase),
	}
}
