package encore

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Interval is an inclusive range for one random component. Min and Max may
// be given in either order; draws normalize the pair first.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// draw returns a uniform sample from the order-normalized interval.
func (iv Interval) draw(rng *rand.Rand) float64 {
	lo, hi := iv.Min, iv.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// PerturbationSpec bounds the random perturbation drawn per duplicate: one
// interval per axis for translation, rotation (in degrees) and scale, plus
// one for the frame jitter added to the duplicate's time offset.
//
// The zero value draws zero scale; start from DefaultPerturbationSpec to
// keep unit scale.
type PerturbationSpec struct {
	Translation [3]Interval `json:"translation"`
	RotationDeg [3]Interval `json:"rotation_deg"`
	Scale       [3]Interval `json:"scale"`
	FrameJitter Interval    `json:"frame_jitter"`
}

// DefaultPerturbationSpec returns a spec whose draws are all neutral: zero
// translation and rotation, unit scale, zero jitter. Widen individual
// intervals from here.
func DefaultPerturbationSpec() PerturbationSpec {
	one := Interval{Min: 1, Max: 1}
	return PerturbationSpec{Scale: [3]Interval{one, one, one}}
}

// Draw samples one perturbation from the spec. Components are drawn
// independently in a fixed order (translation, rotation, scale, jitter,
// each X then Y then Z), so a seeded generator reproduces the exact same
// sequence of perturbations.
func (spec PerturbationSpec) Draw(rng *rand.Rand) Perturbation {
	var p Perturbation
	for i := 0; i < 3; i++ {
		p.Translation[i] = spec.Translation[i].draw(rng)
	}
	for i := 0; i < 3; i++ {
		p.RotationDeg[i] = spec.RotationDeg[i].draw(rng)
	}
	for i := 0; i < 3; i++ {
		p.Scale[i] = spec.Scale[i].draw(rng)
	}
	p.FrameJitter = spec.FrameJitter.draw(rng)
	return p
}

// Perturbation is one drawn delta: a non-destructive transform layer for
// an entity plus a frame jitter for its curves.
type Perturbation struct {
	Translation mgl64.Vec3 `json:"translation"`
	RotationDeg mgl64.Vec3 `json:"rotation_deg"`
	Scale       mgl64.Vec3 `json:"scale"`
	FrameJitter float64    `json:"frame_jitter"`
}

// Neutral returns the identity perturbation: zero translation and
// rotation, unit scale, zero jitter.
func Neutral() Perturbation {
	return Perturbation{Scale: mgl64.Vec3{1, 1, 1}}
}

// Quat returns the rotation as a quaternion, for entities whose rotation
// is quaternion-driven. The angles are interpreted as XYZ Euler degrees.
func (p Perturbation) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(p.RotationDeg[0]),
		mgl64.DegToRad(p.RotationDeg[1]),
		mgl64.DegToRad(p.RotationDeg[2]),
		mgl64.XYZ,
	)
}
