package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// MotionVector is a twist: the spatial velocity of a rigid body, with a
// translational (Linear) and a rotational (Angular) 3-block.
type MotionVector struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

// MotionFromR3 builds a MotionVector from r3 vectors, for callers whose
// surfaces are built on golang/geo.
func MotionFromR3(linear, angular r3.Vector) MotionVector {
	return MotionVector{
		Linear:  mgl64.Vec3{linear.X, linear.Y, linear.Z},
		Angular: mgl64.Vec3{angular.X, angular.Y, angular.Z},
	}
}

// LinearR3 returns the translational block as an r3 vector.
func (v MotionVector) LinearR3() r3.Vector {
	return r3.Vector{X: v.Linear[0], Y: v.Linear[1], Z: v.Linear[2]}
}

// AngularR3 returns the rotational block as an r3 vector.
func (v MotionVector) AngularR3() r3.Vector {
	return r3.Vector{X: v.Angular[0], Y: v.Angular[1], Z: v.Angular[2]}
}

// Add returns v + w.
func (v MotionVector) Add(w MotionVector) MotionVector {
	return MotionVector{
		Linear:  v.Linear.Add(w.Linear),
		Angular: v.Angular.Add(w.Angular),
	}
}

// Sub returns v - w.
func (v MotionVector) Sub(w MotionVector) MotionVector {
	return MotionVector{
		Linear:  v.Linear.Sub(w.Linear),
		Angular: v.Angular.Sub(w.Angular),
	}
}

// Scale returns v scaled by s.
func (v MotionVector) Scale(s float64) MotionVector {
	return MotionVector{Linear: v.Linear.Mul(s), Angular: v.Angular.Mul(s)}
}

// Dot is the power pairing between a motion and a force. It is invariant
// under a simultaneous frame change of both operands.
func (v MotionVector) Dot(f ForceVector) float64 {
	return v.Linear.Dot(f.Force) + v.Angular.Dot(f.Moment)
}

// Cross is the Lie bracket [v, w]: the rate of change of the motion w as
// seen from a frame moving with velocity v. Bilinear in both operands; a
// zero v annihilates every w.
func (v MotionVector) Cross(w MotionVector) MotionVector {
	return MotionVector{
		Linear:  v.Angular.Cross(w.Linear).Add(v.Linear.Cross(w.Angular)),
		Angular: v.Angular.Cross(w.Angular),
	}
}

// CrossForce is the dual Lie-bracket action of v on a force: the rate of
// change of the wrench f as seen from a frame moving with velocity v.
// Bilinear in both operands; a zero v annihilates every f.
func (v MotionVector) CrossForce(f ForceVector) ForceVector {
	return ForceVector{
		Force:  v.Angular.Cross(f.Force),
		Moment: v.Angular.Cross(f.Moment).Add(v.Linear.Cross(f.Force)),
	}
}
