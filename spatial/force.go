package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// ForceVector is a wrench: a spatial force, with a pure force (Linear
// block) and a moment (angular block).
type ForceVector struct {
	Force  mgl64.Vec3
	Moment mgl64.Vec3
}

// ForceFromR3 builds a ForceVector from r3 vectors, for callers whose
// surfaces are built on golang/geo.
func ForceFromR3(force, moment r3.Vector) ForceVector {
	return ForceVector{
		Force:  mgl64.Vec3{force.X, force.Y, force.Z},
		Moment: mgl64.Vec3{moment.X, moment.Y, moment.Z},
	}
}

// ForceR3 returns the force block as an r3 vector.
func (f ForceVector) ForceR3() r3.Vector {
	return r3.Vector{X: f.Force[0], Y: f.Force[1], Z: f.Force[2]}
}

// MomentR3 returns the moment block as an r3 vector.
func (f ForceVector) MomentR3() r3.Vector {
	return r3.Vector{X: f.Moment[0], Y: f.Moment[1], Z: f.Moment[2]}
}

// Add returns f + g.
func (f ForceVector) Add(g ForceVector) ForceVector {
	return ForceVector{
		Force:  f.Force.Add(g.Force),
		Moment: f.Moment.Add(g.Moment),
	}
}

// Sub returns f - g.
func (f ForceVector) Sub(g ForceVector) ForceVector {
	return ForceVector{
		Force:  f.Force.Sub(g.Force),
		Moment: f.Moment.Sub(g.Moment),
	}
}

// Scale returns f scaled by s.
func (f ForceVector) Scale(s float64) ForceVector {
	return ForceVector{Force: f.Force.Mul(s), Moment: f.Moment.Mul(s)}
}

// Dot is the power pairing between a force and a motion.
func (f ForceVector) Dot(v MotionVector) float64 {
	return f.Force.Dot(v.Linear) + f.Moment.Dot(v.Angular)
}
