package spatial

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid change of reference frame: a rotation followed by a
// translation. The rotation must be orthonormal; that invariant is the
// caller's responsibility and is never checked here, a non-orthonormal
// rotation yields numerically wrong (but well-defined) results.
type Transform struct {
	Rotation    mgl64.Mat3
	Translation mgl64.Vec3
}

// Identity returns the identity frame change, which maps every motion and
// force to itself.
func Identity() Transform {
	return Transform{Rotation: mgl64.Ident3()}
}

// Mul composes two frame changes. The result applies u first, then t:
//
//	t.Mul(u).Apply(v) == t.Apply(u.Apply(v))
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul3(u.Rotation),
		Translation: t.Rotation.Mul3x1(u.Translation).Add(t.Translation),
	}
}

// Inverse returns the frame change undoing t.
func (t Transform) Inverse() Transform {
	rt := t.Rotation.Transpose()
	return Transform{
		Rotation:    rt,
		Translation: rt.Mul3x1(t.Translation).Mul(-1),
	}
}

// Apply transforms a motion into the frame described by t.
//
// The angular block only rotates; the linear block picks up the lever-arm
// term of the moved rotation axis:
//
//	out.angular = R*a
//	out.linear  = p x out.angular + R*l
func (t Transform) Apply(v MotionVector) MotionVector {
	ang := t.Rotation.Mul3x1(v.Angular)
	return MotionVector{
		Linear:  t.Translation.Cross(ang).Add(t.Rotation.Mul3x1(v.Linear)),
		Angular: ang,
	}
}

// ApplyInverse transforms a motion by the inverse of t, without forming the
// inverse transform.
func (t Transform) ApplyInverse(v MotionVector) MotionVector {
	rt := t.Rotation.Transpose()
	return MotionVector{
		Linear:  rt.Mul3x1(v.Linear.Sub(t.Translation.Cross(v.Angular))),
		Angular: rt.Mul3x1(v.Angular),
	}
}

// ApplyForce transforms a force by the dual action of t. Forces are the
// dual of motions: here the linear (force) block only rotates and the
// angular (moment) block picks up the lever-arm term:
//
//	out.linear  = R*f
//	out.angular = p x out.linear + R*m
func (t Transform) ApplyForce(f ForceVector) ForceVector {
	lin := t.Rotation.Mul3x1(f.Force)
	return ForceVector{
		Force:  lin,
		Moment: t.Translation.Cross(lin).Add(t.Rotation.Mul3x1(f.Moment)),
	}
}

// ApplyInverseForce transforms a force by the dual action of the inverse of
// t, without forming the inverse transform.
func (t Transform) ApplyInverseForce(f ForceVector) ForceVector {
	rt := t.Rotation.Transpose()
	return ForceVector{
		Force:  rt.Mul3x1(f.Force),
		Moment: rt.Mul3x1(f.Moment.Sub(t.Translation.Cross(f.Force))),
	}
}
