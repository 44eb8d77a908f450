package spatial

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-10

func randRotation(rng *rand.Rand) mgl64.Mat3 {
	rx := mgl64.Rotate3DX(rng.Float64() * 2 * math.Pi)
	ry := mgl64.Rotate3DY(rng.Float64() * 2 * math.Pi)
	rz := mgl64.Rotate3DZ(rng.Float64() * 2 * math.Pi)
	return rx.Mul3(ry).Mul3(rz)
}

func randVec3(rng *rand.Rand) mgl64.Vec3 {
	return mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
}

func randTransform(rng *rand.Rand) Transform {
	return Transform{Rotation: randRotation(rng), Translation: randVec3(rng)}
}

func randMotion(rng *rand.Rand) MotionVector {
	return MotionVector{Linear: randVec3(rng), Angular: randVec3(rng)}
}

func randForce(rng *rand.Rand) ForceVector {
	return ForceVector{Force: randVec3(rng), Moment: randVec3(rng)}
}

func motionApprox(t *testing.T, got, want MotionVector) {
	t.Helper()
	if !got.Linear.ApproxEqualThreshold(want.Linear, tol) ||
		!got.Angular.ApproxEqualThreshold(want.Angular, tol) {
		t.Errorf("motion = %v, want %v", got, want)
	}
}

func forceApprox(t *testing.T, got, want ForceVector) {
	t.Helper()
	if !got.Force.ApproxEqualThreshold(want.Force, tol) ||
		!got.Moment.ApproxEqualThreshold(want.Moment, tol) {
		t.Errorf("force = %v, want %v", got, want)
	}
}

func TestIdentityFixpoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	id := Identity()
	for it := 0; it < 20; it++ {
		v := randMotion(rng)
		f := randForce(rng)
		motionApprox(t, id.Apply(v), v)
		motionApprox(t, id.ApplyInverse(v), v)
		forceApprox(t, id.ApplyForce(f), f)
		forceApprox(t, id.ApplyInverseForce(f), f)
	}
}

func TestApplyForceLeverArm(t *testing.T) {
	// A unit force along z, moved by a unit translation along x, picks up
	// the moment p x f = (0, -1, 0) while the force itself is unchanged.
	m := Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{1, 0, 0}}
	f := ForceVector{Force: mgl64.Vec3{0, 0, 1}}

	got := m.ApplyForce(f)
	forceApprox(t, got, ForceVector{
		Force:  mgl64.Vec3{0, 0, 1},
		Moment: mgl64.Vec3{0, -1, 0},
	})
}

func TestMulComposesActions(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for it := 0; it < 20; it++ {
		t1 := randTransform(rng)
		t2 := randTransform(rng)
		v := randMotion(rng)
		f := randForce(rng)

		motionApprox(t, t1.Mul(t2).Apply(v), t1.Apply(t2.Apply(v)))
		forceApprox(t, t1.Mul(t2).ApplyForce(f), t1.ApplyForce(t2.ApplyForce(f)))
	}
}

func TestInverseUndoes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for it := 0; it < 20; it++ {
		tr := randTransform(rng)
		v := randMotion(rng)
		f := randForce(rng)

		motionApprox(t, tr.ApplyInverse(tr.Apply(v)), v)
		motionApprox(t, tr.Apply(tr.ApplyInverse(v)), v)
		forceApprox(t, tr.ApplyInverseForce(tr.ApplyForce(f)), f)
		forceApprox(t, tr.ApplyForce(tr.ApplyInverseForce(f)), f)

		// ApplyInverse must agree with applying the inverse transform.
		inv := tr.Inverse()
		motionApprox(t, tr.ApplyInverse(v), inv.Apply(v))
		forceApprox(t, tr.ApplyInverseForce(f), inv.ApplyForce(f))
	}
}

func TestInverseComposesToIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for it := 0; it < 20; it++ {
		tr := randTransform(rng)
		round := tr.Mul(tr.Inverse())
		if !round.Rotation.ApproxEqualThreshold(mgl64.Ident3(), tol) {
			t.Errorf("rotation of t*t^-1 = %v, want identity", round.Rotation)
		}
		if !round.Translation.ApproxEqualThreshold(mgl64.Vec3{}, tol) {
			t.Errorf("translation of t*t^-1 = %v, want zero", round.Translation)
		}
	}
}

func TestPowerPairingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for it := 0; it < 20; it++ {
		tr := randTransform(rng)
		v := randMotion(rng)
		f := randForce(rng)

		before := v.Dot(f)
		after := tr.Apply(v).Dot(tr.ApplyForce(f))
		if math.Abs(before-after) > tol {
			t.Errorf("pairing changed under frame change: %v -> %v", before, after)
		}
	}
}
