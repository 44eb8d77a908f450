package spatial

import "github.com/go-gl/mathgl/mgl64"

// Raw-storage views. A spatial column is 6 contiguous float64 values,
// linear block at s[0:3], angular block at s[3:6]. The set kernels in
// forceset and motionset use these to run the single-vector algebra over
// columns of a 6xN matrix without copying the column out first.

// Vec3At reads a 3-block starting at s[0]. Panics if len(s) < 3.
func Vec3At(s []float64) mgl64.Vec3 {
	_ = s[2]
	return mgl64.Vec3{s[0], s[1], s[2]}
}

// StoreVec3 writes a 3-block starting at s[0]. Panics if len(s) < 3.
func StoreVec3(s []float64, v mgl64.Vec3) {
	_ = s[2]
	s[0], s[1], s[2] = v[0], v[1], v[2]
}

// MotionAt reads the spatial column starting at s[0] as a motion.
// Panics if len(s) < 6.
func MotionAt(s []float64) MotionVector {
	_ = s[5]
	return MotionVector{
		Linear:  mgl64.Vec3{s[0], s[1], s[2]},
		Angular: mgl64.Vec3{s[3], s[4], s[5]},
	}
}

// Store writes v into the spatial column starting at s[0].
// Panics if len(s) < 6.
func (v MotionVector) Store(s []float64) {
	_ = s[5]
	s[0], s[1], s[2] = v.Linear[0], v.Linear[1], v.Linear[2]
	s[3], s[4], s[5] = v.Angular[0], v.Angular[1], v.Angular[2]
}

// ForceAt reads the spatial column starting at s[0] as a force.
// Panics if len(s) < 6.
func ForceAt(s []float64) ForceVector {
	_ = s[5]
	return ForceVector{
		Force:  mgl64.Vec3{s[0], s[1], s[2]},
		Moment: mgl64.Vec3{s[3], s[4], s[5]},
	}
}

// Store writes f into the spatial column starting at s[0].
// Panics if len(s) < 6.
func (f ForceVector) Store(s []float64) {
	_ = s[5]
	s[0], s[1], s[2] = f.Force[0], f.Force[1], f.Force[2]
	s[3], s[4], s[5] = f.Moment[0], f.Moment[1], f.Moment[2]
}
