// Copyright 2025 go-spatial Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package motionset applies rigid frame changes and motion actions to sets
// of spatial motions: 6xN column-major matrices whose columns are
// independent twists (linear velocity block first, angular block second).
//
// It is the motion-law sibling of forceset: same layout, same batching and
// aliasing contract, dual transformation law.
package motionset

import (
	"github.com/robodyn/go-spatial/internal/cols"
	"github.com/robodyn/go-spatial/spatial"
)

// Action transforms every column of the motion set iV into the frame
// described by m, writing the result into jV. jV may be iV (in-place).
//
// Parameters:
//   - m: frame change applied to every column
//   - iV: input set, column-major 6xn
//   - jV: output set, column-major 6xn, may alias iV
//   - n: number of columns
//
// Panics if:
//   - n < 1
//   - len(iV) < 6*n
//   - len(jV) < 6*n
func Action(m *spatial.Transform, iV, jV []float64, n int) {
	cols.Check(iV, jV, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			actionCol(m, iV[c*cols.Rows:], jV[c*cols.Rows:])
		}
	})
}

// ActionVec is the single-twist form of Action.
//
// Panics if len(iV) < 6 or len(jV) < 6.
func ActionVec(m *spatial.Transform, iV, jV []float64) {
	cols.CheckVec(iV, jV)
	actionCol(m, iV, jV)
}

// ActionInverse transforms every column of iV by the inverse of m, without
// forming the inverse transform. jV may be iV (in-place).
//
// Panics under the same conditions as Action.
func ActionInverse(m *spatial.Transform, iV, jV []float64, n int) {
	cols.Check(iV, jV, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			actionInverseCol(m, iV[c*cols.Rows:], jV[c*cols.Rows:])
		}
	})
}

// ActionInverseVec is the single-twist form of ActionInverse.
//
// Panics if len(iV) < 6 or len(jV) < 6.
func ActionInverseVec(m *spatial.Transform, iV, jV []float64) {
	cols.CheckVec(iV, jV)
	actionInverseCol(m, iV, jV)
}

// MotionAction computes dV = v x V: the Lie bracket of v with every twist
// column of iV. The bracket itself belongs to the motion type; each column
// is viewed as a MotionVector and handed to v.Cross. jV may be iV
// (in-place).
//
// Panics under the same conditions as Action.
func MotionAction(v *spatial.MotionVector, iV, jV []float64, n int) {
	cols.Check(iV, jV, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			off := c * cols.Rows
			v.Cross(spatial.MotionAt(iV[off:])).Store(jV[off:])
		}
	})
}

// MotionActionVec is the single-twist form of MotionAction.
//
// Panics if len(iV) < 6 or len(jV) < 6.
func MotionActionVec(v *spatial.MotionVector, iV, jV []float64) {
	cols.CheckVec(iV, jV)
	v.Cross(spatial.MotionAt(iV)).Store(jV)
}

func actionCol(m *spatial.Transform, in, out []float64) {
	m.Apply(spatial.MotionAt(in)).Store(out)
}

// actionInverseCol follows a fixed write order so that out may alias in:
// the linear out-slot first holds the scratch value l - p x a, is then
// rotated in place, and the angular slot is written last from values read
// before any overwrite.
func actionInverseCol(m *spatial.Transform, in, out []float64) {
	v := spatial.MotionAt(in)
	rt := m.Rotation.Transpose()

	spatial.StoreVec3(out[:3], v.Linear.Sub(m.Translation.Cross(v.Angular)))
	spatial.StoreVec3(out[:3], rt.Mul3x1(spatial.Vec3At(out[:3])))
	spatial.StoreVec3(out[3:], rt.Mul3x1(v.Angular))
}
