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

// Package forceset applies rigid frame changes and motion actions to sets
// of spatial forces: 6xN column-major matrices whose columns are
// independent wrenches (linear force block first, moment block second).
//
// All operations write column by column into a caller-owned output that
// may alias the input, and never allocate. The batch entry points
// (Action, ActionInverse, MotionAction) loop the single-column kernels;
// use the *Vec forms when the call site statically holds one column.
package forceset

import (
	"github.com/robodyn/go-spatial/internal/cols"
	"github.com/robodyn/go-spatial/spatial"
)

// Action transforms every column of the force set iF into the frame
// described by m, writing the result into jF. jF may be iF (in-place).
//
// Parameters:
//   - m: frame change applied to every column
//   - iF: input set, column-major 6xn
//   - jF: output set, column-major 6xn, may alias iF
//   - n: number of columns
//
// Panics if:
//   - n < 1
//   - len(iF) < 6*n
//   - len(jF) < 6*n
func Action(m *spatial.Transform, iF, jF []float64, n int) {
	cols.Check(iF, jF, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			actionCol(m, iF[c*cols.Rows:], jF[c*cols.Rows:])
		}
	})
}

// ActionVec is the single-wrench form of Action.
//
// Panics if len(iF) < 6 or len(jF) < 6.
func ActionVec(m *spatial.Transform, iF, jF []float64) {
	cols.CheckVec(iF, jF)
	actionCol(m, iF, jF)
}

// ActionInverse transforms every column of iF by the inverse of m, without
// forming the inverse transform. jF may be iF (in-place).
//
// Panics under the same conditions as Action.
func ActionInverse(m *spatial.Transform, iF, jF []float64, n int) {
	cols.Check(iF, jF, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			actionInverseCol(m, iF[c*cols.Rows:], jF[c*cols.Rows:])
		}
	})
}

// ActionInverseVec is the single-wrench form of ActionInverse.
//
// Panics if len(iF) < 6 or len(jF) < 6.
func ActionInverseVec(m *spatial.Transform, iF, jF []float64) {
	cols.CheckVec(iF, jF)
	actionInverseCol(m, iF, jF)
}

// MotionAction computes dF = v x* F: the rate of change of every wrench
// column of iF under the instantaneous motion v. The cross-product itself
// belongs to the motion type; each column is viewed as a ForceVector and
// handed to v.CrossForce. jF may be iF (in-place).
//
// Panics under the same conditions as Action.
func MotionAction(v *spatial.MotionVector, iF, jF []float64, n int) {
	cols.Check(iF, jF, n)
	cols.Range(n, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			off := c * cols.Rows
			v.CrossForce(spatial.ForceAt(iF[off:])).Store(jF[off:])
		}
	})
}

// MotionActionVec is the single-wrench form of MotionAction.
//
// Panics if len(iF) < 6 or len(jF) < 6.
func MotionActionVec(v *spatial.MotionVector, iF, jF []float64) {
	cols.CheckVec(iF, jF)
	v.CrossForce(spatial.ForceAt(iF)).Store(jF)
}

func actionCol(m *spatial.Transform, in, out []float64) {
	m.ApplyForce(spatial.ForceAt(in)).Store(out)
}

// actionInverseCol follows a fixed write order so that out may alias in:
// the angular out-slot first holds the scratch value a - p x l, is then
// rotated in place, and the linear slot is written last from values read
// before any overwrite.
func actionInverseCol(m *spatial.Transform, in, out []float64) {
	f := spatial.ForceAt(in)
	rt := m.Rotation.Transpose()

	spatial.StoreVec3(out[3:], f.Moment.Sub(m.Translation.Cross(f.Force)))
	spatial.StoreVec3(out[3:], rt.Mul3x1(spatial.Vec3At(out[3:])))
	spatial.StoreVec3(out[:3], rt.Mul3x1(f.Force))
}
