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

package forceset

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"github.com/robodyn/go-spatial/internal/cols"
	"github.com/robodyn/go-spatial/spatial"
)

// Block reference formulation: build the full 6x6 dual action matrix of
// the transform and multiply the whole set at once. The column-wise
// kernels measured faster (see BenchmarkAction), so this path is not
// exported; the tests use it to cross-validate Action and ActionInverse.

// dualActionMatrix returns the 6x6 dual action matrix of m:
//
//	[ R      0 ]
//	[ px*R   R ]
func dualActionMatrix(m *spatial.Transform) *mat.Dense {
	r := m.Rotation
	pr := skew(m.Translation).Mul3(r)

	d := mat.NewDense(cols.Rows, cols.Rows, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.Set(i, j, r.At(i, j))
			d.Set(3+i, j, pr.At(i, j))
			d.Set(3+i, 3+j, r.At(i, j))
		}
	}
	return d
}

// skew returns the cross-product matrix [p]x.
func skew(p mgl64.Vec3) mgl64.Mat3 {
	x, y, z := p[0], p[1], p[2]
	// Column-major: columns (0,z,-y), (-z,0,x), (y,-x,0).
	return mgl64.Mat3{0, z, -y, -z, 0, x, y, -x, 0}
}

func actionBlock(m *spatial.Transform, iF, jF []float64, n int) {
	cols.Check(iF, jF, n)
	var out mat.Dense
	out.Mul(dualActionMatrix(m), cols.DenseFromSet(iF, n))
	cols.StoreDense(&out, jF, n)
}

func actionInverseBlock(m *spatial.Transform, iF, jF []float64, n int) {
	inv := m.Inverse()
	actionBlock(&inv, iF, jF, n)
}
