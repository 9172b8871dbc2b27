package numerics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform describes the translate/rotate/scale parameters behind a 4x4
// homogeneous transformation matrix, the kind a visualization frontend
// applies to position a point cloud in a 3D scene.
type Transform struct {
	Translate [3]float64
	// RotateAxis is normalized internally; the zero vector means "no
	// rotation" regardless of RotateAngle.
	RotateAxis  [3]float64
	RotateAngle float64 // radians
	Scale       [3]float64
}

// CreateMatrix builds the 4x4 homogeneous matrix M = T * R * S, applying
// scale first, then the axis-angle rotation (via Rodrigues' formula),
// then translation. A zero Scale component defaults to 1 so a caller
// that only wants to translate or rotate doesn't have to specify scale.
func CreateMatrix(t Transform) *mat.Dense {
	scale := t.Scale
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}

	m := mat.NewDense(4, 4, nil)
	r := rotationMatrix(t.RotateAxis, t.RotateAngle)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j)*scale[j])
		}
		m.Set(i, 3, t.Translate[i])
	}
	m.Set(3, 3, 1)
	return m
}

// rotationMatrix returns the 3x3 rotation matrix for a right-handed
// rotation of angle radians around axis, via Rodrigues' rotation
// formula. A zero-length axis yields the identity.
func rotationMatrix(axis [3]float64, angle float64) *mat.Dense {
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	r := mat.NewDense(3, 3, nil)
	if norm == 0 {
		r.Set(0, 0, 1)
		r.Set(1, 1, 1)
		r.Set(2, 2, 1)
		return r
	}
	x, y, z := axis[0]/norm, axis[1]/norm, axis[2]/norm
	c, s := math.Cos(angle), math.Sin(angle)
	ic := 1 - c

	r.Set(0, 0, c+x*x*ic)
	r.Set(0, 1, x*y*ic-z*s)
	r.Set(0, 2, x*z*ic+y*s)
	r.Set(1, 0, y*x*ic+z*s)
	r.Set(1, 1, c+y*y*ic)
	r.Set(1, 2, y*z*ic-x*s)
	r.Set(2, 0, z*x*ic-y*s)
	r.Set(2, 1, z*y*ic+x*s)
	r.Set(2, 2, c+z*z*ic)
	return r
}

// Flatten returns the matrix entries as one flat slice in row-major order.
// The create-matrix response does not use it; it carries nested rows.
func Flatten(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, m.RawRowView(i)...)
	}
	return out
}

// Unflatten rebuilds a square matrix from its row-major representation.
// It fails if the number of values is not a perfect square.
func Unflatten(values []float64) (*mat.Dense, error) {
	n := int(math.Sqrt(float64(len(values))))
	if n*n != len(values) {
		return nil, fmt.Errorf("value count %d is not a perfect square", len(values))
	}
	return mat.NewDense(n, n, values), nil
}
