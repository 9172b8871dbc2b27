// Package numerics provides the matrix-level helpers the reduction
// service needs on top of gonum: column statistics and a min-max
// coordinate normalizer (not applied to the coordinates the umap methods
// return), 4x4 homogeneous matrix construction, batch/matrix conversion,
// and the validation rules shared by the learning and transform code paths.
package numerics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColsMin returns the minimum value of each of the first cols columns of m.
// It fails if m is nil, has zero columns, or cols exceeds its column count.
func ColsMin(cols int, m *mat.Dense) ([]float64, error) {
	return withValidCols(cols, m, mat.Min)
}

// ColsMax returns the maximum value of each of the first cols columns of m.
// It fails in the same way as ColsMin.
func ColsMax(cols int, m *mat.Dense) ([]float64, error) {
	return withValidCols(cols, m, mat.Max)
}

// ColsMean returns the mean value of each of the first cols columns of m.
// It fails in the same way as ColsMin.
func ColsMean(cols int, m *mat.Dense) ([]float64, error) {
	return withValidCols(cols, m, mean)
}

// NormalizeCoordinates rescales every column of c into [-r, r] by a
// per-column min-max transform. Columns with zero range (every row holds
// the same value) pass through unchanged, since there is no meaningful
// range to rescale against. It fails if c is nil or has zero columns.
// Not called from the umap_learning/umap_transform paths: those return
// raw coordinates, per spec.md's note that normalization is suppressed on
// the primary paths. Kept available for future non-UMAP methods.
func NormalizeCoordinates(c *mat.Dense, r float64) (*mat.Dense, error) {
	if c == nil {
		return nil, fmt.Errorf("invalid matrix supplied: %v", c)
	}
	rows, cols := c.Dims()
	if cols == 0 {
		return nil, fmt.Errorf("invalid number of columns supplied: %v", c)
	}

	mins, err := ColsMin(cols, c)
	if err != nil {
		return nil, err
	}
	maxs, err := ColsMax(cols, c)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		span := maxs[j] - mins[j]
		for i := 0; i < rows; i++ {
			if span == 0 {
				out.Set(i, j, c.At(i, j))
				continue
			}
			normalized := 2*(c.At(i, j)-mins[j])/span - 1
			out.Set(i, j, normalized*r)
		}
	}
	return out, nil
}

// ValidateBatch checks that a batch of embedding vectors is well formed:
// non-empty, rectangular, positive length, and free of NaN/Inf values.
func ValidateBatch(batch [][]float64) error {
	if len(batch) == 0 {
		return fmt.Errorf("embedding batch must contain at least one vector")
	}
	dims := len(batch[0])
	if dims == 0 {
		return fmt.Errorf("embedding vectors must have at least one dimension")
	}
	for i, row := range batch {
		if len(row) != dims {
			return fmt.Errorf("vector %d has %d dimensions, want %d", i, len(row), dims)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("vector %d component %d is not finite: %v", i, j, v)
			}
		}
	}
	return nil
}

// ToDense converts a batch of equal-length vectors into a gonum matrix.
// Callers must run ValidateBatch first.
func ToDense(batch [][]float64) *mat.Dense {
	rows := len(batch)
	cols := len(batch[0])
	out := mat.NewDense(rows, cols, nil)
	for i, row := range batch {
		out.SetRow(i, row)
	}
	return out
}

// ToSlices converts a gonum matrix back into a batch of row vectors, the
// inverse of ToDense.
func ToSlices(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		copy(row, m.RawRowView(i))
		out[i] = row
	}
	return out
}

// mean returns the arithmetic mean of a column vector.
func mean(m mat.Matrix) float64 {
	rows, _ := m.Dims()
	col := make([]float64, rows)
	for i := 0; i < rows; i++ {
		col[i] = m.At(i, 0)
	}
	return stat.Mean(col, nil)
}

// colsFn applies fn to each of the first cols columns of m and collects
// the results.
func colsFn(cols int, m *mat.Dense, fn func(mat.Matrix) float64) []float64 {
	res := make([]float64, cols)
	for i := 0; i < cols; i++ {
		res[i] = fn(m.ColView(i))
	}
	return res
}

// withValidCols validates that m is usable and cols is within its bounds,
// then applies fn to each of the first cols columns.
func withValidCols(cols int, m *mat.Dense, fn func(mat.Matrix) float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("invalid matrix supplied: %v", m)
	}
	_, mCols := m.Dims()
	if mCols == 0 {
		return nil, fmt.Errorf("invalid number of columns supplied: %v", m)
	}
	if cols > mCols {
		return nil, fmt.Errorf("column count %d exceeds matrix dimensions", cols)
	}
	return colsFn(cols, m, fn), nil
}
