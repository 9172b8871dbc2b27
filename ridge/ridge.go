// Package ridge fits a linear surrogate of the nonlinear manifold
// produced by umap.Fit: an ordinary ridge regression from the original
// high-dimensional vectors onto their learned low-dimensional embedding.
// Once distilled, the surrogate lets a caller that only needs an
// approximate projection skip the considerably more expensive nonlinear
// fit.
package ridge

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultAlpha is a conventional L2 regularization strength. Fit does not
// apply it on its own: every caller passes alpha explicitly.
const DefaultAlpha = 0.1

// Model is a fitted ridge surrogate: Y ~= X * Weights, no intercept
// term (the training data is not centered, so an intercept would only
// absorb what normalization is expected to handle downstream).
type Model struct {
	Weights *mat.Dense
	Alpha   float64
	// RSquared holds the per-output-column coefficient of determination,
	// measuring how faithfully the surrogate reproduces the nonlinear fit.
	RSquared []float64
}

// Fit distills a ridge regression of y (N x outDims) on x (N x inDims)
// with regularization strength alpha by solving the normal equations
// (X^T X + alpha*I) W = X^T Y via Cholesky decomposition, falling back
// to a general solve if X^T X + alpha*I is not positive definite.
// It fails if x and y have a different number of rows, either is empty,
// or alpha is negative.
func Fit(x, y *mat.Dense, alpha float64) (*Model, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("invalid training data supplied: x=%v, y=%v", x, y)
	}
	xRows, xCols := x.Dims()
	yRows, yCols := y.Dims()
	if xRows != yRows {
		return nil, fmt.Errorf("row count mismatch: x has %d rows, y has %d", xRows, yRows)
	}
	if xRows == 0 || xCols == 0 || yCols == 0 {
		return nil, fmt.Errorf("training data must have at least one row and column")
	}
	if alpha < 0 {
		return nil, fmt.Errorf("alpha must be non-negative, got %f", alpha)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	for i := 0; i < xCols; i++ {
		xtx.Set(i, i, xtx.At(i, i)+alpha)
	}

	var xty mat.Dense
	xty.Mul(x.T(), y)

	weights := mat.NewDense(xCols, yCols, nil)
	var chol mat.Cholesky
	if chol.Factorize(mat.NewSymDense(xCols, xtx.RawMatrix().Data)) {
		if err := chol.SolveTo(weights, &xty); err != nil {
			return nil, fmt.Errorf("solving ridge normal equations: %w", err)
		}
	} else {
		if err := weights.Solve(&xtx, &xty); err != nil {
			return nil, fmt.Errorf("solving ridge normal equations: %w", err)
		}
	}

	var pred mat.Dense
	pred.Mul(x, weights)
	rsq := make([]float64, yCols)
	for j := 0; j < yCols; j++ {
		predCol := mat.Col(nil, j, &pred)
		yCol := mat.Col(nil, j, y)
		rsq[j] = stat.RSquaredFrom(predCol, yCol, nil)
	}

	return &Model{Weights: weights, Alpha: alpha, RSquared: rsq}, nil
}

// Predict projects x (M x inDims) through the fitted surrogate, returning
// an M x outDims matrix. It fails if x's column count does not match the
// weight matrix's row count.
func (m *Model) Predict(x *mat.Dense) (*mat.Dense, error) {
	_, xCols := x.Dims()
	wRows, _ := m.Weights.Dims()
	if xCols != wRows {
		return nil, fmt.Errorf("incorrect vector dims: want %d, got %d", wRows, xCols)
	}
	var out mat.Dense
	out.Mul(x, m.Weights)
	return &out, nil
}
