package umap

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandInit returns a rows x cols matrix initialized to values drawn
// uniformly from [-10, 10] using the supplied random source, so that
// learning with a pinned random_state is reproducible.
func RandInit(rows, cols int, rnd *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rnd.Float64()*2 - 1) * 10
	}
	return mat.NewDense(rows, cols, data)
}

// LinInit returns an N x k matrix derived from the dominant directions of
// inMx (N x D): it projects inMx onto its top min(k, N, D) right singular
// vectors. This mirrors the PCA-style initialization UMAP falls back to
// when a full spectral (graph Laplacian) initialization is too expensive,
// and, unlike RandInit, places nearby input points near each other in the
// initial layout rather than scattering them uniformly at random.
// If N < k or D < k (fewer singular vectors than requested output
// dimensions), the remaining columns are filled with small random values seeded from
// random_state 42 so every returned matrix has exactly k columns.
// It falls back entirely to RandInit (same seed) if the SVD does not
// converge.
func LinInit(inMx *mat.Dense, k int) *mat.Dense {
	rows, cols := inMx.Dims()
	rnd := rand.New(rand.NewSource(42))

	if cols == 0 {
		return RandInit(rows, k, rnd)
	}

	proj := k
	if proj > cols {
		proj = cols
	}
	// a thin SVD yields only min(rows, cols) right singular vectors
	if proj > rows {
		proj = rows
	}

	var svd mat.SVD
	if !svd.Factorize(inMx, mat.SVDThin) {
		return RandInit(rows, k, rnd)
	}

	var v mat.Dense
	svd.VTo(&v)
	vk := v.Slice(0, cols, 0, proj)

	scores := mat.NewDense(rows, proj, nil)
	scores.Mul(inMx, vk)
	if proj == k {
		return scores
	}

	out := mat.NewDense(rows, k, nil)
	for i := 0; i < rows; i++ {
		row := make([]float64, k)
		copy(row, scores.RawRowView(i))
		for d := proj; d < k; d++ {
			row[d] = (rnd.Float64()*2 - 1) * 0.1
		}
		out.SetRow(i, row)
	}
	return out
}
