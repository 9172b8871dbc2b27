package numerics

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ClusteredBatch generates synthetic data clustered into the given number
// of clusters, for exercising the learning phase without a real embedding
// model on hand. Cluster centres are drawn uniformly from [min, max] in
// every dimension; each sample is its cluster centre plus an offset drawn
// uniformly from [-maxOffset, maxOffset]. Samples are assigned to
// clusters round-robin, so every cluster gets the same number of rows
// when rows is a multiple of clusters.
func ClusteredBatch(rows, cols, clusters int, min, max, maxOffset float64, randSeed int64) *mat.Dense {
	rnd := rand.New(rand.NewSource(randSeed))

	centres := make([][]float64, clusters)
	for i := 0; i < clusters; i++ {
		centres[i] = randVector(rnd, min, max, cols)
	}

	data := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		centre := centres[i%clusters]
		offset := randVector(rnd, -maxOffset, maxOffset, cols)
		row := make([]float64, cols)
		for j := range row {
			row[j] = centre[j] + offset[j]
		}
		data.SetRow(i, row)
	}
	return data
}

// randVector returns a vector of cols values drawn uniformly from [min, max].
func randVector(rnd *rand.Rand, min, max float64, cols int) []float64 {
	v := make([]float64, cols)
	for i := range v {
		v[i] = rnd.Float64()*(max-min) + min
	}
	return v
}
