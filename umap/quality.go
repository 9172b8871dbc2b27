package umap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Trustworthiness measures how well a low-dimensional embedding preserves
// the k-nearest-neighbor structure of the high-dimensional data it was
// fitted from: for every row it counts embedding neighbors that were not
// among the row's true nearest neighbors, and penalizes each by how far
// out of the true neighbor ranking it actually falls. The result is in
// [0, 1], where 1.0 means the embedding's k nearest neighbors exactly
// match the original data's for every row.
// It fails if train and embedding have a different number of rows, or if
// k is not a positive integer smaller than the row count.
func Trustworthiness(train, embedding *mat.Dense, k int) (float64, error) {
	trainRows, _ := train.Dims()
	embRows, _ := embedding.Dims()
	if trainRows != embRows {
		return 0.0, fmt.Errorf("row count mismatch: train %d, embedding %d", trainRows, embRows)
	}
	if k <= 0 || k >= trainRows {
		return 0.0, fmt.Errorf("invalid neighbor count: %d", k)
	}

	n := trainRows
	var penalty float64
	for i := 0; i < n; i++ {
		trueIdx, _, err := ClosestN(Metric, k, train.RawRowView(i), train)
		if err != nil {
			return 0.0, err
		}
		embIdx, _, err := ClosestN("euclidean", k, embedding.RawRowView(i), embedding)
		if err != nil {
			return 0.0, err
		}
		trueRank, _, err := ClosestN(Metric, n, train.RawRowView(i), train)
		if err != nil {
			return 0.0, err
		}

		trueSet := make(map[int]bool, len(trueIdx))
		for _, j := range trueIdx {
			trueSet[j] = true
		}
		rank := make(map[int]int, len(trueRank))
		for r, j := range trueRank {
			rank[j] = r + 1
		}

		for _, j := range embIdx {
			if trueSet[j] {
				continue
			}
			penalty += float64(rank[j] - k)
		}
	}

	norm := float64(n) * float64(k) * (2*float64(n) - 3*float64(k) - 1)
	if norm <= 0 {
		return 1.0, nil
	}
	return 1.0 - (2.0/norm)*penalty, nil
}
