package umap

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Distance calculates a distance metric between vectors a and b.
// Supported metrics are "euclidean" and "cosine". If an unsupported metric
// is requested Distance falls back to euclidean distance.
// It returns error if the supplied vectors are nil or of different dimensions.
func Distance(metric string, a, b []float64) (float64, error) {
	if a == nil || b == nil {
		return 0.0, fmt.Errorf("invalid vectors supplied: a: %v, b: %v", a, b)
	}
	if len(a) != len(b) {
		return 0.0, fmt.Errorf("incorrect vector dims: a: %d, b: %d", len(a), len(b))
	}

	switch metric {
	case "cosine":
		return cosineVec(a, b), nil
	case "euclidean":
		return euclideanVec(a, b), nil
	default:
		return euclideanVec(a, b), nil
	}
}

// ClosestVec finds the closest row to v among the rows of m using the
// supplied distance metric. It returns the row index.
// If several rows are equidistant, the first one found is returned.
// ClosestVec returns error if either v or m are nil or if v's dimension
// does not match the number of columns in m. On error the returned index is -1.
func ClosestVec(metric string, v []float64, m *mat.Dense) (int, error) {
	if v == nil || len(v) == 0 {
		return -1, fmt.Errorf("invalid vector: %v", v)
	}
	if m == nil {
		return -1, fmt.Errorf("invalid matrix: %v", m)
	}

	rows, _ := m.Dims()
	closest := 0
	dist := math.MaxFloat64
	for i := 0; i < rows; i++ {
		d, err := Distance(metric, v, m.RawRowView(i))
		if err != nil {
			return -1, err
		}
		if d < dist {
			dist = d
			closest = i
		}
	}

	return closest, nil
}

// ClosestN finds the n closest rows to v among the rows of m using the
// supplied distance metric, and returns their indices ordered nearest first,
// together with the matching distances.
// It fails in the same way as ClosestVec. If n is larger than the number of
// rows in m, or is not a positive integer, it fails with error too.
func ClosestN(metric string, n int, v []float64, m *mat.Dense) ([]int, []float64, error) {
	if v == nil || len(v) == 0 {
		return nil, nil, fmt.Errorf("invalid vector: %v", v)
	}
	if m == nil {
		return nil, nil, fmt.Errorf("invalid matrix: %v", m)
	}
	rows, _ := m.Dims()
	if n <= 0 || n > rows {
		return nil, nil, fmt.Errorf("invalid number of closest vectors requested: %d", n)
	}

	h, _ := newFloat64Heap(n)
	for i := 0; i < rows; i++ {
		d, err := Distance(metric, v, m.RawRowView(i))
		if err != nil {
			return nil, nil, err
		}
		heap.Push(h, &float64Item{val: d, index: i})
	}

	// the heap keeps the largest of the n smallest values at its root, so
	// popping yields items from farthest to nearest -- reverse them
	idx := make([]int, n)
	dist := make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		item := heap.Pop(h).(*float64Item)
		idx[j] = item.index
		dist[j] = item.val
	}

	return idx, dist, nil
}

// euclideanVec computes the Euclidean distance between vectors a and b.
func euclideanVec(a, b []float64) float64 {
	d := 0.0
	for i := 0; i < len(a); i++ {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(d)
}

// cosineVec computes the cosine distance (1 - cosine similarity) between
// vectors a and b. A zero vector is at distance 0 from another zero vector
// and at distance 1 (as if orthogonal) from every non-zero vector.
func cosineVec(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		if na == nb {
			return 0.0
		}
		return 1.0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	// guard against floating point drift outside [-1, 1]
	if sim > 1.0 {
		sim = 1.0
	} else if sim < -1.0 {
		sim = -1.0
	}
	return 1.0 - sim
}
