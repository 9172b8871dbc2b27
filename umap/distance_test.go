package umap

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestDistance(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		a        []float64
		b        []float64
		expected float64
	}{
		{[]float64{0.0, 0.0}, []float64{0.0, 1.0}, 1.0},
		{[]float64{0.0, 0.0}, []float64{0.0, 0.0}, 0.0},
		{[]float64{3.0, 1.0}, []float64{1.0, 3.0}, 2.828},
	}

	for _, tc := range testCases {
		dist, err := Distance("euclidean", tc.a, tc.b)
		assert.NoError(err)
		assert.InDelta(tc.expected, dist, 0.01)
	}

	// unknown metric falls back to euclidean distance
	a := []float64{0.0, 0.0}
	b := []float64{0.0, 1.0}
	d, err := Distance("foobar", a, b)
	assert.NoError(err)
	assert.InDelta(1.0, d, 0.01)
	// nil vectors
	d, err = Distance("euclidean", nil, nil)
	assert.Error(err)
	assert.Equal(0.0, d)
	// different vector dimensions
	a = []float64{0.0, 0.0}
	b = []float64{1.0}
	d, err = Distance("euclidean", a, b)
	assert.Error(err)
	assert.Equal(0.0, d)
}

func TestCosineDistance(t *testing.T) {
	assert := assert.New(t)

	// identical direction: zero distance
	d, err := Distance("cosine", []float64{1.0, 0.0}, []float64{2.0, 0.0})
	assert.NoError(err)
	assert.InDelta(0.0, d, 1e-9)
	// orthogonal vectors: distance 1
	d, err = Distance("cosine", []float64{1.0, 0.0}, []float64{0.0, 1.0})
	assert.NoError(err)
	assert.InDelta(1.0, d, 1e-9)
	// opposite direction: distance 2
	d, err = Distance("cosine", []float64{1.0, 0.0}, []float64{-1.0, 0.0})
	assert.NoError(err)
	assert.InDelta(2.0, d, 1e-9)
	// a zero vector against itself is distance 0, against anything else is 1
	d, err = Distance("cosine", []float64{0.0, 0.0}, []float64{0.0, 0.0})
	assert.NoError(err)
	assert.Equal(0.0, d)
	d, err = Distance("cosine", []float64{0.0, 0.0}, []float64{1.0, 0.0})
	assert.NoError(err)
	assert.Equal(1.0, d)
}

func TestClosestVec(t *testing.T) {
	assert := assert.New(t)

	metric := "euclidean"
	testCases := []struct {
		v        []float64
		m        []float64
		metric   string
		expected int
	}{
		{[]float64{0.0, 0.0}, []float64{0.0, 1.0, 0.0, 0.1}, metric, 1},
		{[]float64{0.0, 0.0}, []float64{0.0, 0.0, 0.0, 0.1}, metric, 0},
		{[]float64{3.0, 1.0}, []float64{1.0, 3.0, 1.0, 0.0}, metric, 1},
	}

	for _, tc := range testCases {
		m := mat.NewDense(2, len(tc.v), tc.m)
		closest, err := ClosestVec(tc.metric, tc.v, m)
		assert.NoError(err)
		assert.Equal(tc.expected, closest)
	}

	// nil vector returns error
	v := []float64{}
	m := new(mat.Dense)
	errString := "invalid vector: %v"
	closest, err := ClosestVec(metric, v, m)
	assert.Error(err)
	assert.EqualError(err, fmt.Sprintf(errString, v))
	assert.Equal(-1, closest)
	// nil matrix returns error
	v = []float64{1.0}
	m = nil
	errString = "invalid matrix: %v"
	closest, err = ClosestVec(metric, v, m)
	assert.Error(err)
	assert.EqualError(err, fmt.Sprintf(errString, m))
	assert.Equal(-1, closest)
	// mismatched dimensions return error
	v = make([]float64, 3)
	m = mat.NewDense(2, 2, nil)
	closest, err = ClosestVec(metric, v, m)
	assert.Error(err)
	assert.Equal(-1, closest)
}

func TestClosestN(t *testing.T) {
	assert := assert.New(t)

	metric := "euclidean"
	// nil vector returns error
	v := []float64{}
	m := new(mat.Dense)
	n := 2
	idx, dist, err := ClosestN(metric, n, v, m)
	assert.Error(err)
	assert.Nil(idx)
	assert.Nil(dist)
	// nil matrix returns error
	v = []float64{1.0}
	m = nil
	idx, dist, err = ClosestN(metric, n, v, m)
	assert.Error(err)
	assert.Nil(idx)
	assert.Nil(dist)
	// incorrect number of closest vectors requested
	m = new(mat.Dense)
	n = -5
	idx, dist, err = ClosestN(metric, n, v, m)
	assert.Error(err)
	assert.Nil(idx)
	assert.Nil(dist)
	// n == 1 behaves like ClosestVec
	n = 1
	v, mData := []float64{0.0, 0.0}, []float64{0.0, 1.0, 0.0, 0.1}
	m = mat.NewDense(2, len(v), mData)
	idx, dist, err = ClosestN(metric, n, v, m)
	assert.NoError(err)
	assert.Equal(1, idx[0])
	assert.InDelta(0.1, dist[0], 0.01)
	// find the 2 closest vectors, nearest first
	n = 2
	mData = []float64{
		0.0, 1.0,
		0.0, 0.1,
		0.0, 0.2,
		0.1, 0.0,
		0.0, 0.5}
	m = mat.NewDense(5, len(v), mData)
	idx, dist, err = ClosestN(metric, n, v, m)
	assert.NoError(err)
	sorted := append([]int{}, idx...)
	sort.Ints(sorted)
	assert.Equal([]int{1, 3}, sorted)
	assert.True(dist[0] <= dist[1])
}
