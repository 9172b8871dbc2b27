package umap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestRandInit(t *testing.T) {
	assert := assert.New(t)

	rnd := rand.New(rand.NewSource(42))
	m := RandInit(5, 3, rnd)
	rows, cols := m.Dims()
	assert.Equal(5, rows)
	assert.Equal(3, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			assert.True(v >= -10.0 && v <= 10.0)
		}
	}

	// same random_state produces the same initial layout
	m2 := RandInit(5, 3, rand.New(rand.NewSource(42)))
	assert.True(mat.EqualApprox(m, m2, 1e-12))
}

func TestLinInit(t *testing.T) {
	assert := assert.New(t)

	data := mat.NewDense(6, 4, []float64{
		5.1, 3.5, 1.4, 0.2,
		4.9, 3.0, 1.4, 0.2,
		4.7, 3.2, 1.3, 0.2,
		4.6, 3.1, 1.5, 0.2,
		5.0, 3.6, 1.4, 0.2,
		5.4, 3.9, 1.7, 0.4,
	})

	out := LinInit(data, 2)
	rows, cols := out.Dims()
	assert.Equal(6, rows)
	assert.Equal(2, cols)

	// requesting more dims than the input has still yields exactly the
	// requested column count, padded with small random values
	out = LinInit(data, 10)
	rows, cols = out.Dims()
	assert.Equal(6, rows)
	assert.Equal(10, cols)
}
