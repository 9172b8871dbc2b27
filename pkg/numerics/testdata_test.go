package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestClusteredBatch(t *testing.T) {
	assert := assert.New(t)

	data := ClusteredBatch(12, 4, 3, -1.0, 1.0, 0.1, 7)
	rows, cols := data.Dims()
	assert.Equal(12, rows)
	assert.Equal(4, cols)

	// same seed produces the same batch
	again := ClusteredBatch(12, 4, 3, -1.0, 1.0, 0.1, 7)
	assert.True(mat.EqualApprox(data, again, 1e-12))
}
