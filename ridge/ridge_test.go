package ridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestFit(t *testing.T) {
	assert := assert.New(t)

	_, err := Fit(nil, nil, DefaultAlpha)
	assert.Error(err)

	x := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 1, 1, 2, 1})
	y := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})
	_, err = Fit(x, y, DefaultAlpha)
	assert.Error(err)

	_, err = Fit(x, x, -1.0)
	assert.Error(err)

	// y is an exact linear function of x: weights should recover it
	// closely, and the fit should explain nearly all the variance.
	yLin := mat.NewDense(4, 1, []float64{2, 3, 5, 7})
	m, err := Fit(x, yLin, 1e-6)
	assert.NoError(err)
	assert.NotNil(m)
	assert.Len(m.RSquared, 1)
	assert.True(m.RSquared[0] > 0.99)
}

func TestPredict(t *testing.T) {
	assert := assert.New(t)

	x := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 1, 1, 2, 1})
	y := mat.NewDense(4, 1, []float64{2, 3, 5, 7})
	m, err := Fit(x, y, 1e-6)
	assert.NoError(err)

	pred, err := m.Predict(x)
	assert.NoError(err)
	rows, cols := pred.Dims()
	assert.Equal(4, rows)
	assert.Equal(1, cols)

	bad := mat.NewDense(1, 3, []float64{1, 2, 3})
	_, err = m.Predict(bad)
	assert.Error(err)
}
