package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMatrixIdentity(t *testing.T) {
	assert := assert.New(t)

	m := CreateMatrix(Transform{})
	rows, cols := m.Dims()
	assert.Equal(4, rows)
	assert.Equal(4, cols)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(want, m.At(i, j), 1e-12)
		}
	}
}

func TestCreateMatrixTranslate(t *testing.T) {
	assert := assert.New(t)

	m := CreateMatrix(Transform{Translate: [3]float64{1, 2, 3}})
	assert.Equal(1.0, m.At(0, 3))
	assert.Equal(2.0, m.At(1, 3))
	assert.Equal(3.0, m.At(2, 3))
}

func TestCreateMatrixScale(t *testing.T) {
	assert := assert.New(t)

	m := CreateMatrix(Transform{Scale: [3]float64{2, 3, 4}})
	assert.InDelta(2.0, m.At(0, 0), 1e-12)
	assert.InDelta(3.0, m.At(1, 1), 1e-12)
	assert.InDelta(4.0, m.At(2, 2), 1e-12)
}

func TestCreateMatrixRotateZ(t *testing.T) {
	assert := assert.New(t)

	m := CreateMatrix(Transform{
		RotateAxis:  [3]float64{0, 0, 1},
		RotateAngle: math.Pi / 2,
	})
	// a 90 degree rotation around Z sends (1,0,0) to (0,1,0)
	assert.InDelta(0.0, m.At(0, 0), 1e-9)
	assert.InDelta(1.0, m.At(1, 0), 1e-9)
}

func TestFlattenUnflatten(t *testing.T) {
	assert := assert.New(t)

	m := CreateMatrix(Transform{Translate: [3]float64{1, 2, 3}})
	flat := Flatten(m)
	assert.Len(flat, 16)

	back, err := Unflatten(flat)
	assert.NoError(err)
	assert.True(back.At(0, 3) == 1.0)

	_, err = Unflatten([]float64{1, 2, 3})
	assert.Error(err)
}
