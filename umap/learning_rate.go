package umap

import (
	"fmt"
	"math"
)

// MinLRate is the floor value any learning-rate decay strategy converges to
// at the final iteration.
const MinLRate = 0.01

// LRate computes the effective optimizer step size for the given training
// iteration out of totalIterations, decaying from learningRate0 down to
// MinLRate. Supported strategies are "exp" and "lin"; an unsupported
// strategy falls back to "exp". It returns an error (and NaN) if
// learningRate0 is not a positive number.
func LRate(iteration, totalIterations int, strategy string, learningRate0 float64) (float64, error) {
	if learningRate0 <= 0 {
		return math.NaN(), fmt.Errorf("invalid initial learning rate: %f", learningRate0)
	}

	switch strategy {
	case "lin":
		return linLR(iteration, totalIterations, learningRate0), nil
	case "exp":
		return expLR(iteration, totalIterations, learningRate0), nil
	default:
		return expLR(iteration, totalIterations, learningRate0), nil
	}
}

func expLR(iteration, totalIterations int, learningRate0 float64) float64 {
	if totalIterations <= 1 {
		return MinLRate
	}
	t := float64(iteration) / float64(totalIterations-1)
	return learningRate0 * math.Pow(MinLRate/learningRate0, t)
}

func linLR(iteration, totalIterations int, learningRate0 float64) float64 {
	if totalIterations <= 1 {
		return MinLRate
	}
	t := float64(iteration) / float64(totalIterations-1)
	return learningRate0 - t*(learningRate0-MinLRate)
}
