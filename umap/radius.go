package umap

import (
	"fmt"
	"math"
)

// SmallestRadius is the floor value any radius decay strategy converges to
// at the final iteration.
const SmallestRadius = 1.0

// Radius computes the effective neighborhood radius for the given training
// iteration out of totalIterations, decaying from radius0 down to
// SmallestRadius. Supported strategies are "exp" and "lin"; an unsupported
// strategy falls back to "exp". It returns an error (and NaN) if radius0 is
// not a positive number.
func Radius(iteration, totalIterations int, strategy string, radius0 float64) (float64, error) {
	if radius0 <= 0 {
		return math.NaN(), fmt.Errorf("invalid initial radius: %f", radius0)
	}

	switch strategy {
	case "lin":
		return linRadius(iteration, totalIterations, radius0), nil
	case "exp":
		return expRadius(iteration, totalIterations, radius0), nil
	default:
		return expRadius(iteration, totalIterations, radius0), nil
	}
}

// expRadius decays geometrically from radius0 to SmallestRadius, reaching
// the floor exactly at the last iteration.
func expRadius(iteration, totalIterations int, radius0 float64) float64 {
	if totalIterations <= 1 {
		return SmallestRadius
	}
	t := float64(iteration) / float64(totalIterations-1)
	return radius0 * math.Pow(SmallestRadius/radius0, t)
}

func linRadius(iteration, totalIterations int, radius0 float64) float64 {
	if totalIterations <= 1 {
		return SmallestRadius
	}
	t := float64(iteration) / float64(totalIterations-1)
	return radius0 - t*(radius0-SmallestRadius)
}
