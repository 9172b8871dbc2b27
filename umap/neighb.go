package umap

import "math"

// Gaussian calculates the gaussian membership weight of an edge at the
// given distance. Used to turn k-NN distances into fuzzy simplicial set
// membership strengths during learning.
func Gaussian(distance float64, radius float64) float64 {
	return math.Exp(-(distance * distance) / (2 * radius * radius))
}

// Bubble reports whether distance falls within radius. Used during
// negative sampling to skip a randomly drawn pair whose rows already lie
// within radius of each other in the layout; the pair is not checked
// against the neighbor graph.
func Bubble(distance float64, radius float64) float64 {
	if distance <= radius {
		return 1.0
	}
	return 0.0
}

// MexicanHat calculates the mexican-hat (mexican sombrero) weight at the
// given distance: it is positive for nearby points, negative in a mid
// range and decays to zero far away, which is the shape used for the
// repulsive term of the low-dimensional embedding optimizer.
func MexicanHat(distance float64, radius float64) float64 {
	return 2 / (math.Sqrt(3*radius) * math.Pow(math.Pi, 0.25)) *
		(1 - (distance*distance)/(radius*radius)) *
		math.Exp(-(distance*distance)/(2*radius*radius))
}
