package umap

import "fmt"

// Metric is the only distance metric the service supports; it is fixed,
// not a caller-tunable parameter.
const Metric = "cosine"

// Documented defaults for the recognized UMAP parameters.
const (
	DefaultNeighbors   = 15
	DefaultMinDist     = 0.8
	DefaultSpread      = 3.0
	DefaultRandomState = 42
)

// Decay lists the supported learning-rate/radius cooling strategies.
var Decay = map[string]bool{
	"lin": true,
	"exp": true,
}

// Params holds the recognized UMAP options. DefaultParams returns the
// documented defaults; of a zero-valued Params, only NNeighbors is filled
// in automatically (by Clamp).
type Params struct {
	NNeighbors  int
	MinDist     float64
	Spread      float64
	RandomState int64
}

// DefaultParams returns the documented default parameter set.
func DefaultParams() Params {
	return Params{
		NNeighbors:  DefaultNeighbors,
		MinDist:     DefaultMinDist,
		Spread:      DefaultSpread,
		RandomState: DefaultRandomState,
	}
}

// Clamp adapts NNeighbors to the sample count n: if NNeighbors is unset it
// is filled with the default, and if it is still >= n it is reduced to
// max(2, n-1). It reports whether clamping changed the effective value.
func (p *Params) Clamp(n int) bool {
	if p.NNeighbors <= 0 {
		p.NNeighbors = DefaultNeighbors
	}
	if p.NNeighbors >= n {
		clamped := n - 1
		if clamped < 2 {
			clamped = 2
		}
		p.NNeighbors = clamped
		return true
	}
	return false
}

// Validate checks that the parameters are within their documented ranges.
// It does not perform neighbor clamping -- call Clamp first.
func (p Params) Validate() error {
	if p.NNeighbors < 2 {
		return fmt.Errorf("n_neighbors must be >= 2, got %d", p.NNeighbors)
	}
	if p.MinDist < 0 || p.MinDist > 1 {
		return fmt.Errorf("min_dist must be in [0, 1], got %f", p.MinDist)
	}
	if p.Spread < 0.1 || p.Spread > 10 {
		return fmt.Errorf("spread must be in [0.1, 10], got %f", p.Spread)
	}
	return nil
}
