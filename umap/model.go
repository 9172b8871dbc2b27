package umap

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// negSamples is the number of non-neighbor pairs sampled per edge per
// iteration to approximate the repulsive term of the optimization.
const negSamples = 5

// edge is a symmetrized fuzzy-membership edge between two training rows.
type edge struct {
	i, j   int
	weight float64
}

// Model is a manifold fitted to a batch of training vectors: the training
// vectors and the low-dimensional layout optimized against their
// nearest-neighbor graph (the graph itself is not kept). Transform re-uses
// the fitted layout to place new vectors without disturbing it.
type Model struct {
	params    Params
	train     *mat.Dense
	embedding *mat.Dense
}

// Params returns the effective parameters the model was fitted with.
func (m *Model) Params() Params {
	return m.params
}

// Embedding returns the low-dimensional layout of the training data.
func (m *Model) Embedding() *mat.Dense {
	return m.embedding
}

// Train returns the high-dimensional training matrix the model was fitted
// against.
func (m *Model) Train() *mat.Dense {
	return m.train
}

// Fit builds a nearest-neighbor graph over data, derives a fuzzy
// membership weighting from it, and optimizes a dims-dimensional layout
// (dims is 2 or 3) against that graph for iters iterations.
// params.NNeighbors is clamped to the row count of data before use.
// It fails if data is nil, has fewer than 2 rows, dims is not 2 or 3, or
// params do not validate once clamped.
//
// Exactly 2 rows is a degenerate case: there is only one possible
// neighbor relationship, so no fuzzy graph or force-directed optimization
// can run. Fit instead returns the two points positioned by LinInit alone,
// skipping buildGraph/optimize entirely.
func Fit(data *mat.Dense, params Params, dims, iters int) (*Model, error) {
	if data == nil {
		return nil, fmt.Errorf("invalid data supplied: %v", data)
	}
	rows, _ := data.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("need at least 2 rows to fit a manifold, got %d", rows)
	}
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("invalid target dimensions: %d", dims)
	}
	params.Clamp(rows)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if iters <= 0 {
		return nil, fmt.Errorf("invalid number of iterations: %d", iters)
	}

	if rows == 2 {
		return &Model{
			params:    params,
			train:     data,
			embedding: LinInit(data, dims),
		}, nil
	}

	graph, _, err := buildGraph(data, params.NNeighbors)
	if err != nil {
		return nil, err
	}

	embedding := LinInit(data, dims)
	rnd := rand.New(rand.NewSource(params.RandomState))
	optimize(embedding, graph, nil, iters, rnd, params.Spread)

	return &Model{
		params:    params,
		train:     data,
		embedding: embedding,
	}, nil
}

// Snapshot is the serializable representation of a fitted Model: the
// nearest-neighbor graph is not retained, since it is cheap to recompute
// from Train at transform time and omitting it keeps the serialized
// artifact smaller.
type Snapshot struct {
	Params    Params
	Train     [][]float64
	Embedding [][]float64
}

// Snapshot captures m in its serializable form.
func (m *Model) Snapshot() Snapshot {
	trainRows, _ := m.train.Dims()
	embRows, _ := m.embedding.Dims()
	train := make([][]float64, trainRows)
	for i := range train {
		row := make([]float64, len(m.train.RawRowView(i)))
		copy(row, m.train.RawRowView(i))
		train[i] = row
	}
	embedding := make([][]float64, embRows)
	for i := range embedding {
		row := make([]float64, len(m.embedding.RawRowView(i)))
		copy(row, m.embedding.RawRowView(i))
		embedding[i] = row
	}
	return Snapshot{Params: m.params, Train: train, Embedding: embedding}
}

// FromSnapshot rebuilds a Model from a previously captured Snapshot.
// It fails if the snapshot is empty or its rows are not rectangular.
func FromSnapshot(s Snapshot) (*Model, error) {
	if len(s.Train) == 0 || len(s.Embedding) == 0 {
		return nil, fmt.Errorf("invalid snapshot: empty train or embedding")
	}
	if len(s.Train) != len(s.Embedding) {
		return nil, fmt.Errorf("snapshot row count mismatch: train %d, embedding %d", len(s.Train), len(s.Embedding))
	}
	trainCols := len(s.Train[0])
	embCols := len(s.Embedding[0])
	train := mat.NewDense(len(s.Train), trainCols, nil)
	embedding := mat.NewDense(len(s.Embedding), embCols, nil)
	for i, row := range s.Train {
		if len(row) != trainCols {
			return nil, fmt.Errorf("snapshot train row %d has %d columns, want %d", i, len(row), trainCols)
		}
		train.SetRow(i, row)
	}
	for i, row := range s.Embedding {
		if len(row) != embCols {
			return nil, fmt.Errorf("snapshot embedding row %d has %d columns, want %d", i, len(row), embCols)
		}
		embedding.SetRow(i, row)
	}
	return &Model{params: s.Params, train: train, embedding: embedding}, nil
}

// Transform embeds data into the manifold m was fitted on. Each new row
// is first placed at the membership-weighted average of its nearest
// fitted neighbors, then refined by the same optimizer with the training
// layout anchored so only the new rows move.
// It fails if data is nil or its column count does not match the
// training data's.
func (m *Model) Transform(data *mat.Dense, iters int) (*mat.Dense, error) {
	if data == nil {
		return nil, fmt.Errorf("invalid data supplied: %v", data)
	}
	trainRows, trainCols := m.train.Dims()
	rows, cols := data.Dims()
	if cols != trainCols {
		return nil, fmt.Errorf("incorrect vector dims: want %d, got %d", trainCols, cols)
	}
	if iters <= 0 {
		return nil, fmt.Errorf("invalid number of iterations: %d", iters)
	}

	_, dims := m.embedding.Dims()
	combined := mat.NewDense(trainRows+rows, dims, nil)
	combined.Copy(m.embedding)
	for i := 0; i < rows; i++ {
		row := data.RawRowView(i)
		idx, dist, err := ClosestN(Metric, m.params.NNeighbors, row, m.train)
		if err != nil {
			return nil, err
		}
		placed := weightedPlacement(m.embedding, idx, dist, dims)
		combined.SetRow(trainRows+i, placed)
	}

	graph, err := buildTransformGraph(m.train, data, m.params.NNeighbors)
	if err != nil {
		return nil, err
	}

	anchored := make([]bool, trainRows+rows)
	for i := 0; i < trainRows; i++ {
		anchored[i] = true
	}

	rnd := rand.New(rand.NewSource(m.params.RandomState))
	optimize(combined, graph, anchored, iters, rnd, m.params.Spread)

	out := mat.NewDense(rows, dims, nil)
	out.Copy(combined.Slice(trainRows, trainRows+rows, 0, dims))
	return out, nil
}

// weightedPlacement returns the membership-weighted average of the rows
// of embedding at idx, weighted by a unit-radius Gaussian of their distance.
func weightedPlacement(embedding *mat.Dense, idx []int, dist []float64, dims int) []float64 {
	out := make([]float64, dims)
	var total float64
	for p, j := range idx {
		w := Gaussian(dist[p], 1.0)
		total += w
		row := embedding.RawRowView(j)
		for d := 0; d < dims; d++ {
			out[d] += w * row[d]
		}
	}
	if total == 0 {
		return out
	}
	for d := 0; d < dims; d++ {
		out[d] /= total
	}
	return out
}

// buildGraph constructs the symmetrized fuzzy membership graph over the
// rows of data using k neighbors per row, using the fuzzy union
// w = a + b - a*b to combine each pair's two directed memberships.
// It also returns, for every row, the indices of its k nearest neighbors.
func buildGraph(data *mat.Dense, k int) ([]edge, [][]int, error) {
	rows, _ := data.Dims()
	directed := make(map[[2]int]float64)
	neighbors := make([][]int, rows)

	for i := 0; i < rows; i++ {
		idx, dist, err := ClosestN(Metric, k+1, data.RawRowView(i), data)
		if err != nil {
			return nil, nil, err
		}
		sigma := localSigma(dist)
		kept := make([]int, 0, k)
		for p, j := range idx {
			if j == i {
				continue
			}
			kept = append(kept, j)
			directed[[2]int{i, j}] = Gaussian(dist[p], sigma)
		}
		neighbors[i] = kept
	}

	sym := make(map[[2]int]float64)
	for key, a := range directed {
		rev := [2]int{key[1], key[0]}
		b := directed[rev]
		ordered := key
		if ordered[0] > ordered[1] {
			ordered = rev
		}
		if _, seen := sym[ordered]; seen {
			continue
		}
		sym[ordered] = a + b - a*b
	}

	edges := make([]edge, 0, len(sym))
	for key, w := range sym {
		edges = append(edges, edge{i: key[0], j: key[1], weight: w})
	}
	// map iteration order is random; sort so optimize visits edges in the
	// same order on every call and a pinned random state is reproducible
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].i != edges[b].i {
			return edges[a].i < edges[b].i
		}
		return edges[a].j < edges[b].j
	})
	return edges, neighbors, nil
}

// buildTransformGraph builds edges from each new row in data to its k
// nearest rows in train, offsetting the new row indices by the row count
// of train so they address the combined layout matrix.
func buildTransformGraph(train, data *mat.Dense, k int) ([]edge, error) {
	trainRows, _ := train.Dims()
	rows, _ := data.Dims()
	edges := make([]edge, 0, rows*k)
	for i := 0; i < rows; i++ {
		idx, dist, err := ClosestN(Metric, k, data.RawRowView(i), train)
		if err != nil {
			return nil, err
		}
		sigma := localSigma(dist)
		for p, j := range idx {
			edges = append(edges, edge{i: trainRows + i, j: j, weight: Gaussian(dist[p], sigma)})
		}
	}
	return edges, nil
}

// localSigma picks the bandwidth for the Gaussian membership kernel
// around a row from its own sorted neighbor distances: the distance to
// the farthest sampled neighbor.
func localSigma(dist []float64) float64 {
	if len(dist) < 2 {
		return 1.0
	}
	sigma := dist[len(dist)-1]
	if sigma == 0 {
		return 1.0
	}
	return sigma
}

// optimize refines the rows of embedding against the attractive edges in
// graph, sampling negSamples repulsive pairs per edge per iteration. Rows
// for which anchored[i] is true are never moved; anchored may be nil, in
// which case every row moves.
func optimize(embedding *mat.Dense, graph []edge, anchored []bool, iters int, rnd *rand.Rand, radius0 float64) {
	n, _ := embedding.Dims()
	isAnchored := func(i int) bool {
		return anchored != nil && i < len(anchored) && anchored[i]
	}

	for it := 0; it < iters; it++ {
		lr, _ := LRate(it, iters, "exp", 1.0)
		radius, _ := Radius(it, iters, "exp", radius0)

		for _, e := range graph {
			if isAnchored(e.i) && isAnchored(e.j) {
				continue
			}
			attract(embedding, e.i, e.j, e.weight*lr, isAnchored)

			for s := 0; s < negSamples; s++ {
				k := rnd.Intn(n)
				if k == e.i {
					continue
				}
				d := rowDistance(embedding, e.i, k)
				if Bubble(d, radius) == 1.0 {
					continue
				}
				// MexicanHat is negative beyond radius, so its negation is
				// a positive (repulsive) step
				repel(embedding, e.i, k, -MexicanHat(d, radius)*lr, isAnchored)
			}
		}
	}
}

// attract moves rows i and j of embedding towards each other by a
// fraction step of the vector between them, skipping whichever of the
// two rows is anchored.
func attract(embedding *mat.Dense, i, j int, step float64, isAnchored func(int) bool) {
	ri, rj := embedding.RawRowView(i), embedding.RawRowView(j)
	for d := range ri {
		delta := (rj[d] - ri[d]) * step
		if !isAnchored(i) {
			ri[d] += delta
		}
		if !isAnchored(j) {
			rj[d] -= delta
		}
	}
}

// repel moves rows i and j of embedding apart by a fraction step of the
// vector between them, skipping whichever of the two rows is anchored.
func repel(embedding *mat.Dense, i, j int, step float64, isAnchored func(int) bool) {
	ri, rj := embedding.RawRowView(i), embedding.RawRowView(j)
	for d := range ri {
		delta := (rj[d] - ri[d]) * step
		if !isAnchored(i) {
			ri[d] -= delta
		}
		if !isAnchored(j) {
			rj[d] += delta
		}
	}
}

// rowDistance returns the Euclidean distance between rows i and j of m.
func rowDistance(m *mat.Dense, i, j int) float64 {
	d, _ := Distance("euclidean", m.RawRowView(i), m.RawRowView(j))
	return d
}
