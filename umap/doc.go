// Package umap implements a hybrid manifold-learning reducer: an expensive
// learning phase that fits a nonlinear low-dimensional embedding of a batch
// of high-dimensional vectors, and a cheap transform phase that embeds new
// vectors into a previously learned manifold without re-fitting.
//
// The learning phase builds a cosine-metric nearest-neighbor graph, turns
// it into a fuzzy membership graph, and optimizes a low-dimensional layout
// by sampling attractive (neighbor) and repulsive (non-neighbor) edges --
// the same force-directed idea as UMAP's simplicial-set optimization, built
// here on top of the package's own distance, neighborhood and decay
// primitives rather than a vendored implementation.
package umap
