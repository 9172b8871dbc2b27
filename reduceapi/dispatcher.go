// Package reduceapi implements the request dispatcher the service's HTTP
// transport sits on top of: validation, parameter adaptation, routing to
// the umap learning/transform engines, ridge distillation, and response
// envelope construction. It has no HTTP dependency so it is unit-testable
// without a running server.
package reduceapi

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/cosmograph/reduce/pkg/numerics"
	"github.com/cosmograph/reduce/ridge"
	"github.com/cosmograph/reduce/umap"
)

// RidgeAlpha is the fixed L2 penalty used to distill the linear
// surrogate during learning.
const RidgeAlpha = 0.1

// LibraryVersion is reported in model metadata and /health.
const LibraryVersion = "reduce-umap/1.0"

// Defaults holds the configurable default UMAP parameters applied when a
// request omits them. It is deliberately decoupled from the config
// package (which owns flag/env parsing) so the dispatcher has no
// dependency on how those values were resolved.
type Defaults struct {
	Neighbors   int
	MinDist     float64
	Spread      float64
	RandomState int64
}

// DefaultDefaults returns the documented package-level UMAP defaults
// (umap.Default*), used when a caller has no configuration-sourced
// overrides to supply.
func DefaultDefaults() Defaults {
	return Defaults{
		Neighbors:   umap.DefaultNeighbors,
		MinDist:     umap.DefaultMinDist,
		Spread:      umap.DefaultSpread,
		RandomState: umap.DefaultRandomState,
	}
}

// Dispatcher routes reduce/create_matrix/health operations. It holds no
// mutable state: every call allocates its own matrices fresh.
type Dispatcher struct {
	codec    Codec
	defaults Defaults
}

// NewDispatcher builds a Dispatcher using the supplied Codec for
// serializing/deserializing fitted models, and the supplied Defaults for
// UMAP parameters a request omits.
func NewDispatcher(codec Codec, defaults Defaults) *Dispatcher {
	return &Dispatcher{codec: codec, defaults: defaults}
}

// Reduce validates req, adapts its parameters, and routes to the umap
// learning or transform engine (or fails per spec for any other method).
func (d *Dispatcher) Reduce(ctx context.Context, req ReduceRequest) (ReduceResponse, error) {
	start := time.Now()

	if len(req.Vectors) == 0 {
		return ReduceResponse{}, newError(EmptyInput, "vectors must not be empty")
	}
	if err := numerics.ValidateBatch(req.Vectors); err != nil {
		return ReduceResponse{}, newError(ShapeInvalid, "%s", err)
	}

	targetDims := req.TargetDimensions
	if targetDims == 0 {
		targetDims = defaultTargetDimensions
	}
	if targetDims != 2 && targetDims != 3 {
		return ReduceResponse{}, newError(ShapeInvalid, "target_dimensions must be 2 or 3, got %d", targetDims)
	}

	switch req.Method {
	case MethodUmapLearning:
		return d.reduceLearning(req, targetDims, start)
	case MethodUmapTransform:
		return d.reduceTransform(req, targetDims, start)
	case MethodLinearTransform:
		return ReduceResponse{}, newError(DisabledMethod, "linear_transformation is disabled")
	default:
		return ReduceResponse{}, newError(UnknownMethod, "unrecognized method: %q", req.Method)
	}
}

func (d *Dispatcher) reduceLearning(req ReduceRequest, targetDims int, start time.Time) (ReduceResponse, error) {
	n := len(req.Vectors)
	if n < 2 {
		return ReduceResponse{}, newError(NotEnoughSamples, "umap_learning requires at least 2 samples, got %d", n)
	}
	if !d.codec.Available() {
		return ReduceResponse{}, newError(SerializationUnavailable, "model serialization is unavailable")
	}

	params := umap.Params{
		NNeighbors:  req.NNeighbors,
		MinDist:     req.MinDist,
		Spread:      req.Spread,
		RandomState: req.RandomState,
	}
	if params.MinDist == 0 {
		params.MinDist = d.defaults.MinDist
	}
	if params.Spread == 0 {
		params.Spread = d.defaults.Spread
	}
	if params.RandomState == 0 {
		params.RandomState = d.defaults.RandomState
	}

	var warnings []string
	if params.NNeighbors <= 0 {
		params.NNeighbors = d.defaults.Neighbors
	}
	if params.NNeighbors >= n {
		params.Clamp(n)
		warnings = append(warnings, "n_neighbors clamped to fit sample count")
	}
	if err := params.Validate(); err != nil {
		return ReduceResponse{}, newError(ShapeInvalid, "%s", err)
	}

	x := numerics.ToDense(req.Vectors)
	model, err := umap.Fit(x, params, targetDims, defaultLearningIters)
	if err != nil {
		return ReduceResponse{}, newError(InternalError, "fitting manifold: %s", err)
	}

	_, inputDim := x.Dims()
	ridgeModel, err := ridge.Fit(x, model.Embedding(), RidgeAlpha)
	var transformation [][]float64
	if err != nil {
		transformation = numerics.ToSlices(truncatedIdentity(inputDim, targetDims))
	} else {
		transformation = numerics.ToSlices(ridgeModel.Weights)
	}

	modelBytes, err := d.codec.Encode(model.Snapshot())
	if err != nil {
		return ReduceResponse{}, newError(SerializationUnavailable, "encoding fitted model: %s", err)
	}

	resp := ReduceResponse{
		Coordinates:       numerics.ToSlices(model.Embedding()),
		Method:            req.Method,
		ProcessingTimeMs:  elapsedMs(start),
		InputDimensions:   inputDim,
		OutputDimensions:  targetDims,
		NSamples:          n,
		TransformationMat: transformation,
		UmapParameters:    toUmapParamsDTO(model.Params()),
		FittedUmapModel:   bytesToInts(modelBytes),
		ModelMetadata: &ModelMetadata{
			TrainSamples:    n,
			InputDim:        inputDim,
			OutputDim:       targetDims,
			SerializedBytes: len(modelBytes),
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
			LibraryVersion:  LibraryVersion,
		},
		IsIncremental: false,
		Warnings:      warnings,
	}
	return resp, nil
}

func (d *Dispatcher) reduceTransform(req ReduceRequest, targetDims int, start time.Time) (ReduceResponse, error) {
	if len(req.FittedUmapModel) == 0 {
		return ReduceResponse{}, newError(ShapeInvalid, "fitted_umap_model is required for umap_transform")
	}
	if !d.codec.Available() {
		return ReduceResponse{}, newError(SerializationUnavailable, "model serialization is unavailable")
	}

	var snapshot umap.Snapshot
	if err := d.codec.Decode(intsToBytes(req.FittedUmapModel), &snapshot); err != nil {
		if rerr, ok := err.(*Error); ok && rerr.Kind == SerializationUnavailable {
			return ReduceResponse{}, newError(SerializationUnavailable, "decoding fitted model: %s", err)
		}
		return ReduceResponse{}, newError(InternalError, "decoding fitted model: %s", err)
	}
	model, err := umap.FromSnapshot(snapshot)
	if err != nil {
		return ReduceResponse{}, newError(InternalError, "restoring fitted model: %s", err)
	}

	n := len(req.Vectors)
	x := numerics.ToDense(req.Vectors)
	coords, err := model.Transform(x, defaultTransformIters)
	if err != nil {
		return ReduceResponse{}, newError(InternalError, "transforming batch: %s", err)
	}

	_, inputDim := x.Dims()
	_, outputDim := coords.Dims()
	return ReduceResponse{
		Coordinates:      numerics.ToSlices(coords),
		Method:           req.Method,
		ProcessingTimeMs: elapsedMs(start),
		InputDimensions:  inputDim,
		OutputDimensions: outputDim,
		NSamples:         n,
		IsIncremental:    true,
	}, nil
}

// CreateMatrix builds the named 4x4 homogeneous transform.
func (d *Dispatcher) CreateMatrix(req MatrixRequest) (MatrixResponse, error) {
	var t numerics.Transform
	switch req.MatrixType {
	case "identity":
		// zero-value Transform is the identity
	case "translation":
		t.Translate = req.Translation
	case "rotation":
		if req.RotationAxis == ([3]float64{}) {
			return MatrixResponse{}, newError(ShapeInvalid, "rotation requires a non-zero rotation_axis")
		}
		t.RotateAxis = req.RotationAxis
		t.RotateAngle = req.RotationAngle
	case "scale":
		t.Scale = req.ScaleFactors
	default:
		return MatrixResponse{}, newError(UnknownMethod, "unrecognized matrix_type: %q", req.MatrixType)
	}

	m := numerics.CreateMatrix(t)
	return MatrixResponse{
		Matrix:     numerics.ToSlices(m),
		MatrixType: req.MatrixType,
		Parameters: req,
	}, nil
}

// Health reports library availability and the service version. The UMAP
// and ridge (gonum) backends are hard dependencies of this binary, so
// their availability is always true; only the msgpack codec is probed,
// since it can legitimately fail to link or fail a self-test at startup.
func (d *Dispatcher) Health() HealthResponse {
	return HealthResponse{
		Status:                 "healthy",
		UmapAvailable:          true,
		SklearnAvailable:       true,
		SerializationAvailable: d.codec.Available(),
		Version:                LibraryVersion,
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// truncatedIdentity returns the rows x cols matrix with 1s on the leading
// diagonal and 0s elsewhere, the documented fallback when ridge.Fit
// fails during learning.
func truncatedIdentity(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// bytesToInts converts a byte sequence into the []int wire
// representation required because encoding/json marshals []byte as a
// base64 string, not as a JSON array of integers.
func bytesToInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

// intsToBytes is the inverse of bytesToInts.
func intsToBytes(ints []int) []byte {
	out := make([]byte, len(ints))
	for i, v := range ints {
		out[i] = byte(v)
	}
	return out
}
