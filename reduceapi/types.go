package reduceapi

import "github.com/cosmograph/reduce/umap"

// Method names accepted by ReduceRequest.Method.
const (
	MethodUmapLearning       = "umap_learning"
	MethodUmapTransform      = "umap_transform"
	MethodLinearTransform    = "linear_transformation"
	defaultTargetDimensions  = 3
	defaultLearningIters     = 200
	defaultTransformIters    = 60
)

// ReduceRequest is the decoded body of POST /reduce.
type ReduceRequest struct {
	Vectors          [][]float64 `json:"vectors"`
	Method           string      `json:"method"`
	TargetDimensions int         `json:"target_dimensions"`
	NNeighbors       int         `json:"n_neighbors"`
	MinDist          float64     `json:"min_dist"`
	Spread           float64     `json:"spread"`
	RandomState      int64       `json:"random_state"`
	FittedUmapModel  []int       `json:"fitted_umap_model"`
}

// ReduceResponse is the encoded body of a successful POST /reduce.
type ReduceResponse struct {
	Coordinates       [][]float64    `json:"coordinates"`
	Method            string         `json:"method"`
	ProcessingTimeMs  float64        `json:"processing_time_ms"`
	InputDimensions   int            `json:"input_dimensions"`
	OutputDimensions  int            `json:"output_dimensions"`
	NSamples          int            `json:"n_samples"`
	TransformationMat [][]float64    `json:"transformation_matrix,omitempty"`
	UmapParameters    *UmapParamsDTO `json:"umap_parameters,omitempty"`
	FittedUmapModel   []int          `json:"fitted_umap_model,omitempty"`
	ModelMetadata     *ModelMetadata `json:"model_metadata,omitempty"`
	IsIncremental     bool           `json:"is_incremental"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// UmapParamsDTO is the wire representation of umap.Params.
type UmapParamsDTO struct {
	NNeighbors  int     `json:"n_neighbors"`
	MinDist     float64 `json:"min_dist"`
	Spread      float64 `json:"spread"`
	RandomState int64   `json:"random_state"`
	Metric      string  `json:"metric"`
}

func toUmapParamsDTO(p umap.Params) *UmapParamsDTO {
	return &UmapParamsDTO{
		NNeighbors:  p.NNeighbors,
		MinDist:     p.MinDist,
		Spread:      p.Spread,
		RandomState: p.RandomState,
		Metric:      umap.Metric,
	}
}

// ModelMetadata records training size, dimensions, and provenance for a
// fitted model, attached to learning responses.
type ModelMetadata struct {
	TrainSamples    int    `json:"train_samples"`
	InputDim        int    `json:"input_dim"`
	OutputDim       int    `json:"output_dim"`
	SerializedBytes int    `json:"serialized_bytes"`
	CreatedAt       string `json:"created_at"`
	LibraryVersion  string `json:"library_version"`
}

// MatrixRequest is the decoded body of POST /create-matrix.
type MatrixRequest struct {
	MatrixType    string     `json:"matrix_type"`
	Translation   [3]float64 `json:"translation"`
	RotationAxis  [3]float64 `json:"rotation_axis"`
	RotationAngle float64    `json:"rotation_angle"`
	ScaleFactors  [3]float64 `json:"scale_factors"`
}

// MatrixResponse is the encoded body of a successful POST /create-matrix.
type MatrixResponse struct {
	Matrix     [][]float64   `json:"matrix"`
	MatrixType string        `json:"matrix_type"`
	Parameters MatrixRequest `json:"parameters"`
}

// HealthResponse is the encoded body of GET /health.
type HealthResponse struct {
	Status                  string `json:"status"`
	UmapAvailable           bool   `json:"umap_available"`
	SklearnAvailable        bool   `json:"sklearn_available"`
	SerializationAvailable  bool   `json:"serialization_available"`
	Version                 string `json:"version"`
}
