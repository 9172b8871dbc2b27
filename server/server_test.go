package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/cosmograph/reduce/reduceapi"
)

func testServer() *Server {
	log := zerolog.Nop()
	return New(reduceapi.NewDispatcher(reduceapi.NewMsgpackCodec(), reduceapi.DefaultDefaults()), log)
}

func TestHealthEndpoint(t *testing.T) {
	assert := assert.New(t)

	router := testServer().Router()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	var body reduceapi.HealthResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal("healthy", body.Status)
}

func TestRootEndpoint(t *testing.T) {
	assert := assert.New(t)

	router := testServer().Router()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	var body rootResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal("reduce", body.Service)
	assert.NotEmpty(body.Version)
	assert.Contains(body.Endpoints, "/reduce")
	assert.Contains(body.Endpoints, "/create-matrix")
	assert.Contains(body.Endpoints, "/health")
}

func TestReduceEndpoint(t *testing.T) {
	assert := assert.New(t)

	router := testServer().Router()
	body, _ := json.Marshal(reduceapi.ReduceRequest{
		Vectors: [][]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
		},
		Method:           reduceapi.MethodUmapLearning,
		TargetDimensions: 2,
		RandomState:      1,
	})
	req := httptest.NewRequest(http.MethodPost, "/reduce", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.NotEmpty(rec.Header().Get("X-Request-Id"))

	var resp reduceapi.ReduceResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(resp.Coordinates, 3)
}

func TestReduceEndpointEmptyVectors(t *testing.T) {
	assert := assert.New(t)

	router := testServer().Router()
	body, _ := json.Marshal(reduceapi.ReduceRequest{Method: reduceapi.MethodUmapLearning})
	req := httptest.NewRequest(http.MethodPost, "/reduce", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(http.StatusBadRequest, rec.Code)
}

func TestCreateMatrixEndpoint(t *testing.T) {
	assert := assert.New(t)

	router := testServer().Router()
	body, _ := json.Marshal(reduceapi.MatrixRequest{MatrixType: "identity"})
	req := httptest.NewRequest(http.MethodPost, "/create-matrix", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)

	var resp reduceapi.MatrixResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(resp.Matrix, 4)
}
