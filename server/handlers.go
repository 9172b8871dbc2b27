package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmograph/reduce/reduceapi"
)

// healthHandler serves GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.dispatcher.Health())
}

// rootResponse is the documented GET / envelope: service name, version,
// and the endpoint listing.
type rootResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// rootHandler serves GET /, echoing the service name, version, and
// endpoint listing in place of 7blacky7-ollama-reverse's bare "Ollama is
// running" liveness string.
func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, rootResponse{
		Service:   "reduce",
		Version:   reduceapi.LibraryVersion,
		Endpoints: []string{"/health", "/", "/reduce", "/create-matrix"},
	})
}

// reduceHandler serves POST /reduce.
func (s *Server) reduceHandler(c *gin.Context) {
	var req reduceapi.ReduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.dispatcher.Reduce(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createMatrixHandler serves POST /create-matrix.
func (s *Server) createMatrixHandler(c *gin.Context) {
	var req reduceapi.MatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.dispatcher.CreateMatrix(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// writeError maps a reduceapi.Error to its documented HTTP status and
// JSON body; any other error (should not happen once validation in
// reduceapi is exhaustive) falls back to 500.
func writeError(c *gin.Context, err error) {
	if rerr, ok := err.(*reduceapi.Error); ok {
		c.AbortWithStatusJSON(rerr.HTTPStatus(), gin.H{"error": rerr.Message, "kind": int(rerr.Kind)})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
