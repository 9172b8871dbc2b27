package reduceapi

import (
	"fmt"
	"net/http"
)

// Kind classifies a dispatcher failure so server can pick an HTTP status
// without re-deriving it from the error message.
type Kind int

const (
	// InternalError wraps an unexpected failure from the umap layer:
	// fitting or transform returned an error, or a supplied model with a
	// recognized format tag could not be decoded or restored. A ridge
	// failure does not produce it (learning falls back to an identity
	// matrix), and panics are turned into a 500 body by the server.
	InternalError Kind = iota
	// EmptyInput is returned when a request carries no vectors.
	EmptyInput
	// ShapeInvalid is returned for a non-rectangular or non-2D batch, or
	// malformed matrix parameters.
	ShapeInvalid
	// NotEnoughSamples is returned when umap_learning is requested with
	// fewer than 2 training vectors.
	NotEnoughSamples
	// UnknownMethod is returned for an unrecognized reduce method.
	UnknownMethod
	// DisabledMethod is returned for the legacy linear_transformation tag.
	DisabledMethod
	// LibraryUnavailable is returned when a required numerical library
	// did not link into the running binary.
	LibraryUnavailable
	// SerializationUnavailable is returned when the msgpack codec is
	// unavailable, a fitted model cannot be encoded, or a supplied model
	// carries an unrecognized format tag.
	SerializationUnavailable
)

// Error is the error type every reduceapi operation returns on failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error's Kind to the status code server should
// respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case EmptyInput, ShapeInvalid, NotEnoughSamples, UnknownMethod, DisabledMethod:
		return http.StatusBadRequest
	case LibraryUnavailable, SerializationUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
