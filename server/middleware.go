package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDKey = "request_id"

// requestID attaches a fresh correlation id to the gin context and
// echoes it back on the response so a caller can tie a request to its
// server-side log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// requestLogger logs one structured line per request at INFO (or WARN
// for 4xx, ERROR for 5xx), mirroring the teacher's "log what happened,
// then move on" discipline with zerolog in place of stdlib log.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		}

		evt.
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recoverJSON converts a panic from the numerics/umap/ridge layers into
// a 500 InternalError JSON body instead of letting gin's default
// recovery middleware write a bare text response. Validation in
// reduceapi is expected to catch dimension mismatches before they reach
// gonum, so this is a defensive backstop, not the primary error path.
func recoverJSON(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(requestIDKey)).
					Interface("panic", r).
					Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
