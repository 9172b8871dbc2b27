// Package server wires reduceapi.Dispatcher to a gin.Engine: request
// routing, correlation ids, structured logging, and JSON error mapping.
// Grounded on 7blacky7-ollama-reverse's server/routes.go for engine
// setup and handler shape; the teacher itself is a CLI with no
// transport layer of its own.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cosmograph/reduce/reduceapi"
)

// Server holds the dispatcher and logger a gin.Engine is built around.
type Server struct {
	dispatcher *reduceapi.Dispatcher
	log        zerolog.Logger
}

// New builds a Server around dispatcher, logging through log.
func New(dispatcher *reduceapi.Dispatcher, log zerolog.Logger) *Server {
	return &Server{dispatcher: dispatcher, log: log}
}

// Router builds the gin.Engine exposing the documented endpoint set.
// CORS middleware is deliberately not wired; spec.md lists it out of
// scope.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.log), recoverJSON(s.log))

	r.GET("/health", s.healthHandler)
	r.GET("/", s.rootHandler)
	r.POST("/reduce", s.reduceHandler)
	r.POST("/create-matrix", s.createMatrixHandler)

	return r
}

// Serve listens on addr and blocks until the process receives
// SIGINT/SIGTERM, at which point it shuts the HTTP server down with a
// bounded grace period. Mirrors 7blacky7-ollama-reverse's
// signal.Notify-based shutdown, adapted from a training-run scheduler teardown to an HTTP
// server teardown.
func (s *Server) Serve(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-signals:
		s.log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
