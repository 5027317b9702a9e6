// Package server exposes the suggestion provider as a read-only JSON
// endpoint.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/reel/internal/suggest"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Provider is the suggestion provider surface served over HTTP.
type Provider interface {
	Query(ctx context.Context, uri string, args []string) (*suggest.Cursor, error)
	Insert(uri string, values map[string]any) (string, error)
	Update(uri string, values map[string]any, selection string, selectionArgs []string) (int, error)
	Delete(uri string, selection string, selectionArgs []string) (int, error)
	Type(uri string) string
}

// QueryResponse is the body of a successful query.
type QueryResponse struct {
	Status  string   `json:"status"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Count   int      `json:"count"`
	Type    string   `json:"type,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	provider   Provider
}

// Option configures a Server.
type Option func(*gin.Engine)

// WithRequestLog writes gin's request log lines to w.
func WithRequestLog(w io.Writer) Option {
	return func(engine *gin.Engine) {
		engine.Use(gin.LoggerWithWriter(w))
	}
}

// New creates a server for provider listening on address. Options run
// before the routes are registered.
func New(address string, provider Provider, opts ...Option) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	for _, opt := range opts {
		opt(engine)
	}

	s := &Server{
		engine:   engine,
		provider: provider,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       30 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}
	s.routes()
	return s
}

// Engine returns the gin engine for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/:path", s.query)
	s.engine.POST("/:path", s.insert)
	s.engine.PUT("/:path", s.update)
	s.engine.PATCH("/:path", s.update)
	s.engine.DELETE("/:path", s.delete)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
