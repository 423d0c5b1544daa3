// Package server exposes the simulation engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 256 << 10

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server serves simulation requests.
type Server struct {
	Engine       *calculation.SimulationEngine
	Logger       calculation.Logger
	MaxBodyBytes int

	base context.Context // cancelled when ListenAndServe stops
}

// New creates a server around engine. A nil logger is replaced with a no-op one.
func New(engine *calculation.SimulationEngine, logger calculation.Logger, maxBodyBytes int) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{Engine: engine, Logger: logger, MaxBodyBytes: maxBodyBytes, base: context.Background()}
}

func (s *Server) baseContext() context.Context {
	if s.base == nil {
		return context.Background()
	}
	return s.base
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "lifeplan",
		MaxRequestBodySize: s.MaxBodyBytes,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
	}

	s.base = ctx

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(addr) }()
	s.Logger.Infof("listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// Handler routes a request.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	defer func() {
		s.Logger.Infof("%s %s %d %s", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start))
	}()

	path := string(ctx.Path())
	switch path {
	case "/healthz":
		if s.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	case "/v1/defaults":
		if s.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, domain.DefaultScenario())
		}
	case "/v1/simulate":
		if s.allow(ctx, fasthttp.MethodPost) {
			s.handleSimulate(ctx)
		}
	case "/v1/compare":
		if s.allow(ctx, fasthttp.MethodPost) {
			s.handleCompare(ctx)
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}
}

func (s *Server) allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func (s *Server) body(ctx *fasthttp.RequestCtx) ([]byte, bool) {
	body := ctx.PostBody()
	if len(body) > s.MaxBodyBytes {
		writeError(ctx, fasthttp.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", s.MaxBodyBytes))
		return nil, false
	}
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Request body is required")
		return nil, false
	}
	return body, true
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	body, ok := s.body(ctx)
	if !ok {
		return
	}

	var scenario domain.Scenario
	if err := json.Unmarshal(body, &scenario); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.Engine.RunScenario(s.baseContext(), &scenario)
	if err != nil {
		s.writeRunError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	body, ok := s.body(ctx)
	if !ok {
		return
	}

	var cfg domain.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(cfg.Scenarios) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one scenario is required")
		return
	}

	cmp, err := s.Engine.RunScenarios(s.baseContext(), &cfg)
	if err != nil {
		s.writeRunError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, cmp)
}

func (s *Server) writeRunError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, domain.ErrInvalidConfiguration) {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.Logger.Errorf("simulation failed: %v", err)
	writeError(ctx, fasthttp.StatusInternalServerError, "Simulation failed")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding response failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
