package server

import (
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/planwise/retirement-engine/internal/calculation"
	"github.com/planwise/retirement-engine/internal/config"
)

// Server exposes the planning engine over HTTP.
//
//	POST /v1/plan   compute a plan for the profile in the request body
//	GET  /healthz   liveness probe
type Server struct {
	engine *calculation.PlanningEngine
	parser *config.InputParser
	opts   calculation.PlanOptions
	logger calculation.Logger
	httpd  *fasthttp.Server
}

// New creates a server around an engine. opts supplies the default simulation
// parameters; requests may override trials and seed per call. A nil logger
// disables logging.
func New(engine *calculation.PlanningEngine, opts calculation.PlanOptions, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{
		engine: engine,
		parser: config.NewInputParser(),
		opts:   opts,
		logger: logger,
	}
	s.httpd = &fasthttp.Server{
		Handler:      s.Handle,
		Name:         "planwise",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving HTTP on addr until Shutdown or a listener error.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("http server listening on %s", addr)
	return s.httpd.ListenAndServe(addr)
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.httpd.Shutdown()
}

// Handle routes a single request. Exported so tests can drive the server
// without a listener.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/plan":
		s.handlePlan(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handlePlan(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// JSON parses as YAML, so the profile parser handles both encodings and
	// applies the same defaults and range checks as file input.
	profile, err := s.parser.ParseYAML(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	opts, err := s.requestOptions(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.ComputePlan(ctx, profile, opts)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debugf("plan %s served", result.Metadata.CalculationID)
	writeJSON(ctx, fasthttp.StatusOK, result)
}

// requestOptions merges the per-request trials and seed overrides into the
// server defaults.
func (s *Server) requestOptions(ctx *fasthttp.RequestCtx) (calculation.PlanOptions, error) {
	opts := s.opts
	args := ctx.QueryArgs()
	if args.Has("trials") {
		v, err := args.GetUint("trials")
		if err != nil || v <= 0 {
			return opts, fmt.Errorf("invalid trials parameter")
		}
		opts.Trials = v
	}
	if args.Has("seed") {
		v, err := strconv.ParseInt(string(args.Peek("seed")), 10, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid seed parameter")
		}
		opts.Seed = v
	}
	return opts, nil
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json; charset=utf-8")
		ctx.SetBodyString(`{"status":500,"message":"failed to encode response"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Status: status, Message: message})
}
