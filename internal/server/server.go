package server

import (
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/planfolio/projector/internal/calculation"
	"github.com/planfolio/projector/internal/domain"
	"github.com/planfolio/projector/internal/output"
)

// Server exposes the projection engine over HTTP. Each request gets its
// own engine anchored at the requested as-of year; the engine itself is
// stateless, so no synchronization is needed.
type Server struct {
	asOfYear int
	logger   calculation.Logger
}

// New creates a server. asOfYear 0 means the current calendar year.
func New(asOfYear int, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{asOfYear: asOfYear, logger: logger}
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler routes all requests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	case "/api/v1/projection":
		s.handleProjection(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// handleProjection accepts a JSON plan and responds with the chart
// payload. Malformed JSON is the only client error; a structurally
// valid plan with odd values degrades to zero series per the engine's
// contract rather than failing.
func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var plan domain.Plan
	if err := json.Unmarshal(ctx.PostBody(), &plan); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid plan body: "+err.Error())
		return
	}

	asOf := s.asOfYear
	if v := ctx.QueryArgs().GetUintOrZero("as_of_year"); v > 0 {
		asOf = v
	}
	engine := calculation.NewEngine(asOf)
	engine.SetLogger(s.logger)

	chart := output.BuildChartData(engine.BuildReport(&plan))
	body, err := json.Marshal(chart)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode projection: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("projection server listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
