package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/rackplan/internal/sample"
	"github.com/matzehuels/rackplan/pkg/buildinfo"
	"github.com/matzehuels/rackplan/pkg/errors"
	"github.com/matzehuels/rackplan/pkg/layout"
	"github.com/matzehuels/rackplan/pkg/render"
)

// =============================================================================
// Request / Response Types
// =============================================================================

type layoutRequest struct {
	Panels []layout.Spec `json:"panels"`
}

// layoutResponse is the result plus, on request, the validated panels and
// rafter grid.
type layoutResponse struct {
	layout.Result
	Panels  []layout.Panel `json:"panels,omitempty"`
	Rafters []float64      `json:"rafters,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

// handleLayout computes a layout for the panels in the request body.
// With ?detailed=true the response also carries panels and rafters.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput,
			"Request body must be valid JSON.")
		return
	}

	ctx, err := s.calc.CalculateDetailed(req.Panels)
	if err != nil {
		writeError(w, statusForError(err), errors.GetCode(err), errors.UserMessage(err))
		return
	}

	resp := layoutResponse{Result: ctx.Result}
	if r.URL.Query().Get("detailed") == "true" {
		resp.Panels = ctx.Panels
		resp.Rafters = ctx.Rafters
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleConfig reports the effective settings.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleDebugChart renders the sample dataset as an interactive scatter
// chart under the server's settings.
func (s *Server) handleDebugChart(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.calc.CalculateDetailed(sample.Panels())
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.GetCode(err), errors.UserMessage(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteChart(ctx, w); err != nil {
		s.logger.Error("debug chart failed", "error", err)
	}
}

// =============================================================================
// Helpers
// =============================================================================

// statusForError maps engine errors to HTTP statuses: client input problems
// are 422s, everything unrecognized is a 500.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case "", errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errors.Code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}
