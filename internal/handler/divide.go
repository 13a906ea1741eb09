package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/guarddiv/internal/domain"
)

// divideRequest is the body of POST /divide. Omitted operands take their
// defaults, matching the query form.
type divideRequest struct {
	Dividend *int64 `json:"dividend"`
	Divisor  *int64 `json:"divisor"`
}

// DivideQuery handles GET /divide?dividend=&divisor=.
// Both parameters are optional and default to 10 and 0.
func (s *Server) DivideQuery(w http.ResponseWriter, r *http.Request) {
	var params divideRequest
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "dividend", q, &params.Dividend); err != nil {
		writeJSON(w, http.StatusBadRequest, validationBody("invalid dividend: must be a 64-bit integer"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "divisor", q, &params.Divisor); err != nil {
		writeJSON(w, http.StatusBadRequest, validationBody("invalid divisor: must be a 64-bit integer"))
		return
	}

	s.divide(w, r, params.operands())
}

// DivideBody handles POST /divide with a JSON Operands body.
func (s *Server) DivideBody(w http.ResponseWriter, r *http.Request) {
	var body divideRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		case errors.Is(err, io.EOF):
			writeJSON(w, http.StatusBadRequest, validationBody("request body is required"))
		default:
			writeJSON(w, http.StatusBadRequest, validationBody("invalid request body: "+err.Error()))
		}
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, validationBody("invalid request body: unexpected data after JSON object"))
		return
	}

	s.divide(w, r, body.operands())
}

// divide runs the evaluation and writes the response. Clients sending
// Accept: text/plain get the raw transcript instead of the Outcome JSON.
func (s *Server) divide(w http.ResponseWriter, r *http.Request, ops domain.Operands) {
	var transcript bytes.Buffer
	outcome, err := s.divider.Evaluate(r.Context(), &transcript, ops)
	if err != nil {
		if errors.Is(err, domain.ErrOverflow) {
			writeJSON(w, http.StatusUnprocessableEntity, overflowBody())
			return
		}
		slog.ErrorContext(r.Context(), "divide failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	if acceptsPlainText(r.Header.Values("Accept")) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = transcript.WriteTo(w)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (b divideRequest) operands() domain.Operands {
	ops := domain.DefaultOperands()
	if b.Dividend != nil {
		ops.Dividend = *b.Dividend
	}
	if b.Divisor != nil {
		ops.Divisor = *b.Divisor
	}
	return ops
}

// acceptsPlainText reports whether any media range in the Accept headers
// names text/plain with a non-zero quality.
func acceptsPlainText(accept []string) bool {
	for _, header := range accept {
		for _, part := range strings.Split(header, ",") {
			mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err != nil || mediaType != "text/plain" {
				continue
			}
			if q, err := strconv.ParseFloat(params["q"], 64); err == nil && q == 0 {
				continue
			}
			return true
		}
	}
	return false
}
