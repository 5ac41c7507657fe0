// Package v1handler implements the v1 HTTP API of the reputation engine.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"emailrep/internal/reputation"
	"emailrep/pkg/logger"
	"emailrep/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Evaluator reputation.Evaluator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/check", h.Check)
	r.Post("/batch", h.Batch)
	r.Get("/domains/{name}", h.GetDomain)
	r.Get("/emails/{address}", h.GetEmail)
}

// Envelope wraps every v1 response body.
type Envelope struct {
	Status       int     `json:"status"`
	ResponseTime float64 `json:"response_time"`
	Data         any     `json:"data,omitempty"`
	Error        string  `json:"error,omitempty"`
	Code         string  `json:"code,omitempty"`
}

// ErrorBody is the client-facing description of an error.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// statusByKind maps error kinds to HTTP status codes and default messages.
var statusByKind = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError converts err into an ErrorResponse. Errors without a known kind,
// and ErrInternal, become 500 with a generic message so internals never leak.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	internal := &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorBody{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}

	kind := serrors.KindOf(err)
	if kind == nil {
		// a bare kind sentinel
		var k serrors.Kind
		if errors.As(err, &k) {
			kind = k
		}
	}
	mapped, ok := statusByKind[kind]
	if kind == nil || !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return internal
	}

	message := mapped.message
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}
	logger.Debug(ctx, "request failed", zap.String("kind", kind.Error()), zap.Error(err))

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func responseTime(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, start time.Time, status int, data any) {
	writeJSON(r.Context(), w, status, Envelope{
		Status:       status,
		ResponseTime: responseTime(start),
		Data:         data,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, Envelope{
		Status:       res.StatusCode,
		ResponseTime: responseTime(start),
		Error:        res.Response.Message,
		Code:         res.Response.Code,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

const maxBodyBytes = 64 << 10
