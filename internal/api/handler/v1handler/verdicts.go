package v1handler

import (
	"net/http"
	"strings"
	"time"

	"emailrep/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// CheckRequest is the body of POST /v1/check.
type CheckRequest struct {
	Email string `json:"email"`
}

// BatchRequest is the body of POST /v1/batch.
type BatchRequest struct {
	Emails []string `json:"emails"`
}

// BatchResult reports how many of the submitted addresses were queued.
type BatchResult struct {
	Accepted int `json:"accepted"`
	Total    int `json:"total"`
}

// Check evaluates one address and responds with its verdict.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CheckRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, start, err)

		return
	}
	if strings.TrimSpace(req.Email) == "" {
		h.writeError(w, r, start, serrors.With(serrors.ErrBadRequest, "No email provided"))

		return
	}

	v, err := h.deps.Evaluator.Evaluate(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, r, start, err)

		return
	}

	h.writeData(w, r, start, http.StatusOK, v)
}

// Batch queues background evaluations. Addresses already queued recently are
// not queued again, so accepted may be lower than total.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req BatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, start, err)

		return
	}

	accepted, err := h.deps.Evaluator.Enqueue(r.Context(), req.Emails)
	if err != nil {
		h.writeError(w, r, start, err)

		return
	}

	h.writeData(w, r, start, http.StatusAccepted, BatchResult{Accepted: accepted, Total: len(req.Emails)})
}

// GetDomain returns the stored verdict of a domain.
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "name")))
	if name == "" {
		h.writeError(w, r, start, serrors.With(serrors.ErrBadRequest, "domain name is required"))

		return
	}

	d, err := h.deps.Evaluator.Domain(r.Context(), name)
	if err != nil {
		h.writeError(w, r, start, err)

		return
	}

	h.writeData(w, r, start, http.StatusOK, d)
}

// GetEmail returns the stored verdict of an address.
func (h *Handler) GetEmail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	v, err := h.deps.Evaluator.Email(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, r, start, err)

		return
	}

	h.writeData(w, r, start, http.StatusOK, v)
}
