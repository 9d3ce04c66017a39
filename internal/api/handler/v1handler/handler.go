// Package v1handler implements the v1 HTTP API of the VAT checker.
package v1handler

import (
	"context"
	"net/http"
	"vatcheck/internal/checker"
	"vatcheck/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Checker checker.Checker
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler backed by deps.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns a router with the v1 endpoints, to be mounted under /v1.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/check", h.GetCheckQuery)
	r.Get("/check/{vat}", h.GetCheck)
	r.Post("/check", h.PostCheck)

	return r
}

// writeJSON sends the encoder's buffer with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// writeError sends {"error": msg} with the given status.
func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	writeJSON(ctx, w, status, &e)
}
