// Package transport exposes the HTTP observability surface: liveness,
// readiness and a JSON status report fed by the orchestrator.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
	"go.uber.org/zap"
)

// StatusProvider supplies the merged pipeline snapshot.
type StatusProvider interface {
	Status(ctx context.Context) (model.StatusSnapshot, error)
}

// Scaler resizes the worker pool at runtime.
type Scaler interface {
	Scale(ctx context.Context, n int)
}

// Handler serves /healthz, /readyz and /status.
type Handler struct {
	status StatusProvider
	logger *zap.Logger
}

// NewHandler creates a Handler backed by the given provider.
func NewHandler(status StatusProvider, logger *zap.Logger) *Handler {
	return &Handler{status: status, logger: logger}
}

// Register attaches the handler's routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/readyz", h.Ready)
	mux.HandleFunc("/status", h.Status)
}

// RegisterScaler attaches POST /scale, resizing the pool to the workers
// query parameter.
func (h *Handler) RegisterScaler(mux *http.ServeMux, scaler Scaler) {
	mux.HandleFunc("/scale", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			h.writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "POST required"})
			return
		}
		n, err := strconv.Atoi(r.URL.Query().Get("workers"))
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "workers must be a non-negative integer"})
			return
		}
		scaler.Scale(r.Context(), n)
		h.logger.Info("worker pool resized", zap.Int("workers", n))
		h.writeJSON(w, http.StatusAccepted, map[string]any{"workers": n})
	})
}

// Health reports process liveness and whether the pipeline loop is running.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap, err := h.status.Status(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"loop_running": snap.LoopRunning,
	})
}

// Ready reports 200 once at least one worker is registered and responsive.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snap, err := h.status.Status(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !snap.Ready() {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ready": true})
}

// Status returns the full queue and worker snapshot.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	snap, err := h.status.Status(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	h.logger.Error("status lookup failed", zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]any{
		"status": "error",
		"error":  err.Error(),
		"at":     time.Now().UTC(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
