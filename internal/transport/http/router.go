// Package httptransport exposes the service's internal HTTP surface: task
// submission, health and metrics. Domain logic stays in the engines; this
// layer only decodes, validates and delegates.
package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mottak/internal/task"
	"mottak/pkg/requestcontext"
	"mottak/pkg/sentinel"
)

// Submitter accepts tasks for asynchronous processing.
type Submitter interface {
	Submit(t task.Task) error
}

// Handler wires the internal endpoints.
type Handler struct {
	tasks  Submitter
	logger *slog.Logger
}

// NewHandler builds the HTTP handler layer.
func NewHandler(tasks Submitter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{tasks: tasks, logger: logger}
}

// NewRouter mounts all endpoints. The metrics endpoint serves the given
// registry so tests can use an isolated one.
func NewRouter(h *Handler, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Post("/internal/task", h.handleSubmitTask)
	r.Get("/internal/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// requestID stamps every request with a correlation id so log lines from
// the handler and anything it calls can be tied together.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type submitTaskRequest struct {
	Type     string            `json:"type"`
	Payload  json.RawMessage   `json:"payload"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type submitTaskResponse struct {
	ID string `json:"id"`
}

func (h *Handler) handleSubmitTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "task type is required")
		return
	}

	t := task.Task{
		ID:       uuid.NewString(),
		Type:     req.Type,
		Payload:  req.Payload,
		Metadata: req.Metadata,
	}
	if err := h.tasks.Submit(t); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			writeError(w, http.StatusBadRequest, "unknown task type")
		case errors.Is(err, sentinel.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "task inbox full, retry later")
		default:
			h.logger.ErrorContext(ctx, "task submission failed",
				slog.String("task_type", req.Type),
				slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.logger.InfoContext(ctx, "task accepted",
		slog.String("request_id", requestcontext.RequestID(ctx)),
		slog.String("task_id", t.ID),
		slog.String("task_type", t.Type))
	writeJSON(w, http.StatusAccepted, submitTaskResponse{ID: t.ID})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
