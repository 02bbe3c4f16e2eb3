// Package api exposes HTTP handlers for the fittracker calculator.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/fittracker/internal/auth"
	"example.com/fittracker/internal/domain"
	"example.com/fittracker/internal/observability"
)

// Option configures optional behaviour for the Handler.
type Option func(*Handler)

// WithLogger overrides the logger used to report rejected records.
func WithLogger(logger *log.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithoutAuth skips claim and scope checks. Pair it with a router that has no auth middleware.
func WithoutAuth() Option {
	return func(h *Handler) {
		h.requireAuth = false
	}
}

// Handler turns single workout records into summaries over HTTP.
type Handler struct {
	logger      *log.Logger
	requireAuth bool
}

// NewHandler builds a Handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		logger:      log.New(log.Writer(), "[api] ", log.LstdFlags|log.Lshortfile),
		requireAuth: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts/summary", h.summarize)
	mux.HandleFunc("/v1/workouts/types", h.workoutTypes)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.authorize(w, r, auth.ScopeWorkoutsSummarize) {
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	workout, err := domain.Dispatch(req.Type, req.Parameters)
	if err != nil {
		observability.RecordDispatchFailure(err)
		h.logger.Printf("rejected record (type=%q, parameters=%d): %v", req.Type, len(req.Parameters), err)
		writeError(w, http.StatusUnprocessableEntity, observability.FailureReason(err), err.Error())
		return
	}

	summary := workout.Summarize()
	observability.RecordSummary(summary.Kind, time.Now().UTC())

	writeJSON(w, http.StatusOK, SummaryView{
		SummaryID:     uuid.NewString(),
		Type:          req.Type,
		Kind:          string(summary.Kind),
		DurationHours: summary.Duration,
		DistanceKm:    summary.Distance,
		MeanSpeedKmh:  summary.Speed,
		CaloriesKcal:  summary.Calories,
		Message:       summary.Message(),
	})
}

func (h *Handler) workoutTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.authorize(w, r, auth.ScopeWorkoutsRead, auth.ScopeWorkoutsSummarize) {
		return
	}

	variants := domain.Variants()
	items := make([]WorkoutTypeView, 0, len(variants))
	for _, v := range variants {
		items = append(items, WorkoutTypeView{
			Type:       v.Code,
			Kind:       string(v.Kind),
			Arity:      v.Arity(),
			Parameters: v.Parameters,
		})
	}
	writeJSON(w, http.StatusOK, WorkoutTypesResponse{Items: items})
}

// authorize writes the error response itself and reports whether the request may proceed.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, scopes ...string) bool {
	if !h.requireAuth {
		return true
	}
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasAnyScope(scopes...) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+strings.Join(scopes, " or ")+" required")
		return false
	}
	return true
}

// SummarizeRequest is the payload for POST /v1/workouts/summary.
type SummarizeRequest struct {
	Type       string    `json:"type"`
	Parameters []float64 `json:"parameters"`
}

// Validate ensures request correctness. Arity is left to the dispatcher.
func (r SummarizeRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if r.Parameters == nil {
		return errors.New("parameters are required")
	}
	return nil
}

// SummaryView describes the response body for a computed workout.
type SummaryView struct {
	SummaryID     string  `json:"summary_id"`
	Type          string  `json:"type"`
	Kind          string  `json:"kind"`
	DurationHours float64 `json:"duration_hours"`
	DistanceKm    float64 `json:"distance_km"`
	MeanSpeedKmh  float64 `json:"mean_speed_kmh"`
	CaloriesKcal  float64 `json:"calories_kcal"`
	Message       string  `json:"message"`
}

// WorkoutTypeView exposes one dispatch table entry.
type WorkoutTypeView struct {
	Type       string   `json:"type"`
	Kind       string   `json:"kind"`
	Arity      int      `json:"arity"`
	Parameters []string `json:"parameters"`
}

// WorkoutTypesResponse lists supported workout types.
type WorkoutTypesResponse struct {
	Items []WorkoutTypeView `json:"items"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

// writeJSON encodes before touching the response so encoding failures can still change the status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
