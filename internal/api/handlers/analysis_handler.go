package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/zemedic/zemedic-be/internal/analyzer"
	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/auth"
	"github.com/zemedic/zemedic-be/internal/metrics"
	"github.com/zemedic/zemedic-be/internal/services"
)

// AnalysisHandler handles image analysis requests and history reads.
type AnalysisHandler struct {
	service   services.AnalysisServiceProvider
	collector *metrics.Collector
}

// NewAnalysisHandler creates a new AnalysisHandler. collector may be nil.
func NewAnalysisHandler(service services.AnalysisServiceProvider, collector *metrics.Collector) *AnalysisHandler {
	return &AnalysisHandler{service: service, collector: collector}
}

// AnalyzePayload defines the structure for analysis requests. ImageData is
// accepted for interface compatibility with a real inference backend and
// discarded; the analyzer keys off the image type alone.
type AnalyzePayload struct {
	ImageType string `json:"image_type"`
	ImageData string `json:"image_data"`
}

// Analyze runs the analyzer and stores the result for the caller.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		apierr.RespondError(w, apierr.ErrInvalidToken)
		return
	}

	var payload AnalyzePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apierr.RespondError(w, fmt.Errorf("%w: invalid request body", apierr.ErrValidation))
		return
	}
	if payload.ImageType == "" {
		apierr.RespondError(w, fmt.Errorf("%w: image_type is required", apierr.ErrValidation))
		return
	}

	outcome := analyzer.Analyze(payload.ImageType)
	result, err := h.service.Record(r.Context(), user.ID, payload.ImageType, outcome.Findings, outcome.ConfidenceScores)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to store analysis result")
		apierr.RespondError(w, err)
		return
	}
	if h.collector != nil {
		h.collector.RecordAnalysis(payload.ImageType)
	}

	apierr.RespondJSON(w, http.StatusOK, result)
}

// List returns the caller's analysis history, newest first.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		apierr.RespondError(w, apierr.ErrInvalidToken)
		return
	}

	results, err := h.service.ListForUser(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list analyses")
		apierr.RespondError(w, err)
		return
	}

	apierr.RespondJSON(w, http.StatusOK, results)
}

// Get returns one analysis owned by the caller.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		apierr.RespondError(w, apierr.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.service.Get(r.Context(), id, user.ID)
	if err != nil {
		apierr.RespondError(w, err)
		return
	}

	apierr.RespondJSON(w, http.StatusOK, result)
}
