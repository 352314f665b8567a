package handlers

import (
	"net/http"
	"time"

	"github.com/zemedic/zemedic-be/internal/apierr"
)

// ModelHandler handles the model training trigger.
type ModelHandler struct{}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

// TrainResponse acknowledges a queued training run.
type TrainResponse struct {
	Status                  string    `json:"status"`
	Message                 string    `json:"message"`
	EstimatedCompletionTime time.Time `json:"estimated_completion_time"`
}

// Train acknowledges a training request. No job is actually queued; the
// response shape matches what a real training pipeline would return. Access
// is limited to doctors and admins by the router.
func (h *ModelHandler) Train(w http.ResponseWriter, r *http.Request) {
	apierr.RespondJSON(w, http.StatusOK, TrainResponse{
		Status:                  "training_initiated",
		Message:                 "Model training has been queued. You will be notified when complete.",
		EstimatedCompletionTime: time.Now().UTC().Add(2 * time.Hour),
	})
}
