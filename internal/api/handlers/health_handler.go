package handlers

import (
	"net/http"

	"github.com/zemedic/zemedic-be/internal/apierr"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health answers liveness probes. It touches no collaborators on purpose.
func Health(w http.ResponseWriter, r *http.Request) {
	apierr.RespondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Service: "ZemedicAI"})
}
