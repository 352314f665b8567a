package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/auth"
	"github.com/zemedic/zemedic-be/internal/models"
	"github.com/zemedic/zemedic-be/internal/services"
)

// UserHandler handles HTTP requests for registration and profile reads.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Email            string      `json:"email"`
	Password         string      `json:"password"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Role             models.Role `json:"role"`
	MedicalLicenseID string      `json:"medical_license_id"`
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apierr.RespondError(w, fmt.Errorf("%w: invalid request body", apierr.ErrValidation))
		return
	}

	user, err := h.service.Create(r.Context(), services.CreateUserInput{
		Email:            payload.Email,
		Password:         payload.Password,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Role:             payload.Role,
		MedicalLicenseID: payload.MedicalLicenseID,
	})
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		apierr.RespondError(w, err)
		return
	}

	// The password hash is excluded from serialization at the model level.
	apierr.RespondJSON(w, http.StatusOK, user)
}

// Me returns the currently authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		apierr.RespondError(w, apierr.ErrInvalidToken)
		return
	}
	apierr.RespondJSON(w, http.StatusOK, user)
}
