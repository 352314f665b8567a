package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/auth"
	"github.com/zemedic/zemedic-be/internal/services"
)

// AuthHandler handles login and token issuance.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles OAuth2 password-style logins. Credentials arrive form-encoded
// under the username and password fields; the username is the account email.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apierr.RespondError(w, fmt.Errorf("%w: malformed form body", apierr.ErrValidation))
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Failed authentication attempt")
		apierr.RespondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to sign token")
		apierr.RespondError(w, err)
		return
	}

	apierr.RespondJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
