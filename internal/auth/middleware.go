package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/models"
)

// UserLookup resolves a token subject to a stored user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type contextKey string

const userContextKey = contextKey("currentUser")

// CurrentUser returns the authenticated user stored in ctx by Middleware.
func CurrentUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

// Middleware protects routes with bearer-token authentication. The token is
// validated and its subject resolved against the user directory before the
// request proceeds; any failure short-circuits to a 401.
func Middleware(tokens *TokenService, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				apierr.RespondError(w, apierr.ErrInvalidToken)
				return
			}

			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				apierr.RespondError(w, apierr.ErrInvalidToken)
				return
			}

			// A token can outlive its subject only if user deletion is ever
			// added, but the lookup also pins the role to stored state rather
			// than trusting the claim alone.
			user, err := users.GetByEmail(r.Context(), claims.Subject)
			if err != nil {
				apierr.RespondError(w, apierr.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles gates a route to users whose role is in the allowed set.
// It must run after Middleware.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				apierr.RespondError(w, apierr.ErrInvalidToken)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			apierr.RespondError(w, fmt.Errorf("%w: role %q is not permitted", apierr.ErrForbidden, user.Role))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
