// Package auth provides password hashing and bearer-token issuance and
// validation.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/models"
)

// DefaultTokenValidity is how long an issued token stays usable unless the
// service is configured otherwise.
const DefaultTokenValidity = 24 * time.Hour

// Claims defines the JWT claims structure. The subject is the user's email.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens. It holds no state
// beyond the signing secret; token validity is derived entirely from the
// signature and the embedded expiry.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService creates a TokenService signing with secret. A validity of
// zero or less falls back to DefaultTokenValidity.
func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenService{secret: secret, validity: validity, now: time.Now}
}

// Issue mints a signed token for the given subject email and role.
func (s *TokenService) Issue(email string, role models.Role) (string, error) {
	now := s.now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses tokenStr and checks its signature and expiry. Malformed,
// tampered and expired tokens all come back as ErrInvalidToken.
func (s *TokenService) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, apierr.ErrInvalidToken
	}
	return claims, nil
}
