package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/misk/misk-api/internal/pkg/jwt"
	"github.com/misk/misk-api/internal/pkg/response"
)

type contextKey string

const ClaimsKey contextKey = "admin_claims"

// Authenticator resolves a bearer token into session claims.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// Auth returns middleware that requires a valid admin session.
// The token is read from the Authorization header, or from the "token"
// query parameter for websocket upgrades.
func Auth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			claims, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrExpiredToken):
					response.Unauthorized(w, "Token expired")
				case errors.Is(err, jwt.ErrRevokedToken):
					response.Unauthorized(w, "Session has been revoked")
				case errors.Is(err, jwt.ErrInvalidToken):
					response.Unauthorized(w, "Invalid token")
				default:
					response.InternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if t := r.URL.Query().Get("token"); t != "" && isUpgrade(r) {
			return t, true
		}
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func isUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

// GetClaims extracts session claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
