package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/misk/misk-api/internal/pkg/jwt"
	"github.com/misk/misk-api/internal/pkg/password"
)

// Credentials are the single configured admin account.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Service issues and checks admin sessions
type Service struct {
	creds Credentials
	jwt   *jwt.Service
	store SessionStore
	now   func() time.Time
}

// NewService creates admin service. store may be nil, in which case
// logout only discards the token client-side.
func NewService(creds Credentials, jwtSvc *jwt.Service, store SessionStore) *Service {
	return &Service{creds: creds, jwt: jwtSvc, store: store, now: time.Now}
}

// Login checks credentials and signs a session token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*SessionResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.creds.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passOK := s.creds.PasswordHash != "" && password.Verify(req.Password, s.creds.PasswordHash)
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.jwt.GenerateSessionToken(s.creds.Username)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authenticate validates a bearer token and rejects revoked sessions.
func (s *Service) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return claims, nil
	}

	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session revocation: %w", err)
	}
	if revoked {
		return nil, jwt.ErrRevokedToken
	}
	return claims, nil
}

// Logout revokes the session until its natural expiry.
func (s *Service) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.store == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.store.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
