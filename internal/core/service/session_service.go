package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/api/metrics"
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
	"github.com/bleubean/pos-admin-gateway/internal/core/token"
)

type sessionService struct {
	auth  ports.AuthGateway
	store ports.SessionStore
	log   zerolog.Logger
}

// NewSessionService returns a SessionService backed by the auth upstream
// and the shared session store.
func NewSessionService(auth ports.AuthGateway, store ports.SessionStore, log zerolog.Logger) ports.SessionService {
	return &sessionService{auth: auth, store: store, log: log}
}

// Login performs one password-grant attempt, decodes the returned token,
// and persists the session when the role routes somewhere. Unrecognized
// roles and malformed tokens leave no session behind.
func (s *sessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.auth.PasswordGrant(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		s.log.Info().Err(err).Str("username", in.Username).Msg("login rejected")
		return nil, err
	}

	claims, err := token.Decode(accessToken)
	if err != nil {
		// The upstream handed us something that is not a three-segment
		// token with a readable payload. Treat it as fatal and make sure
		// no stale session survives.
		s.clearQuietly(ctx, "malformed_token")
		metrics.LoginsTotal.WithLabelValues("malformed_token").Inc()
		s.log.Error().Err(err).Str("username", in.Username).Msg("received invalid token from auth upstream")
		return nil, err
	}

	redirect, err := domain.RouteForRole(claims.Role)
	if err != nil {
		s.clearQuietly(ctx, "role_unrecognized")
		metrics.LoginsTotal.WithLabelValues("role_unrecognized").Inc()
		s.log.Warn().Str("username", in.Username).Str("role", string(claims.Role)).Msg("login role not recognized")
		return nil, fmt.Errorf("%w: %q", domain.ErrRoleUnrecognized, claims.Role)
	}

	session := domain.Session{
		Token:    accessToken,
		Username: in.Username,
		Role:     claims.Role,
		UserID:   claims.UserID,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", in.Username).Str("role", string(claims.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: accessToken, Redirect: redirect, Session: session}, nil
}

// Logout clears the session.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	metrics.SessionInvalidationsTotal.WithLabelValues("logout").Inc()
	return nil
}

// Current returns the active session.
func (s *sessionService) Current(ctx context.Context) (*domain.Session, error) {
	return s.store.Get(ctx)
}

// Invalidate evicts the session when it still holds staleToken. The first
// unauthorized response wins; later callers find the token already gone and
// do nothing.
func (s *sessionService) Invalidate(ctx context.Context, staleToken string) error {
	cleared, err := s.store.ClearIfToken(ctx, staleToken)
	if err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	if cleared {
		metrics.SessionInvalidationsTotal.WithLabelValues("unauthorized").Inc()
		s.log.Warn().Msg("session evicted after unauthorized upstream response")
	}
	return nil
}

func (s *sessionService) clearQuietly(ctx context.Context, reason string) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session")
		return
	}
	metrics.SessionInvalidationsTotal.WithLabelValues(reason).Inc()
}
