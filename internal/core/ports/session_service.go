package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// LoginInput carries the credentials submitted on the login screen.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned after a successful password grant: the token to
// present on subsequent calls and the role-specific destination.
type LoginResult struct {
	Token    string
	Redirect string
	Session  domain.Session
}

// SessionService owns the authentication flow and the lifecycle of the
// shared session.
type SessionService interface {
	// Login performs a single password-grant attempt against the auth
	// upstream. No retry, no backoff; a failed attempt is terminal until
	// resubmitted.
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// Current returns the active session or domain.ErrSessionNotFound.
	Current(ctx context.Context) (*domain.Session, error)
	// Invalidate clears the session when it still holds staleToken.
	// Called on the first unauthorized upstream response.
	Invalidate(ctx context.Context, staleToken string) error
}
