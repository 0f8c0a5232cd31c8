package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// SessionStore persists the single gateway session. It is shared
// process-wide: every outgoing upstream request reads the stored token, and
// any one of them may invalidate it.
type SessionStore interface {
	// Save replaces the current session.
	Save(ctx context.Context, session domain.Session) error
	// Get returns the current session or domain.ErrSessionNotFound.
	Get(ctx context.Context) (*domain.Session, error)
	// Clear removes the session unconditionally (logout).
	Clear(ctx context.Context) error
	// ClearIfToken removes the session only while it still holds staleToken
	// and reports whether this call performed the removal. It is the single
	// invalidation entry point for unauthorized upstream responses: the
	// first 401 wins, concurrent ones no-op.
	ClearIfToken(ctx context.Context, staleToken string) (bool, error)
}
