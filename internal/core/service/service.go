// Package service implements the gateway use cases: the session lifecycle
// and the three record managers. The record managers share one
// fetch/invalidate path instead of repeating it per screen: every upstream
// call reads the stored session, and any unauthorized response evicts it
// through the single Invalidate entry point.
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// sessionAccess is the plumbing every record manager shares: resolving the
// acting session and evicting it when an upstream call comes back
// unauthorized.
type sessionAccess struct {
	sessions ports.SessionService
	log      zerolog.Logger
}

func (a sessionAccess) session(ctx context.Context) (*domain.Session, error) {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// mapUnauthorized evicts the session on an unauthorized upstream response.
// The eviction is keyed on the stale token, so only the first 401 clears it
// and a session created by a re-login in the meantime survives.
func (a sessionAccess) mapUnauthorized(ctx context.Context, staleToken string, err error) error {
	if isUnauthorized(err) {
		if invErr := a.sessions.Invalidate(ctx, staleToken); invErr != nil {
			a.log.Warn().Err(invErr).Msg("session invalidation failed")
		}
		return domain.ErrUnauthorized
	}
	return err
}
