// Package token decodes the access token issued by the auth upstream.
//
// The gateway never verifies the signature: the token is an opaque bearer
// credential validated by the upstreams themselves. Decoding here only
// recovers the display/routing claims from the payload segment.
package token

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// Decode extracts the claims from the payload segment of a three-segment
// token. Any structural problem (wrong segment count, undecodable payload)
// is domain.ErrMalformedToken: callers must treat it as fatal and clear the
// session.
func Decode(raw string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}

	out := domain.Claims{
		Subject: stringClaim(claims, "sub"),
		Role:    domain.Role(stringClaim(claims, "role")),
		UserID:  stringClaim(claims, "user_id"),
	}
	return out, nil
}

// stringClaim renders a claim value as a string. Identifiers arrive as JSON
// numbers from some issuers and as strings from others.
func stringClaim(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}
