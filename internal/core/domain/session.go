package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMalformedToken = errors.New("malformed access token")
var ErrSessionNotFound = errors.New("no active session")
var ErrUnauthorized = errors.New("unauthorized")

// Claims holds the fields decoded from the access token payload.
//
// The token is issued and verified by the auth upstream; the gateway decodes
// it without checking the signature, so these values are routing and display
// hints only. Authorization is enforced by the upstreams on every proxied
// request.
type Claims struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
	UserID  string `json:"user_id"`
}

// Session is the single shared mutable state of the gateway: the bearer
// token for the upstream services plus the identity it was issued to.
// It lives in the session store until logout or the first unauthorized
// upstream response.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	UserID   string `json:"user_id,omitempty"`
}

// DisplayName prefers the username typed at login over the token subject
// for the profile header.
func (s Session) DisplayName() string {
	if s.Username != "" {
		return s.Username
	}
	return "Current User"
}
