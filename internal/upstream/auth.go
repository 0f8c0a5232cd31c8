package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

const authService = "auth"

// AuthClient performs the password grant against the auth upstream.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// NewAuthClient builds a client for the given auth base URL.
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: newHTTPClient(timeout),
	}
}

// PasswordGrant posts grant_type=password credentials to /auth/token and
// returns the access token. Exactly one attempt is made per call.
func (c *AuthClient) PasswordGrant(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("auth: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, _, err := do(c.httpClient, authService, req)
	if err != nil {
		// The token endpoint is the one place 401 means bad credentials
		// rather than a stale session.
		if isUnauthorized(err) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: auth: decode token response: %v", domain.ErrUpstreamUnavailable, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: auth: no access token in response", domain.ErrUpstreamUnavailable)
	}

	return tr.AccessToken, nil
}
