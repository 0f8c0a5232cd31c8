// Package upstream holds the HTTP clients for the external services the
// gateway fronts: auth, employee accounts, product catalog, and discounts.
// Each is an independent base URL; the only shared state between them is the
// bearer token the caller passes in.
package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bleubean/pos-admin-gateway/internal/api/metrics"
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// errorBody covers the envelopes the upstreams use for failures. The
// FastAPI-style services reply with {"detail": ...}, others with
// {"message": ...}.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// normalizeBaseURL trims trailing slashes and defaults the scheme so a bare
// host:port from configuration still works.
func normalizeBaseURL(raw string) string {
	base := strings.TrimRight(raw, "/")
	if base != "" && !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return base
}

// do executes the request, records the outcome metric, and maps the
// response status. Unauthorized and forbidden responses become
// domain.ErrUnauthorized so the caller can evict the session; other non-2xx
// responses become *domain.UpstreamError with the body's message; transport
// failures become domain.ErrUpstreamUnavailable. On success the body is
// returned for the caller to decode.
func do(client *http.Client, service string, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "error").Inc()
		return nil, 0, fmt.Errorf("%w: %s: %v", domain.ErrUpstreamUnavailable, service, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(service, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s: read body: %v", domain.ErrUpstreamUnavailable, service, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, resp.StatusCode, fmt.Errorf("%s: %w", service, domain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &domain.UpstreamError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
		}
	}

	return body, resp.StatusCode, nil
}

// extractMessage pulls the server-provided message out of an error body.
// Returns "" when the body is absent or not the expected envelope, in which
// case a generic templated message is surfaced instead.
func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Detail != "" {
		return eb.Detail
	}
	return eb.Message
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

func setBearer(req *http.Request, bearer string) {
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
}

// datePart truncates an ISO timestamp to its yyyy-mm-dd prefix.
func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
