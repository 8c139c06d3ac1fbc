// Package phishtank implements a minimal client for the PhishTank
// check-URL API. One call submits a URL and returns a typed Result
// describing whether the URL is known to the database and, if so,
// whether it is a confirmed phish. The client is stateless between
// calls; retries, caching and rate-limit pacing are left to callers.
package phishtank

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public check endpoint.
const DefaultBaseURL = "https://checkurl.phishtank.com/checkurl/"

// defaultTimeout bounds the outbound call when the caller sets neither
// Client.Timeout nor a context deadline.
const defaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read. The check
// response is a small flat document; anything larger is not ours.
const maxBodyBytes = 1 << 20

// statusBandwidthExceeded is the nonstandard status PhishTank returns
// when the per-key request quota is exhausted.
const statusBandwidthExceeded = 509

// Client calls the PhishTank check endpoint. Fields are read-only after
// construction, so a single Client is safe for concurrent use.
type Client struct {
	// BaseURL overrides the check endpoint. Empty means DefaultBaseURL.
	BaseURL string
	// APIKey is the optional application key sent with each request.
	APIKey string
	// UserAgent is an optional custom UA.
	UserAgent string
	// HTTPClient is an optional transport override, mainly for tests.
	HTTPClient *http.Client
	// Timeout bounds each call. Zero means defaultTimeout; callers that
	// want only their own context deadline can set a negative value.
	Timeout time.Duration
	// Logger receives debug events. The zero Logger is disabled.
	Logger zerolog.Logger
}

// New returns a Client for the public endpoint. apiKey may be empty;
// unauthenticated requests are allowed at a lower quota.
func New(apiKey string) *Client {
	return &Client{BaseURL: DefaultBaseURL, APIKey: apiKey}
}

// Check submits rawURL to the service and returns its verdict.
//
// Failures are one of three kinds: *TransportError when the service was
// not reached (connect, DNS, timeout, cancellation), *RemoteServiceError
// when it answered with a non-success status or a service-level error
// body, and *ParseError when a success body does not match the expected
// schema. An unreachable service is never reported as "not in database".
func (c *Client) Check(ctx context.Context, rawURL string) (*Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("check: %w", ErrEmptyURL)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	form := url.Values{}
	// The service expects the URL transport-encoded so that query
	// strings inside it survive form submission.
	form.Set("url", base64.StdEncoding.EncodeToString([]byte(rawURL)))
	form.Set("format", "json")
	if c.APIKey != "" {
		form.Set("app_key", c.APIKey)
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	c.Logger.Debug().Str("url", rawURL).Str("endpoint", base).Msg("checking url")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	c.Logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("service responded")

	if resp.StatusCode == statusBandwidthExceeded {
		return nil, &RemoteServiceError{Status: resp.StatusCode, Message: bodyPrefix(body), Err: ErrRateLimited}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteServiceError{Status: resp.StatusCode, Message: bodyPrefix(body)}
	}

	result, err := Parse(body)
	if err != nil {
		// A service-level refusal arrives inside a 2xx body; stamp the
		// HTTP status on it so callers see where it came from.
		var remote *RemoteServiceError
		if errors.As(err, &remote) && remote.Status == 0 {
			remote.Status = resp.StatusCode
		}
		return nil, err
	}
	result.Quota = quotaFromHeader(resp.Header)
	return result, nil
}

// bodyPrefix returns a short printable excerpt of an error body for
// inclusion in RemoteServiceError messages.
func bodyPrefix(body []byte) string {
	const max = 512
	b := bytes.TrimSpace(body)
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}

// quotaFromHeader reads the service's rate-limit headers. Returns nil
// when the service sent none, e.g. on unauthenticated requests.
func quotaFromHeader(h http.Header) *Quota {
	limit := h.Get("X-Request-Limit")
	count := h.Get("X-Request-Count")
	interval := h.Get("X-Request-Limit-Interval")
	if limit == "" && count == "" && interval == "" {
		return nil
	}
	q := &Quota{}
	if n, err := strconv.Atoi(limit); err == nil {
		q.Limit = n
	}
	if n, err := strconv.Atoi(count); err == nil {
		q.Count = n
	}
	// The interval header reads like "300 Seconds".
	interval = strings.TrimSpace(strings.TrimSuffix(interval, " Seconds"))
	if n, err := strconv.Atoi(interval); err == nil {
		q.Interval = time.Duration(n) * time.Second
	}
	return q
}
