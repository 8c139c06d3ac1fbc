package phishtank

import (
	"errors"
	"fmt"
)

// ErrEmptyURL is returned by Check before any network I/O when the
// submitted URL is empty or blank.
var ErrEmptyURL = errors.New("url must not be empty")

// ErrRateLimited is wrapped by the RemoteServiceError returned when the
// service reports the request quota exhausted (HTTP 509). Detect it
// with errors.Is.
var ErrRateLimited = errors.New("request limit exceeded")

// TransportError reports that the service was never reached: connection
// refused, DNS failure, timeout, or cancellation. It is never retried
// here; callers decide whether to retry or treat the URL as unknown.
type TransportError struct {
	// URL is the URL whose check failed.
	URL string
	// Err is the underlying transport failure.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("phishtank: checking %q: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteServiceError reports that the service answered but refused the
// request, either with a non-success HTTP status or with a 2xx body
// carrying a service-level error message.
type RemoteServiceError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the service's error text or a prefix of the raw body.
	Message string
	// Err carries a sentinel such as ErrRateLimited, when one applies.
	Err error
}

func (e *RemoteServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("phishtank: service error: status %d", e.Status)
	}
	return fmt.Sprintf("phishtank: service error: status %d: %s", e.Status, e.Message)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// ParseError reports a response body that does not match the expected
// schema.
type ParseError struct {
	// Reason names the field or shape that failed.
	Reason string
	// Err is the underlying decode failure, when there is one.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("phishtank: parse response: %s", e.Reason)
	}
	return fmt.Sprintf("phishtank: parse response: %s: %v", e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
