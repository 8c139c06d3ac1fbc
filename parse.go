package phishtank

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeLayout is the timestamp format the service emits, RFC 3339 with a
// literal numeric zone.
const timeLayout = "2006-01-02T15:04:05+00:00"

// envelope is the wire shape of a check response. Unrecognized fields
// are ignored so that additions on the service side do not break us.
type envelope struct {
	ErrorText string      `json:"errortext"`
	Results   *wireResult `json:"results"`
}

type wireResult struct {
	URL         string     `json:"url"`
	InDatabase  *looseBool `json:"in_database"`
	PhishID     int64      `json:"phish_id"`
	DetailPage  string     `json:"phish_detail_page"`
	Verified    looseBool  `json:"verified"`
	VerifiedAt  string     `json:"verified_at"`
	Valid       *looseBool `json:"valid"`
	SubmittedAt string     `json:"submitted_at"`
}

// looseBool decodes the boolean encodings the service is known to emit:
// JSON booleans, 0/1, and y/n or true/false strings.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch s := strings.ToLower(strings.Trim(string(data), `"`)); s {
	case "true", "y", "yes", "1":
		*b = true
		return nil
	case "false", "n", "no", "0", "null":
		*b = false
		return nil
	default:
		return fmt.Errorf("not a boolean: %s", string(data))
	}
}

// Parse decodes the raw body of a check response into a Result. Parse
// is pure: feeding it the same body twice yields equal Results.
//
// A body carrying the service's errortext envelope yields a
// *RemoteServiceError, since the service spoke but declined the
// request. A body missing the database-membership field, or otherwise
// outside the expected schema, yields a *ParseError; there are no
// partially populated results.
func Parse(body []byte) (*Result, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Reason: "malformed response body", Err: err}
	}
	if env.ErrorText != "" {
		return nil, &RemoteServiceError{Message: env.ErrorText}
	}
	if env.Results == nil {
		return nil, &ParseError{Reason: "missing results object"}
	}
	w := env.Results
	if w.InDatabase == nil {
		return nil, &ParseError{Reason: "missing in_database field"}
	}

	r := &Result{
		URL:        w.URL,
		InDatabase: bool(*w.InDatabase),
		PhishID:    w.PhishID,
		DetailPage: w.DetailPage,
		Verified:   bool(w.Verified),
	}
	if w.Valid != nil {
		r.valid = bool(*w.Valid)
		r.validSet = true
	}
	var err error
	if r.VerifiedAt, err = parseTime(w.VerifiedAt); err != nil {
		return nil, &ParseError{Reason: "bad verified_at timestamp", Err: err}
	}
	if r.SubmittedAt, err = parseTime(w.SubmittedAt); err != nil {
		return nil, &ParseError{Reason: "bad submitted_at timestamp", Err: err}
	}
	return r, nil
}

func parseTime(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}
