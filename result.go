package phishtank

import "time"

// Result is the verdict for one checked URL. A Result is built once
// from the response body and not mutated afterwards.
type Result struct {
	// URL is the checked URL as echoed by the service.
	URL string
	// InDatabase reports whether the service has any record of the URL.
	InDatabase bool
	// PhishID identifies the database entry. Zero when not in database.
	PhishID int64
	// DetailPage links to the entry's detail page, when known.
	DetailPage string
	// Verified reports whether the entry has been through verification.
	Verified bool
	// VerifiedAt is the verification time, zero when unverified.
	VerifiedAt time.Time
	// SubmittedAt is the submission time, zero when the service omits it.
	SubmittedAt time.Time
	// Quota is the rate-limit snapshot from the response headers, nil
	// when the service sent none.
	Quota *Quota

	valid    bool
	validSet bool
}

// Valid reports whether the URL is a confirmed phish. ok is false when
// the URL is not in the database or the service sent no validity flag;
// in that case the verdict carries no signal either way and must not be
// read as "confirmed legitimate".
func (r *Result) Valid() (valid, ok bool) {
	if !r.InDatabase || !r.validSet {
		return false, false
	}
	return r.valid, true
}

// Phish reports whether the URL is positively confirmed as a phish.
// Unknown and unverified URLs report false.
func (r *Result) Phish() bool {
	valid, ok := r.Valid()
	return ok && valid
}

// Quota is the per-key request allowance the service reports alongside
// each authenticated response.
type Quota struct {
	// Limit is the number of requests allowed per Interval.
	Limit int
	// Count is the number of requests already made in this Interval.
	Count int
	// Interval is the window the limit applies to.
	Interval time.Duration
}

// Remaining returns how many requests are left in the current window.
func (q *Quota) Remaining() int {
	if q.Limit < q.Count {
		return 0
	}
	return q.Limit - q.Count
}
