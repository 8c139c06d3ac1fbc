package phishtank

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParse_Idempotent(t *testing.T) {
	body := []byte(`{"results":{"url":"http://phish.example","in_database":true,"phish_id":7,"valid":true,"verified":true,"verified_at":"2026-08-01T09:30:00+00:00"}}`)
	first, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two parses of one body differ: %+v vs %+v", first, second)
	}
}

func TestParse_MissingMembershipFlag(t *testing.T) {
	for _, body := range []string{
		`{"results":{"url":"http://example.com"}}`,
		`{"results":{}}`,
		`{}`,
	} {
		_, err := Parse([]byte(body))
		var parse *ParseError
		if !errors.As(err, &parse) {
			t.Fatalf("body %s: expected ParseError, got %v", body, err)
		}
	}
}

func TestParse_StringBooleans(t *testing.T) {
	res, err := Parse([]byte(`{"results":{"url":"http://phish.example","in_database":"y","valid":"true","verified":"1"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.InDatabase || !res.Verified {
		t.Fatalf("string booleans not decoded: %+v", res)
	}
	if valid, ok := res.Valid(); !ok || !valid {
		t.Fatalf("expected valid=true from string flag, got valid=%v ok=%v", valid, ok)
	}
}

func TestParse_UninterpretableBoolean(t *testing.T) {
	_, err := Parse([]byte(`{"results":{"in_database":"maybe"}}`))
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParse_Timestamps(t *testing.T) {
	res, err := Parse([]byte(`{"results":{"in_database":true,"verified_at":"2026-08-01T09:30:00+00:00","submitted_at":"2026-07-31T18:12:45+00:00"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC); !res.VerifiedAt.Equal(want) {
		t.Fatalf("unexpected verified_at: %v", res.VerifiedAt)
	}
	if want := time.Date(2026, 7, 31, 18, 12, 45, 0, time.UTC); !res.SubmittedAt.Equal(want) {
		t.Fatalf("unexpected submitted_at: %v", res.SubmittedAt)
	}
}

func TestParse_BadTimestamp(t *testing.T) {
	_, err := Parse([]byte(`{"results":{"in_database":true,"verified_at":"yesterday"}}`))
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParse_OptionalFieldsAbsent(t *testing.T) {
	res, err := Parse([]byte(`{"results":{"url":"http://example.com","in_database":false}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PhishID != 0 || res.DetailPage != "" || res.Verified {
		t.Fatalf("expected zero optional fields: %+v", res)
	}
	if !res.VerifiedAt.IsZero() || !res.SubmittedAt.IsZero() {
		t.Fatalf("expected zero timestamps: %+v", res)
	}
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	res, err := Parse([]byte(`{"results":{"in_database":true,"valid":true,"brand":"examplebank","target_sector":"finance"},"meta":{"served_by":"node-3"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid, ok := res.Valid(); !ok || !valid {
		t.Fatalf("known fields lost next to unknown ones: valid=%v ok=%v", valid, ok)
	}
}

func TestParse_Errortext(t *testing.T) {
	_, err := Parse([]byte(`{"errortext":"Invalid api key"}`))
	var remote *RemoteServiceError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteServiceError, got %v", err)
	}
	if remote.Message != "Invalid api key" {
		t.Fatalf("unexpected message: %q", remote.Message)
	}
}
