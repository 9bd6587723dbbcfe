package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindOf(t *testing.T) {
	t.Parallel()
	if got := KindOf(Validationf("name is required")); got != KindValidation {
		t.Fatalf("KindOf = %q, want %q", got, KindValidation)
	}
	wrapped := fmt.Errorf("generate seo: %w", Parsef("missing markers"))
	if got := KindOf(wrapped); got != KindParse {
		t.Fatalf("KindOf(wrapped) = %q, want %q", got, KindParse)
	}
	if got := KindOf(errors.New("plain")); got != KindUpstream {
		t.Fatalf("KindOf(plain) = %q, want %q", got, KindUpstream)
	}
}

func TestUpstreamRetryable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		err    *Error
		want   bool
	}{
		{"network", Upstream(0, errors.New("dial tcp"), "request failed"), true},
		{"throttled", Upstream(429, nil, "rate limited"), true},
		{"server_error", Upstream(503, nil, "unavailable"), true},
		{"bad_request", Upstream(400, nil, "invalid prompt"), false},
		{"unauthorized", Upstream(401, nil, "bad key"), false},
		{"not_upstream", Parsef("nope"), false},
	}
	for _, tc := range cases {
		if got := tc.err.Retryable(); got != tc.want {
			t.Fatalf("%s: Retryable() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := Upstream(500, cause, "openai status 500")
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
}
