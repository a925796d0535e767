package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/blogs":        "/blogs",
		"/blogs/12":     "/blogs/{id}",
		"/comments/7":   "/comments/{id}",
		"/blogs/new":    "/blogs/new",
		"/comments/3/x": "/comments/{id}/x",
	}
	for in, want := range cases {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIncAuthEvent(t *testing.T) {
	before := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("login_failed"))
	IncAuthEvent("login_failed")
	after := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("login_failed"))
	if after != before+1 {
		t.Errorf("counter: got %v, want %v", after, before+1)
	}
}

func TestSetContentRows(t *testing.T) {
	SetContentRows("blogs", 42)
	if got := testutil.ToFloat64(ContentRows.WithLabelValues("blogs")); got != 42 {
		t.Errorf("gauge: got %v, want 42", got)
	}
}
