package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/models"
)

type stubResolver struct {
	user *models.User
	err  error
	got  string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.User, error) {
	s.got = token
	return s.user, s.err
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if c.header != "" {
			r.Header.Set("Authorization", c.header)
		}
		got, ok := BearerToken(r)
		if got != c.want || ok != c.ok {
			t.Errorf("BearerToken(%q) = %q, %v; want %q, %v", c.header, got, ok, c.want, c.ok)
		}
	}
}

func TestRequireUser_PassesUser(t *testing.T) {
	res := &stubResolver{user: &models.User{ID: 9, Username: "bob"}}
	var seen *models.User
	h := RequireUser(res)(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		seen = user
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("DELETE", "/blogs/1", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want 204", rr.Code)
	}
	if seen == nil || seen.Username != "bob" || res.got != "tok" {
		t.Errorf("handler saw user %+v, resolver saw token %q", seen, res.got)
	}
}

func TestRequireUser_Rejects(t *testing.T) {
	called := false
	next := func(w http.ResponseWriter, r *http.Request, user *models.User) { called = true }

	// Missing header.
	rr := httptest.NewRecorder()
	RequireUser(&stubResolver{})(next)(rr, httptest.NewRequest("POST", "/blogs/new", nil))
	if rr.Code != http.StatusUnauthorized || rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("missing token: status %d, WWW-Authenticate %q", rr.Code, rr.Header().Get("WWW-Authenticate"))
	}

	// Resolver says unauthenticated.
	req := httptest.NewRequest("POST", "/blogs/new", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr = httptest.NewRecorder()
	RequireUser(&stubResolver{err: auth.ErrUnauthenticated})(next)(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", rr.Code)
	}

	// Store failure.
	req = httptest.NewRequest("POST", "/blogs/new", nil)
	req.Header.Set("Authorization", "Bearer ok")
	rr = httptest.NewRecorder()
	RequireUser(&stubResolver{err: errors.New("db down")})(next)(rr, req)
	if rr.Code != http.StatusInternalServerError || strings.Contains(rr.Body.String(), "db down") {
		t.Errorf("store failure: status %d body %q", rr.Code, rr.Body.String())
	}

	if called {
		t.Error("handler must not run for rejected requests")
	}
}

func TestCORS_AllowAll(t *testing.T) {
	h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/blogs", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want *", got)
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}

func TestMaxBytes(t *testing.T) {
	h := MaxBytes(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/", strings.NewReader("0123456789")))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	for _, k := range []string{"X-Content-Type-Options", "Cache-Control", "Strict-Transport-Security"} {
		if rr.Header().Get(k) == "" {
			t.Errorf("missing header %s", k)
		}
	}
}

func TestObserve_CapturesStatus(t *testing.T) {
	h := Observe(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/blogs/3", nil))
	if rr.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want 418", rr.Code)
	}
}
