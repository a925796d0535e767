package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/blog-api/internal/account"
	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/blog"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

// requestWithChiURLParams returns a request with chi route context and URL params set.
func requestWithChiURLParams(method, path string, body []byte, params map[string]string) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	return r
}

type fixture struct {
	mock     sqlmock.Sqlmock
	hasher   *auth.Hasher
	tokens   *auth.TokenService
	auth     *AuthHandler
	blogs    *BlogHandler
	comments *CommentHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hasher := auth.NewHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService(auth.TokenConfig{Secret: []byte("test-secret"), TTL: time.Hour})
	blogs := blog.NewService(db)
	return &fixture{
		mock:     mock,
		hasher:   hasher,
		tokens:   tokens,
		auth:     &AuthHandler{Accounts: account.NewService(db, hasher, tokens)},
		blogs:    &BlogHandler{Blogs: blogs},
		comments: &CommentHandler{Blogs: blogs},
	}
}

func (f *fixture) done(t *testing.T) {
	t.Helper()
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
