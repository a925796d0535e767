package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := map[string]string{
		`{"error":"Blog not found"}`: "Blog not found",
		`{"error":"validation failed","fields":{"title":"required","content":"required"}}`: "validation failed; content: required; title: required",
		"plain text failure\n": "plain text failure",
	}
	for body, want := range cases {
		if got := errorMessage([]byte(body)); got != want {
			t.Errorf("errorMessage(%q) = %q, want %q", body, got, want)
		}
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"validation failed","fields":{"password":"required"}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	err := c.JSON(context.Background(), http.MethodPost, "/register", map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d", apiErr.Status)
	}
	if apiErr.Error() != "API error (422): validation failed; password: required" {
		t.Errorf("Error(): %q", apiErr.Error())
	}
}

func TestClient_SendsTokenAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer abc" {
			t.Errorf("Authorization: %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type: %q", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"id":4}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Token: "abc", HTTP: srv.Client()}
	var out struct {
		ID int `json:"id"`
	}
	if err := c.JSON(context.Background(), http.MethodPost, "/blogs/new", map[string]string{"title": "t"}, &out); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if out.ID != 4 {
		t.Errorf("decoded id: got %d, want 4", out.ID)
	}
}
