package comments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crucial707/blog-api/cmd/cli/config"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/spf13/cobra"
)

func setup(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("BLOG_API_URL", srv.URL)
	t.Setenv("BLOG_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "blogctl", SilenceUsage: true, SilenceErrors: true}
	InitComments(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListComments_TableOutput(t *testing.T) {
	author := 2
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/3" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]models.Comment{
			{ID: 1, Content: "great-read", BlogID: 3, AuthorID: &author},
			{ID: 2, Content: "orphaned", BlogID: 3},
		})
	})

	out, err := run(t, "comments", "list", "3")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "great-read") || !strings.Contains(out, "orphaned") {
		t.Fatalf("expected comments in output, got: %s", out)
	}
}

func TestAddComment(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/comments" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization: %q", r.Header.Get("Authorization"))
		}
		var in struct {
			BlogID  int    `json:"blog_id"`
			Content string `json:"content"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		if in.BlogID != 3 || in.Content != "nice" {
			t.Errorf("payload: %+v", in)
		}
		_ = json.NewEncoder(w).Encode(models.Comment{ID: 9, Content: "nice", BlogID: 3})
	})
	config.SaveToken("tok")

	out, err := run(t, "comments", "add", "--blog-id", "3", "--content", "nice")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Comment 9 added to blog 3") {
		t.Errorf("output: %s", out)
	}
}

func TestDeleteComment(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/comments/9" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	config.SaveToken("tok")

	out, err := run(t, "comments", "delete", "9")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Comment 9 deleted") {
		t.Errorf("output: %s", out)
	}
}

func TestDeleteComment_NotLoggedIn(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a token")
	})

	_, err := run(t, "comments", "delete", "9")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Errorf("expected not logged in error, got %v", err)
	}
}
