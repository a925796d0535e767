package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/metrics"
	"github.com/crucial707/blog-api/internal/models"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// UserResolver resolves a bearer token to the acting user.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// UserHandlerFunc is a handler that runs on behalf of an authenticated user.
type UserHandlerFunc func(w http.ResponseWriter, r *http.Request, user *models.User)

// RequireUser adapts a UserHandlerFunc into an http.HandlerFunc. The bearer token
// is resolved before the handler runs; missing or invalid tokens get a 401.
func RequireUser(resolver UserResolver) func(UserHandlerFunc) http.HandlerFunc {
	return func(next UserHandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := BearerToken(r)
			if !ok {
				unauthorized(w, "Not authenticated")
				return
			}

			user, err := resolver.Resolve(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					metrics.IncAuthEvent("token_rejected")
					unauthorized(w, "Could not validate credentials")
					return
				}
				slog.Error("resolve user",
					"request_id", chimw.GetReqID(r.Context()),
					"error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
				return
			}

			next(w, r, user)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
