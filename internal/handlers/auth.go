package handlers

import (
	"errors"
	"net/http"

	"github.com/crucial707/blog-api/internal/account"
	"github.com/crucial707/blog-api/internal/metrics"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Accounts *account.Service
}

type credentials struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// ==========================
// Register (JSON body; returns a bearer token for the new user)
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if !decodeAndValidate(w, r, &input) {
		return
	}

	token, err := h.Accounts.Register(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			metrics.IncAuthEvent("register_conflict")
			JSONError(w, "Username already taken", http.StatusBadRequest)
			return
		}
		if errors.Is(err, account.ErrPasswordTooLong) {
			JSONValidationError(w, "validation failed", map[string]string{"password": "must be at most 72 bytes"}, http.StatusUnprocessableEntity)
			return
		}
		internalError(w, r, "register", err)
		return
	}

	metrics.IncAuthEvent("register")
	JSON(w, models.BearerToken(token))
}

// ==========================
// Login (form body: username, password)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		JSONError(w, "invalid form body", http.StatusBadRequest)
		return
	}
	input := credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if !validateStruct(w, &input) {
		return
	}

	token, err := h.Accounts.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			metrics.IncAuthEvent("login_failed")
			w.Header().Set("WWW-Authenticate", "Bearer")
			JSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		internalError(w, r, "login", err)
		return
	}

	metrics.IncAuthEvent("login")
	JSON(w, models.BearerToken(token))
}

// ==========================
// Delete Account (?password= step-up check, then cascade delete)
// ==========================
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request, user *models.User) {
	password := r.URL.Query().Get("password")
	if password == "" {
		JSONValidationError(w, "validation failed", map[string]string{"password": "required"}, http.StatusUnprocessableEntity)
		return
	}

	err := h.Accounts.DeleteAccount(r.Context(), *user, password)
	switch {
	case err == nil:
		metrics.IncAuthEvent("account_deleted")
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, account.ErrInvalidCredentials):
		JSONError(w, "Incorrect password", http.StatusUnauthorized)
	case errors.Is(err, repo.ErrNotFound):
		// Deleted by a concurrent request after the token was resolved.
		JSONError(w, "Not authenticated", http.StatusUnauthorized)
	default:
		internalError(w, r, "delete account", err)
	}
}
