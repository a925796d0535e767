package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/crucial707/blog-api/internal/blog"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/go-chi/chi/v5"
)

type BlogHandler struct {
	Blogs *blog.Service
}

//
// ==========================
// List Blogs (with comments)
// ==========================
//

func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.List(r.Context())
	if err != nil {
		internalError(w, r, "list blogs", err)
		return
	}
	JSON(w, blogs)
}

//
// ==========================
// Create Blog
// ==========================
//

func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request, user *models.User) {
	var input struct {
		Title   string `json:"title" validate:"required,max=255"`
		Content string `json:"content" validate:"required"`
	}
	if !decodeAndValidate(w, r, &input) {
		return
	}

	b, err := h.Blogs.Create(r.Context(), *user, input.Title, input.Content)
	if err != nil {
		internalError(w, r, "create blog", err)
		return
	}
	JSON(w, b)
}

//
// ==========================
// Delete Blog (owner only)
// ==========================
//

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.Blogs.Delete(r.Context(), *user, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, blog.ErrNotFoundOrForbidden):
		JSONError(w, "Blog not found or not authorized to delete", http.StatusNotFound)
	default:
		internalError(w, r, "delete blog", err)
	}
}

// pathID parses a positive integer URL parameter, answering 422 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		JSONValidationError(w, "validation failed", map[string]string{name: "must be a positive integer"}, http.StatusUnprocessableEntity)
		return 0, false
	}
	return id, true
}
