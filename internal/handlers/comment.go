package handlers

import (
	"errors"
	"net/http"

	"github.com/crucial707/blog-api/internal/blog"
	"github.com/crucial707/blog-api/internal/models"
)

// CommentHandler serves comment endpoints.
type CommentHandler struct {
	Blogs *blog.Service
}

// CreateComment attaches a comment to an existing blog.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request, user *models.User) {
	var input struct {
		Content string `json:"content" validate:"required"`
		BlogID  int    `json:"blog_id" validate:"required,gt=0"`
	}
	if !decodeAndValidate(w, r, &input) {
		return
	}

	c, err := h.Blogs.AddComment(r.Context(), *user, input.BlogID, input.Content)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			JSONError(w, "Blog not found", http.StatusNotFound)
			return
		}
		internalError(w, r, "create comment", err)
		return
	}
	JSON(w, c)
}

// ListComments returns the comments of a blog; an unknown blog gives an empty list.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	blogID, ok := pathID(w, r, "blog_id")
	if !ok {
		return
	}
	comments, err := h.Blogs.Comments(r.Context(), blogID)
	if err != nil {
		internalError(w, r, "list comments", err)
		return
	}
	JSON(w, comments)
}

// DeleteComment removes a comment owned by the caller.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.Blogs.DeleteComment(r.Context(), *user, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, blog.ErrNotFoundOrForbidden):
		JSONError(w, "Comment not found or not authorized to delete", http.StatusNotFound)
	default:
		internalError(w, r, "delete comment", err)
	}
}
