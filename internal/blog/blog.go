// Package blog holds the blog and comment operations, including the
// ownership checks that guard deletion.
package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

var (
	// ErrNotFoundOrForbidden is returned when the row is missing or not owned by
	// the actor. The two cases are deliberately indistinguishable.
	ErrNotFoundOrForbidden = errors.New("not found or not authorized")
	// ErrBlogNotFound is returned when commenting on a blog that does not exist.
	ErrBlogNotFound = errors.New("blog not found")
)

type Service struct {
	DB *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// List returns every blog with its comments embedded.
func (s *Service) List(ctx context.Context) ([]models.Blog, error) {
	blogs, err := repo.NewBlogRepo(s.DB).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	comments, err := repo.NewCommentRepo(s.DB).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	byBlog := make(map[int][]models.Comment, len(blogs))
	for _, c := range comments {
		byBlog[c.BlogID] = append(byBlog[c.BlogID], c)
	}
	for i := range blogs {
		if cs, ok := byBlog[blogs[i].ID]; ok {
			blogs[i].Comments = cs
		}
	}
	return blogs, nil
}

func (s *Service) Create(ctx context.Context, actor models.User, title, content string) (models.Blog, error) {
	b, err := repo.NewBlogRepo(s.DB).Create(ctx, title, content, actor.ID)
	if err != nil {
		return b, fmt.Errorf("create blog: %w", err)
	}
	return b, nil
}

// Delete removes a blog owned by actor along with its comments.
func (s *Service) Delete(ctx context.Context, actor models.User, id int) error {
	b, err := repo.NewBlogRepo(s.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFoundOrForbidden
		}
		return fmt.Errorf("load blog: %w", err)
	}
	if !auth.CanDelete(actor, b.AuthorID) {
		return ErrNotFoundOrForbidden
	}

	return repo.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if _, err := repo.NewCommentRepo(tx).DeleteByBlog(ctx, id); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := repo.NewBlogRepo(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFoundOrForbidden
			}
			return fmt.Errorf("delete blog: %w", err)
		}
		return nil
	})
}

// AddComment attaches a comment by actor to an existing blog.
func (s *Service) AddComment(ctx context.Context, actor models.User, blogID int, content string) (models.Comment, error) {
	if _, err := repo.NewBlogRepo(s.DB).GetByID(ctx, blogID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Comment{}, ErrBlogNotFound
		}
		return models.Comment{}, fmt.Errorf("load blog: %w", err)
	}

	c, err := repo.NewCommentRepo(s.DB).Create(ctx, content, blogID, actor.ID)
	if err != nil {
		if errors.Is(err, repo.ErrMissingParent) {
			return c, ErrBlogNotFound
		}
		return c, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// Comments lists the comments of a blog. An unknown blog yields an empty list.
func (s *Service) Comments(ctx context.Context, blogID int) ([]models.Comment, error) {
	cs, err := repo.NewCommentRepo(s.DB).ListByBlog(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return cs, nil
}

func (s *Service) DeleteComment(ctx context.Context, actor models.User, id int) error {
	comments := repo.NewCommentRepo(s.DB)
	c, err := comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFoundOrForbidden
		}
		return fmt.Errorf("load comment: %w", err)
	}
	if !auth.CanDelete(actor, c.AuthorID) {
		return ErrNotFoundOrForbidden
	}
	if err := comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFoundOrForbidden
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
