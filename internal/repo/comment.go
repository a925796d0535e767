package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/blog-api/internal/models"
)

// CommentRepo persists comments.
type CommentRepo struct {
	DB DBTX
}

// NewCommentRepo returns a new CommentRepo.
func NewCommentRepo(db DBTX) *CommentRepo {
	return &CommentRepo{DB: db}
}

func scanComment(s scanner) (models.Comment, error) {
	var (
		c        models.Comment
		authorID sql.NullInt64
	)
	if err := s.Scan(&c.ID, &c.Content, &c.BlogID, &authorID); err != nil {
		return c, err
	}
	c.AuthorID = nullableID(authorID)
	return c, nil
}

// Create inserts a comment. It returns ErrMissingParent if the blog disappeared
// between the caller's existence check and the insert.
func (r *CommentRepo) Create(ctx context.Context, content string, blogID, authorID int) (models.Comment, error) {
	row := r.DB.QueryRowContext(ctx,
		`INSERT INTO comments (content, blog_id, author_id) VALUES ($1, $2, $3) RETURNING id, content, blog_id, author_id`,
		content, blogID, authorID,
	)
	c, err := scanComment(row)
	if err != nil && pqCode(err) == pqForeignKeyViolation {
		return c, ErrMissingParent
	}
	return c, err
}

func (r *CommentRepo) GetByID(ctx context.Context, id int) (models.Comment, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, content, blog_id, author_id FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	return c, notFound(err)
}

// ListByBlog returns the comments of one blog in creation order. Never nil.
func (r *CommentRepo) ListByBlog(ctx context.Context, blogID int) ([]models.Comment, error) {
	return r.list(ctx,
		`SELECT id, content, blog_id, author_id FROM comments WHERE blog_id = $1 ORDER BY id`, blogID)
}

// List returns every comment in creation order.
func (r *CommentRepo) List(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx, `SELECT id, content, blog_id, author_id FROM comments ORDER BY id`)
}

func (r *CommentRepo) list(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepo) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(result)
}

// DeleteByBlog removes every comment attached to blogID.
func (r *CommentRepo) DeleteByBlog(ctx context.Context, blogID int) (int64, error) {
	return r.exec(ctx, `DELETE FROM comments WHERE blog_id = $1`, blogID)
}

// DeleteByAuthor removes every comment written by authorID.
func (r *CommentRepo) DeleteByAuthor(ctx context.Context, authorID int) (int64, error) {
	return r.exec(ctx, `DELETE FROM comments WHERE author_id = $1`, authorID)
}

// DeleteOnBlogsByAuthor removes comments, by anyone, on blogs owned by authorID.
func (r *CommentRepo) DeleteOnBlogsByAuthor(ctx context.Context, authorID int) (int64, error) {
	return r.exec(ctx,
		`DELETE FROM comments WHERE blog_id IN (SELECT id FROM blogs WHERE author_id = $1)`, authorID)
}

func (r *CommentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n)
	return n, err
}

func (r *CommentRepo) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
