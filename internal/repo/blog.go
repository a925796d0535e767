package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/blog-api/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type BlogRepo struct {
	DB DBTX
}

func NewBlogRepo(db DBTX) *BlogRepo {
	return &BlogRepo{DB: db}
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlog(s scanner) (models.Blog, error) {
	var (
		b        models.Blog
		authorID sql.NullInt64
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Content, &authorID); err != nil {
		return b, err
	}
	b.AuthorID = nullableID(authorID)
	b.Comments = []models.Comment{}
	return b, nil
}

func nullableID(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	id := int(n.Int64)
	return &id
}

// ========================
// CREATE BLOG
// ========================

func (r *BlogRepo) Create(ctx context.Context, title, content string, authorID int) (models.Blog, error) {
	row := r.DB.QueryRowContext(ctx,
		`INSERT INTO blogs (title, content, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, content, author_id`,
		title, content, authorID,
	)
	return scanBlog(row)
}

// ========================
// GET BLOG BY ID
// ========================

func (r *BlogRepo) GetByID(ctx context.Context, id int) (models.Blog, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, title, content, author_id
		 FROM blogs
		 WHERE id = $1`,
		id,
	)
	b, err := scanBlog(row)
	return b, notFound(err)
}

// ========================
// LIST ALL BLOGS
// ========================

func (r *BlogRepo) List(ctx context.Context) ([]models.Blog, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, title, content, author_id FROM blogs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// ========================
// DELETE BLOG BY ID
// ========================

func (r *BlogRepo) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectOne(result)
}

// ========================
// DELETE BLOGS BY AUTHOR
// ========================

func (r *BlogRepo) DeleteByAuthor(ctx context.Context, authorID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM blogs WHERE author_id = $1", authorID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *BlogRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&n)
	return n, err
}
