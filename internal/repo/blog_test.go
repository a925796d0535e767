package repo

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBlogRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO blogs \(title, content, author_id\)`).
		WithArgs("Hello", "World", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id"}).AddRow(1, "Hello", "World", 7))

	blog, err := NewBlogRepo(db).Create(context.Background(), "Hello", "World", 7)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if blog.ID != 1 || blog.AuthorID == nil || *blog.AuthorID != 7 {
		t.Errorf("unexpected blog: %+v", blog)
	}
	if blog.Comments == nil {
		t.Error("Comments should be an empty slice, not nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestBlogRepo_List_NullAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, content, author_id FROM blogs ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id"}).
			AddRow(1, "legacy", "old row", nil).
			AddRow(2, "new", "owned", 3))

	blogs, err := NewBlogRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("got %d blogs, want 2", len(blogs))
	}
	if blogs[0].AuthorID != nil {
		t.Errorf("legacy blog should have nil author, got %v", *blogs[0].AuthorID)
	}
	if blogs[1].AuthorID == nil || *blogs[1].AuthorID != 3 {
		t.Errorf("unexpected author for blog 2: %v", blogs[1].AuthorID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestBlogRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, content, author_id`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err = NewBlogRepo(db).GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestBlogRepo_DeleteByAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM blogs WHERE author_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := NewBlogRepo(db).DeleteByAuthor(context.Background(), 3)
	if err != nil {
		t.Fatalf("DeleteByAuthor: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
