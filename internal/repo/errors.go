package repo

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup or delete matches no row.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned when an insert hits the users.username unique constraint.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrMissingParent is returned when an insert references a row that does not exist.
	ErrMissingParent = errors.New("referenced row does not exist")
)

// Postgres SQLSTATE codes we map to domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// notFound turns sql.ErrNoRows into ErrNotFound and passes everything else through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// expectOne returns ErrNotFound when an Exec affected no rows.
func expectOne(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
