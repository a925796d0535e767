// Package account implements registration, login and account deletion.
package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

var (
	// ErrUsernameTaken is returned by Register when the username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooLong is returned by Register for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password longer than 72 bytes")
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// Service owns the account lifecycle.
type Service struct {
	DB     *sql.DB
	Hasher *auth.Hasher
	Tokens *auth.TokenService

	// dummyHash is compared against for unknown usernames so Login spends
	// the same bcrypt time whether or not the user exists.
	dummyHash string
}

func NewService(db *sql.DB, hasher *auth.Hasher, tokens *auth.TokenService) *Service {
	dummy, err := hasher.Hash("timing-equalizer")
	if err != nil {
		// Only a crypto/rand failure gets here; Login still rejects unknown users.
		slog.Error("account: build dummy hash", "error", err)
	}
	return &Service{DB: db, Hasher: hasher, Tokens: tokens, dummyHash: dummy}
}

// Register creates the user and returns a token for it. The insert is rolled
// back if the token cannot be issued.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return "", err
	}

	var token string
	err = repo.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		user, err := repo.NewUserRepo(tx).Create(ctx, username, hash)
		if err != nil {
			if errors.Is(err, repo.ErrUsernameTaken) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		token, err = s.Tokens.Issue(user.Username)
		return err
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Login checks username and password and issues a fresh token. Earlier tokens
// for the same user stay valid.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := repo.NewUserRepo(s.DB).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			_, _ = s.Hasher.Verify(password, s.dummyHash)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	ok, err := s.Hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("user %d: %w", user.ID, err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(user.Username)
}

// DeleteAccount re-checks the actor's password, then removes the user together
// with their blogs, every comment on those blogs and their own comments.
func (s *Service) DeleteAccount(ctx context.Context, actor models.User, password string) error {
	ok, err := s.Hasher.Verify(password, actor.PasswordHash)
	if err != nil {
		return fmt.Errorf("user %d: %w", actor.ID, err)
	}
	if !ok {
		return ErrInvalidCredentials
	}

	return repo.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		comments := repo.NewCommentRepo(tx)
		if _, err := comments.DeleteOnBlogsByAuthor(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete comments on blogs: %w", err)
		}
		if _, err := comments.DeleteByAuthor(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if _, err := repo.NewBlogRepo(tx).DeleteByAuthor(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete blogs: %w", err)
		}
		if err := repo.NewUserRepo(tx).Delete(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
