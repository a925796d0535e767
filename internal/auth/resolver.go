package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

// UserLookup is the part of the user store the resolver needs.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Resolver turns a bearer token into the acting user.
type Resolver struct {
	Tokens *TokenService
	Users  UserLookup
}

func NewResolver(tokens *TokenService, users UserLookup) *Resolver {
	return &Resolver{Tokens: tokens, Users: users}
}

// Resolve verifies token and loads its subject. Every verification failure and
// an unknown subject wrap ErrUnauthenticated; store failures are returned as-is.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	username, err := r.Tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	user, err := r.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
