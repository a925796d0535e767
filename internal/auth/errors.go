package auth

import "errors"

var (
	// ErrInvalidSignature means the token's MAC or signing algorithm did not match.
	ErrInvalidSignature = errors.New("token signature is invalid")
	// ErrExpired means the token's exp is at or before the current time.
	ErrExpired = errors.New("token is expired")
	// ErrMalformed means the token could not be parsed or is missing required claims.
	ErrMalformed = errors.New("token is malformed")

	// ErrUnauthenticated is the single error the resolver returns for any bad
	// token or for a subject that no longer exists.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrMalformedHash means a stored password hash could not be parsed.
	ErrMalformedHash = errors.New("stored password hash is malformed")
)
