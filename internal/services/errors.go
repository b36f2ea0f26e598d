package services

import "errors"

var (
	// ErrMissingCredential: no Authorization header at all (401).
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidToken and ErrTokenExpired both surface to callers as a
	// generic forbidden; the split exists for logs only.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	// ErrForbidden: wrong role or unknown identity. Never reveals
	// whether the account exists.
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
