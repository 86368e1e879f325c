package service

import "errors"

var (
	// ErrNotFound covers records that are absent and records owned by
	// another user; callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
