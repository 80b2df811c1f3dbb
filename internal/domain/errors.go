package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already subscribed")
)
