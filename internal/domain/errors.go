package domain

import "errors"

var (
	// ErrInvalidRequest indicates a missing or malformed required field.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotAuthenticated indicates the caller's identity could not be resolved.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnerNotProvisioned indicates the owning user row does not exist
	// and could not be created.
	ErrOwnerNotProvisioned = errors.New("owner not provisioned")

	// ErrAlreadyExists indicates an insert hit a uniqueness constraint.
	ErrAlreadyExists = errors.New("already exists")
)
