package service

import "errors"

var (
	// ErrNotFound is returned when no record matches the given id or name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUsername is returned when registering a username that is
	// already taken or reserved.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrEmptyCategory is returned when adding a blank category name.
	ErrEmptyCategory = errors.New("category name cannot be empty")

	// ErrDuplicateCategory is returned when adding a category that is already
	// present among the defaults or the custom set.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrDefaultCategory is returned when attempting to remove a default
	// category. Defaults are immutable.
	ErrDefaultCategory = errors.New("default categories cannot be removed")
)
