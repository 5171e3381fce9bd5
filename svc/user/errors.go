package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAlreadyApplied     = errors.New("already applied for this job")
	ErrNoSuchJob          = errors.New("no such job or user")
	ErrFailedToHash       = errors.New("failed to hash password")
	ErrFailedToQuery      = errors.New("failed to query users")
)
