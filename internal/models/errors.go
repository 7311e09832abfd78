package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource does not exist or is
	// owned by a different user. The two cases are deliberately collapsed so
	// callers cannot probe for other users' data.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a registration reuses an existing username.
	ErrConflict = errors.New("username has taken")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, keeping the two indistinguishable.
	ErrInvalidCredentials = errors.New("password or username is wrong")

	// ErrUnauthorized is returned when the session token is missing or does
	// not match any user.
	ErrUnauthorized = errors.New("unauthorized")
)
