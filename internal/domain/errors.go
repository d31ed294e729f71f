package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrProfileNotFound = errors.New("profile not found")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrMatcherUnavailable is returned by the live matcher when it is not configured.
	ErrMatcherUnavailable = errors.New("matcher unavailable")
	// ErrInvalidMatchResult marks a matcher response that failed decoding or schema checks.
	ErrInvalidMatchResult = errors.New("invalid match result")
)
