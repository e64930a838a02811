package service

import "errors"

// Not-found conditions are recoverable and signalled back to the caller; the
// controllers translate them into 400 responses. Nothing in this package
// panics for valid input.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// IsBadInput reports whether err is one of the not-found conditions that map
// to a client error at the HTTP boundary.
func IsBadInput(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound)
}
