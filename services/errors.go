package services

import "errors"

var (
	// ErrInvalidTransition is returned when a lesson or schedule request is
	// asked to leave a terminal status or skip a required precondition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCreditUnavailable is returned when a confirmation draws on a makeup
	// credit that has expired or no longer holds enough minutes. The request
	// is left untouched.
	ErrCreditUnavailable = errors.New("makeup credit unavailable")
)
