package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrStudioNotFound  = errors.New("studio not found")
)
