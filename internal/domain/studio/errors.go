package studio

import "errors"

var (
	ErrStudioNotFound = errors.New("studio not found")
	ErrInvalidPrice   = errors.New("price must be a number")
)
