package services

import "errors"

// Common service-level errors
var (
	ErrInvalidRequest = errors.New("invalid request")
)
