package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// validation errors surfaced to the user
	ErrorValidation = errors.New("validation error")
)
