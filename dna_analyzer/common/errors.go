package common

import "errors"

var (
	// ErrInvalidLength is returned when operand lengths make a comparison meaningless.
	ErrInvalidLength = errors.New("invalid length")
	// ErrMissingParameter is returned when a required parameter such as k is unset or not positive.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrEmptyInput is returned when an operation needs at least one element.
	ErrEmptyInput = errors.New("empty input")
)
