package domain

import "errors"

var (
	// ErrValidation is returned for invalid computation inputs
	// (non-positive serving multipliers, negative nutrient amounts).
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration is returned when a rule or definition table fails to
	// load or parse. Tables are rejected at load time, never silently
	// misapplied at evaluation time.
	ErrConfiguration = errors.New("invalid table configuration")

	// ErrInvalidRequest is returned when request parameters are malformed.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRecipeNotFound is returned when a referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
)
