package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pokemon errors
	ErrMsgPokemonNil = "pokemon is nil"

	// Enum errors
	ErrMsgEnumNotFound = "enum value not found"
	ErrMsgUnknownEnum  = "unknown enum"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPokemonNil = errors.New(ErrMsgPokemonNil)

	ErrEnumNotFound = errors.New(ErrMsgEnumNotFound)
	ErrUnknownEnum  = errors.New(ErrMsgUnknownEnum)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
