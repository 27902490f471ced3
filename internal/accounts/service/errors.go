package service

import (
	"errors"
	"fmt"
)

// Error kinds of the credential workflow. Handlers dispatch on these with
// errors.Is; the specific InvalidInput variants wrap ErrInvalidInput.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("username or email already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrStore        = errors.New("store failure")
)

var (
	ErrMissingFields      = fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	ErrMissingCredentials = fmt.Errorf("%w: username and password required", ErrInvalidInput)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email format", ErrInvalidInput)
)

// storeErr tags err as a persistence failure unless it already carries one
// of the workflow kinds.
func storeErr(op string, err error) error {
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
