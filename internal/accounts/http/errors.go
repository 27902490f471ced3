package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// writeServiceError maps a credential workflow error onto its response. Store
// and hashing failures collapse to a generic server error so no internal
// detail reaches the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		accountsdk.ErrMissingFields.WriteError(w)
	case errors.Is(err, service.ErrMissingCredentials):
		accountsdk.ErrMissingCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidEmail):
		accountsdk.ErrInvalidEmail.WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		accountsdk.ErrMalformedBody.WriteError(w)
	case errors.Is(err, service.ErrConflict):
		accountsdk.ErrAccountExists.WriteError(w)
	case errors.Is(err, service.ErrUnauthorized):
		accountsdk.ErrInvalidCredentials.WriteError(w)
	default:
		accountsdk.ErrServerError.WriteError(w)
	}
}
