package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// RegisterHandler serves POST /api/register.
type RegisterHandler struct {
	Credentials *service.CredentialService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Creates a new account. Username, email and password are all required and the email must pass a coarse shape check.
//	@Description	Username and email are unique across all accounts.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	accountsdk.MessageResponse	"message"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	// 1. Decode the body
	var req accountsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		log.Debug("register body rejected", "err", err)
		accountsdk.ErrMalformedBody.WriteError(w)
		return
	}

	// 2. Run the workflow
	_, err := h.Credentials.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.MessageResponse{
		Message: accountsdk.MessageRegistered,
	})
}
