package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// LoginHandler serves POST /api/login.
type LoginHandler struct {
	Credentials *service.CredentialService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Checks a username and password. An unknown username and a wrong password produce the same response.
//	@Description	No session or token is issued.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"username, password"
//	@Success		200		{object}	accountsdk.MessageResponse	"message"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(r.Context()).Debug("login body rejected", "err", err)
		accountsdk.ErrMalformedBody.WriteError(w)
		return
	}

	_, err := h.Credentials.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: accountsdk.MessageLoggedIn,
	})
}
