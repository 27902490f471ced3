package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// HomeHandler godoc
//
//	@Summary		Home Endpoint
//	@Description	Returns a static welcome message
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	accountsdk.MessageResponse	"message"
//	@Router			/api/home [get].
func HomeHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: accountsdk.MessageWelcome,
	})
}
