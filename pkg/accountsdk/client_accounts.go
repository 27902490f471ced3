package accountsdk

import (
	"context"
	"net/http"
)

// Register creates a new account. A taken username or email yields an error
// matching ErrAccountExists.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	resp, err := c.postJSON(ctx, "/api/register", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Login checks a username/password pair. Bad credentials yield an error
// matching ErrInvalidCredentials.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*MessageResponse, error) {
	resp, err := c.postJSON(ctx, "/api/login", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Home fetches the welcome message.
func (c *SDKClient) Home(ctx context.Context) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/home", nil, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}
