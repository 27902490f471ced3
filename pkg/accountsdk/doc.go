/*
Package accountsdk provides a client SDK and the wire types for the accounts service.

# Overview

The service exposes three account operations and two health probes:

	client := accountsdk.NewSDKClient("http://localhost:8080")

	// Create an account
	_, err := client.Register(ctx, accountsdk.RegisterRequest{
		Username: "johnwick",
		Email:    "john@continental.com",
		Password: "supersecure123",
	})

	// Check credentials
	_, err = client.Login(ctx, accountsdk.LoginRequest{
		Username: "johnwick",
		Password: "supersecure123",
	})

	// Probe the service
	health, err := client.GetReadiness(ctx)

# Error Handling

Failed requests return an *APIError carrying the status code, the error kind
and a short description. The predefined errors can be matched with errors.Is:

	_, err := client.Login(ctx, req)
	switch {
	case errors.Is(err, accountsdk.ErrInvalidCredentials):
		// unknown username or wrong password
	case errors.Is(err, accountsdk.ErrMissingCredentials):
		// username or password was empty
	}

The server uses the same values to write its responses, so both sides agree on
the body shape:

	{"error": "conflict", "error_description": "Username or email already exists"}
*/
package accountsdk
