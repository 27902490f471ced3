package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// Error codes carried in the "error" field of every failure body.
const (
	ErrorCodeInvalidInput = "invalid_input"
	ErrorCodeConflict     = "conflict"
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeServerError  = "server_error"
)

// APIError is a failure response from the accounts service. It is used both
// by the server (to write responses) and by the SDK client (to report them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error kind (e.g. "invalid_input")
	Code string `json:"error"`

	// Description is the short human-readable message
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on status and code, and on description when the target sets one.
// errors.Is(err, accountsdk.ErrInvalidCredentials) therefore works on errors
// decoded from a response.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if e.StatusCode != t.StatusCode || e.Code != t.Code {
		return false
	}
	return t.Description == "" || e.Description == t.Description
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrMissingFields is returned by register when any field is empty.
	ErrMissingFields = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidInput,
		Description: "All fields are required",
	}

	// ErrInvalidEmail is returned by register when the email fails the shape check.
	ErrInvalidEmail = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidInput,
		Description: "Invalid email format",
	}

	// ErrMissingCredentials is returned by login when username or password is empty.
	ErrMissingCredentials = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidInput,
		Description: "Username and password required",
	}

	// ErrMalformedBody is returned when the request body is not a JSON object.
	ErrMalformedBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidInput,
		Description: "Request body must be a JSON object",
	}

	// ErrAccountExists is returned by register when the username or email is taken.
	ErrAccountExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "Username or email already exists",
	}

	// ErrInvalidCredentials is returned by login for an unknown username or a
	// wrong password alike.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "Invalid credentials",
	}

	// ErrServerError hides store and hashing failures from callers.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "Internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
