package accountsdk

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Error is the error kind (e.g., "invalid_input", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a short human-readable message
	ErrorDescription string `json:"error_description"`
}

// MessageResponse is the JSON body of a successful register, login or home request.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Messages returned by successful requests.
const (
	MessageRegistered = "User registered successfully"
	MessageLoggedIn   = "Login successful"
	MessageWelcome    = "Welcome to the Home Page!"
)

// HealthResponse represents the health check response from /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is how long the service has been running
	Uptime string `json:"uptime"`

	// Version is the build version
	Version string `json:"version"`

	// Checks contains dependency checks (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	// Database is "ok" or "error"
	Database string `json:"database"`
}
