package errors

// ErrorInfo contains detailed error information rendered to clients.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope the error middleware writes for failed requests.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
