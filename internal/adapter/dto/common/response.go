package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
