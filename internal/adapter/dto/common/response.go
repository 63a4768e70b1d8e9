package common

// ErrorResponse represents the standard error response shape.
// Every non-2xx response carries exactly this body.
type ErrorResponse struct {
	Error string `json:"error"`
}
