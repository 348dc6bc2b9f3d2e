package utils

// ErrorResponse is the generic failure body returned when no typed
// scheduling error applies.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
