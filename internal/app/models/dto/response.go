package dto

// MessageResponse is the standard success body for endpoints with no payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error body. Every failure path returns a
// message the client can surface directly.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
