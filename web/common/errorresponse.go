package common

type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Kind:    "error",
		Message: message,
	}
}
