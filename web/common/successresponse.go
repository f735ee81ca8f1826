package common

type SuccessResponse struct {
	Data interface{} `json:"data"`
	// Message is the user-facing outcome of a mutation, when there is one.
	Message interface{} `json:"message,omitempty"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

func NewMessageResponse(data interface{}, message interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data:    data,
		Message: message,
	}
}
