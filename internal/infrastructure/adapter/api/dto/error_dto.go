package dto

// ErrorResponse is the envelope of every failed API call
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Fields  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse is the envelope of every successful API call
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// OK wraps data in a success envelope
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}
