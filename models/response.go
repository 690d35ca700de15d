package models

const (
	ErrorTypeRequest  = "request_error"
	ErrorTypeDatabase = "database_error"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func NewErrorResponse(errType, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Type:    errType,
			Message: message,
		},
	}
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
