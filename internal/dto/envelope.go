package dto

import "time"

// APIResponse is the uniform envelope for every endpoint. Body is omitted
// when there is no payload; the error fields are set only on failures.
type APIResponse struct {
	Timestamp        time.Time   `json:"timestamp"`
	Body             interface{} `json:"body,omitempty"`
	ErrorCode        string      `json:"error_code,omitempty"`
	ErrorDescription string      `json:"error_description,omitempty"`
}

const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeBadOperation = "BAD_OPERATION"
)

func NewAPIResponse(body interface{}) APIResponse {
	return APIResponse{
		Timestamp: time.Now().UTC(),
		Body:      body,
	}
}

func NewAPIError(code, description string) APIResponse {
	return APIResponse{
		Timestamp:        time.Now().UTC(),
		ErrorCode:        code,
		ErrorDescription: description,
	}
}
