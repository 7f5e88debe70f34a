package dto

import "time"

// ErrorResponse is the envelope every non-2xx answer carries: a stable
// machine code plus a timestamp, nothing else.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an error envelope stamped with the current time.
func NewErrorResponse(code string) ErrorResponse {
	return ErrorResponse{Code: code, Timestamp: time.Now()}
}
