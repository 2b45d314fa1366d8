package errors

import "net/http"

// ErrorWithStatusCode is the failure type the storage and service layers
// hand to the transport edge. Anything else is treated as a 500.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound signals an absent board/thread/user/session.
func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Conflict signals a unique-constraint violation surfaced to the caller
// (board name collisions; identity token collisions are retried internally
// and never reach here).
func Conflict(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

// InvalidInput signals a structurally broken request, e.g. replying to a
// thread whose head post cannot be resolved.
func InvalidInput(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}
