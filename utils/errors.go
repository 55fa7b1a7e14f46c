package utils

import "net/http"

// CustomError digunakan untuk error dengan status code yang spesifik
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError Fungsi helper untuk membuat CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// NewValidationError reports a missing or malformed request field.
func NewValidationError(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}

// NewConflictError reports a uniqueness violation. Clients have always
// received 400 for these, so the status stays 400 rather than 409.
func NewConflictError(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}

// NewNotFoundError reports an unknown user id, also as 400.
func NewNotFoundError(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}

// NewStoreError wraps a persistence failure that is not the client's fault.
func NewStoreError(message string) *CustomError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return NewCustomError(http.StatusInternalServerError, message)
}
