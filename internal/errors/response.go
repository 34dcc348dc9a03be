package errors

import (
	"errors"
	"fmt"
)

// APIError is a structured error payload returned by the remote source: a
// known error code with a message that the UI can show localized.
type APIError struct {
	Code    ErrorCode `json:"errorCode"`
	Message string    `json:"errorMessage"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAPIError creates an APIError; an empty message falls back to the code's
// default message.
func NewAPIError(code ErrorCode, message string) *APIError {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &APIError{Code: code, Message: message}
}

// TransportError is an unstructured transport-level failure. The UI shows the
// generic message for Code rather than anything from the wire.
type TransportError struct {
	Code ErrorCode
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", GetErrorMessage(e.Code), e.Err)
	}
	return GetErrorMessage(e.Code)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a transport failure under the given code.
func NewTransportError(code ErrorCode, err error) *TransportError {
	return &TransportError{Code: code, Err: err}
}

// AsAPIError extracts a structured API error from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAPIError reports whether the error chain contains a structured API error.
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

// Classify wraps an error from the remote source for the consuming UI:
// structured API errors pass through untouched, anything else becomes a
// TransportError under fallbackCode.
func Classify(err error, fallbackCode ErrorCode) error {
	if err == nil {
		return nil
	}

	if IsAPIError(err) {
		return err
	}

	return NewTransportError(fallbackCode, err)
}
