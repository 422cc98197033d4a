// Package apperr defines the error taxonomy of the detection API and how
// each class maps onto an HTTP response.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error class.
type Code string

const (
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeDecode          Code = "DECODE_ERROR"
	CodeBadRequest      Code = "INVALID_REQUEST"
	CodePayloadTooLarge Code = "PAYLOAD_TOO_LARGE"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// DecodePrefix starts the message of every decode failure.
const DecodePrefix = "Audio decoding error: "

// AppError is an error with a client-facing message and HTTP status.
type AppError struct {
	Code       Code
	Message    string
	HTTPStatus int
	Cause      error
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Unauthorized is returned for a missing or wrong API key.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Invalid API key"
	}
	return &AppError{Code: CodeUnauthorized, Message: reason, HTTPStatus: http.StatusUnauthorized}
}

// Validation is returned for well-formed requests with unsupported values.
// It is answered with 200 and an error-shaped body, which existing clients
// rely on.
func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusOK}
}

// Decode wraps a failure to turn the payload into a waveform. Like
// Validation it is answered with 200.
func Decode(cause error) *AppError {
	msg := DecodePrefix + "unknown error"
	if cause != nil {
		msg = DecodePrefix + cause.Error()
	}
	return &AppError{Code: CodeDecode, Message: msg, HTTPStatus: http.StatusOK, Cause: cause}
}

// BadRequest is returned when the body is not valid JSON or misses a field.
func BadRequest(message string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: message, HTTPStatus: http.StatusUnprocessableEntity}
}

// PayloadTooLarge is returned when the body exceeds the configured limit.
func PayloadTooLarge(limit int64) *AppError {
	return &AppError{
		Code:       CodePayloadTooLarge,
		Message:    fmt.Sprintf("Request body exceeds %d bytes", limit),
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As returns err as an *AppError, converting anything else to Internal.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
