// Package errors provides unified error handling for the speechkit
// pipeline. Every failure a recording cycle can produce is an AppError
// carrying a machine-readable code and a human-readable message; the
// message is what the recorder surfaces in its error state.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified pipeline error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, suitable for display.
	Message string `json:"message"`
	// Retryable indicates if a fresh cycle may succeed.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
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

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from an error chain. Returns an empty
// code when err is not (wrapping) an AppError.
func CodeOf(err error) ErrorCode {
	var e *AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether the error chain contains an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// AsAppError converts any error into an AppError. Non-AppError values
// are wrapped as an invalid-response error so every failure reaching
// the recorder carries a displayable message.
func AsAppError(err error) *AppError {
	var e *AppError
	if errors.As(err, &e) {
		return e
	}
	return InvalidResponse(err)
}

// --- Capture error constructors ---

// PermissionDenied creates an AppError for missing microphone authorization.
func PermissionDenied() *AppError {
	return New(ErrCodePermissionDenied, "Microphone access is not allowed. Enable it in settings and try again.")
}

// SessionSetupFailed creates an AppError for an audio session that could not be configured.
func SessionSetupFailed(cause error) *AppError {
	return New(ErrCodeSessionSetupFailed, "Could not set up audio recording. Please try again.").WithCause(cause)
}

// AlreadyInProgress creates an AppError for a capture started while one is running.
func AlreadyInProgress() *AppError {
	return New(ErrCodeAlreadyInProgress, "A recording is already in progress.")
}

// NothingToStop creates an AppError for a stop with no active capture.
func NothingToStop() *AppError {
	return New(ErrCodeNothingToStop, "There is no active recording to stop.")
}

// EmptyOrCorrupt creates an AppError for a zero-byte or unreadable capture.
func EmptyOrCorrupt(path string) *AppError {
	return New(ErrCodeEmptyOrCorrupt, "The recording was empty. Please try again.").
		WithDetail("path", path)
}

// --- State error constructors ---

// AlreadyRecording creates an AppError for a begin while a cycle is in flight.
func AlreadyRecording() *AppError {
	return New(ErrCodeAlreadyRecording, "A recording is already in progress.")
}

// NotRecording creates an AppError for an end with no recording in flight.
func NotRecording() *AppError {
	return New(ErrCodeNotRecording, "Not currently recording.")
}

// --- Network/transport error constructors ---

// NetworkUnavailable creates an AppError for an unreachable transcription service.
func NetworkUnavailable(cause error) *AppError {
	return New(ErrCodeNetworkUnavailable, "No internet connection. Check your network and try again.").WithCause(cause)
}

// Timeout creates an AppError for a timed-out operation.
func Timeout(operation string) *AppError {
	return New(ErrCodeTimeout, "The request took too long. Please try again.").
		WithDetail("operation", operation)
}

// ServerError creates an AppError for a non-2xx response from the transcription service.
func ServerError(statusCode int, detail string) *AppError {
	e := New(ErrCodeServerError, fmt.Sprintf("Transcription service error (%d). Please try again.", statusCode)).
		WithDetail("status_code", statusCode)
	if detail != "" {
		e = e.WithDetail("server_message", detail)
	}
	return e
}

// --- Protocol/content error constructors ---

// APIKeyMissing creates an AppError for a missing or placeholder credential.
func APIKeyMissing() *AppError {
	return New(ErrCodeAPIKeyMissing, "No API key configured. Add your transcription API key in settings.")
}

// NoData creates an AppError for an empty response body.
func NoData() *AppError {
	return New(ErrCodeNoData, "The transcription service returned no data. Please try again.")
}

// InvalidResponse creates an AppError for an unparseable response.
func InvalidResponse(cause error) *AppError {
	return New(ErrCodeInvalidResponse, "Received an unexpected response from the transcription service.").WithCause(cause)
}

// NoSpeechDetected creates an AppError for a transcript that is empty after trimming.
func NoSpeechDetected() *AppError {
	return New(ErrCodeNoSpeechDetected, "No speech detected. Please try speaking again.")
}
