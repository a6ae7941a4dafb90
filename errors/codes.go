package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Capture errors
const (
	// ErrCodePermissionDenied indicates microphone authorization was not granted.
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	// ErrCodeSessionSetupFailed indicates the audio session could not be configured.
	ErrCodeSessionSetupFailed ErrorCode = "SESSION_SETUP_FAILED"
	// ErrCodeAlreadyInProgress indicates a capture is already running.
	ErrCodeAlreadyInProgress ErrorCode = "ALREADY_IN_PROGRESS"
	// ErrCodeNothingToStop indicates stop was called with no active capture.
	ErrCodeNothingToStop ErrorCode = "NOTHING_TO_STOP"
	// ErrCodeEmptyOrCorrupt indicates the captured audio file is empty or unreadable.
	ErrCodeEmptyOrCorrupt ErrorCode = "EMPTY_OR_CORRUPT"
)

// State errors
const (
	// ErrCodeAlreadyRecording indicates a recording cycle is already in flight.
	ErrCodeAlreadyRecording ErrorCode = "ALREADY_RECORDING"
	// ErrCodeNotRecording indicates there is no active recording to end.
	ErrCodeNotRecording ErrorCode = "NOT_RECORDING"
)

// Network/transport errors
const (
	// ErrCodeNetworkUnavailable indicates the transcription service could not be reached.
	ErrCodeNetworkUnavailable ErrorCode = "NETWORK_UNAVAILABLE"
	// ErrCodeTimeout indicates the upload or response timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeServerError indicates the transcription service returned a non-2xx status.
	ErrCodeServerError ErrorCode = "SERVER_ERROR"
)

// Protocol/content errors
const (
	// ErrCodeAPIKeyMissing indicates no usable credential was configured.
	ErrCodeAPIKeyMissing ErrorCode = "API_KEY_MISSING"
	// ErrCodeNoData indicates the service returned an empty response body.
	ErrCodeNoData ErrorCode = "NO_DATA"
	// ErrCodeInvalidResponse indicates the response body did not match the expected schema.
	ErrCodeInvalidResponse ErrorCode = "INVALID_RESPONSE"
	// ErrCodeNoSpeechDetected indicates the transcript was empty after trimming.
	ErrCodeNoSpeechDetected ErrorCode = "NO_SPEECH_DETECTED"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeNetworkUnavailable: true,
	ErrCodeTimeout:            true,
	ErrCodeServerError:        true,
	ErrCodeNoData:             true,
}

// IsRetryableCode reports whether a fresh recording cycle may succeed
// without any configuration change. Retry means the user starting a new
// cycle; the pipeline never retries on its own.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
