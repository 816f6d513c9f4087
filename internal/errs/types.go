package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError: the request shape is malformed (missing or unsupported
// type/value). Surfaced immediately, never retried.
type ValidationError struct {
	ErrorMessage
}

// UpstreamError: the validation API rejected or failed the request.
// StatusCode carries the upstream HTTP status; Code the upstream error code
// (e.g. BAD_REQUEST_ERROR). Either may be empty.
type UpstreamError struct {
	ErrorMessage
	StatusCode int
	Code       string
}

// TimeoutError: server-side polling exhausted its attempt budget without the
// validation reaching a terminal state. Retry-eligible.
type TimeoutError struct {
	ErrorMessage
}

// NetworkError: the request to the upstream never completed (connection
// failure, DNS, client-side timeout).
type NetworkError struct {
	ErrorMessage
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUpstreamError(statusCode int, code, message string) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: message},
		StatusCode:   statusCode,
		Code:         code,
	}
}

func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNetworkError(message string) *NetworkError {
	return &NetworkError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
