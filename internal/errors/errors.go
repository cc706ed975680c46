package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// ForwardingError reports a non-success, non-redirect response from the
// downstream ledger endpoint. Body holds at most a short snippet captured
// for diagnostics; it is never exposed to the caller.
type ForwardingError struct {
	Status int
	Body   string
}

func (e *ForwardingError) Error() string {
	return fmt.Sprintf("ledger responded with %d", e.Status)
}

func NewForwardingError(status int, body string) *ForwardingError {
	const maxBodySnippet = 500
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	return &ForwardingError{
		Status: status,
		Body:   body,
	}
}

func IsForwardingError(err error) (*ForwardingError, bool) {
	if fe, ok := err.(*ForwardingError); ok {
		return fe, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
