package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent the dashboard's failure taxonomy.
var (
	// ErrTransport indicates the service could not be reached or answered
	// with a non-2xx status.
	ErrTransport = errors.New("transport error")

	// ErrApplication indicates a 2xx response carrying an error field.
	ErrApplication = errors.New("application error")

	// ErrValidation indicates required input was missing before dispatch.
	ErrValidation = errors.New("validation error")

	// ErrMalformedPayload indicates a response body that could not be
	// understood.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrOperationInProgress indicates the operation's lock is held by an
	// in-flight request.
	ErrOperationInProgress = errors.New("operation in progress")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// TransportError is a network failure or a non-2xx response.
type TransportError struct {
	// Op names the remote operation, e.g. "list scheduled".
	Op string

	// StatusCode is the HTTP status, or 0 when no response arrived.
	StatusCode int

	// Message is the service's error text from a {error} body, if any.
	Message string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as the error's kind.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ApplicationError is a 2xx response that carries an error field.
type ApplicationError struct {
	Op      string
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Op + ": " + e.Message
}

// Is reports ErrApplication as the error's kind.
func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}

// ValidationError is missing or invalid input detected before dispatch.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is reports ErrValidation as the error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UserMessage normalises an error into the text shown to the user.
// Service-provided messages win over transport detail.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Message != "" {
			return transportErr.Message
		}
		if transportErr.Err != nil {
			return transportErr.Err.Error()
		}
		if transportErr.StatusCode != 0 {
			return fmt.Sprintf("server returned status %d", transportErr.StatusCode)
		}
		return "unknown server error"
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}
