// Package mcp provides an MCP (Model Context Protocol) server adapter for postador.
// It lets AI assistants check the scheduling service, read the schedule,
// generate video metadata and queue uploads.
package mcp

import (
	"errors"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// ErrMissingSchedulingService is returned when the scheduling service is not provided.
var ErrMissingSchedulingService = errors.New("mcp: scheduling service is required")

// userError reports the user-facing message to the assistant while
// keeping the cause for errors.Is.
type userError struct {
	err error
}

func toolError(err error) error {
	return &userError{err: err}
}

func (e *userError) Error() string {
	return domain.UserMessage(e.err)
}

func (e *userError) Unwrap() error {
	return e.err
}
