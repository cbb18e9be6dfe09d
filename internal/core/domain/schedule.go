package domain

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleStatus is the lifecycle status the service reports for an item.
// The set is open: values outside the known constants are rendered verbatim.
type ScheduleStatus string

// Statuses written by the scheduling service and its upload worker.
const (
	// StatusScheduled is waiting for its publication time.
	StatusScheduled ScheduleStatus = "agendado"

	// StatusProcessing has been picked up by the upload worker.
	StatusProcessing ScheduleStatus = "processando"

	// StatusPosted was uploaded successfully.
	StatusPosted ScheduleStatus = "postado"

	// StatusFailed failed to upload.
	StatusFailed ScheduleStatus = "erro"
)

// String returns the string representation.
func (s ScheduleStatus) String() string {
	return string(s)
}

// IsKnown returns true if the status is one the service is known to emit.
func (s ScheduleStatus) IsKnown() bool {
	switch s {
	case StatusScheduled, StatusProcessing, StatusPosted, StatusFailed:
		return true
	default:
		return false
	}
}

// Badge returns the badge key used to style the status.
func (s ScheduleStatus) Badge() string {
	return "status-" + strings.ToLower(strings.TrimSpace(string(s)))
}

// ScheduledItem is a video queued for future publication.
// It is owned by the remote service and only mirrored for one render.
type ScheduledItem struct {
	// ID is the opaque identifier assigned by the service.
	ID string

	// Title is the video title.
	Title string

	// ScheduledAt is when the video should be published.
	ScheduledAt time.Time

	// Status is the publication status.
	Status ScheduleStatus

	// Platform is the target platform (currently always "youtube").
	Platform string

	// PostedVideoID is the platform video ID once posted.
	PostedVideoID string

	// ErrorMessage is the worker's failure reason, if any.
	ErrorMessage string
}

// ScheduleRequest is a snapshot of the scheduling form taken at dispatch.
type ScheduleRequest struct {
	Title       string
	Description string

	// Tags is the comma separated tag string, sent as-is.
	Tags string

	// Privacy is the YouTube privacy status (private, unlisted, public).
	Privacy string

	// Category is the YouTube category ID.
	Category string

	// ScheduledAt is the requested publication time. Zero when the form
	// value could not be parsed; the service rejects it.
	ScheduledAt time.Time

	// MediaPath is the local path of the video file to upload.
	MediaPath string
}

// IsZero returns true if every field of the request is empty.
func (r ScheduleRequest) IsZero() bool {
	return r.Title == "" && r.Description == "" && r.Tags == "" &&
		r.Privacy == "" && r.Category == "" && r.ScheduledAt.IsZero() &&
		r.MediaPath == ""
}

// ScheduleReceipt is the service's answer to a successful schedule request.
type ScheduleReceipt struct {
	// ID is the server-assigned identifier of the new item.
	ID string

	// Message is the service's confirmation text.
	Message string
}

// GeneratedContent is AI generated video metadata.
type GeneratedContent struct {
	Title       string
	Description string
	Tags        string
}

// ScheduleInputLayout is the layout users type publication times in.
const ScheduleInputLayout = "2006-01-02 15:04"

var scheduleInputLayouts = []string{
	ScheduleInputLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseScheduleTime reads a user supplied publication time. RFC 3339
// values keep their offset; the other accepted layouts are read in loc.
func ParseScheduleTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range scheduleInputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{
		Field:   "scheduled_time",
		Message: fmt.Sprintf("unrecognised time %q, use %s", value, ScheduleInputLayout),
	}
}
