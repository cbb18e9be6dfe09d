package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// errorCarrier is a decoded body that may carry an error field.
type errorCarrier interface {
	errorMessage() string
}

// errorPayload is the service's {error} field, present on failures.
type errorPayload struct {
	Error string `json:"error,omitempty"`
}

func (p *errorPayload) errorMessage() string {
	return p.Error
}

// authStatusResponse is the GET /api/auth/status response format.
type authStatusResponse struct {
	errorPayload
	Authenticated *bool `json:"authenticated"`
}

// messageResponse is the GET /api/auth response format.
type messageResponse struct {
	errorPayload
	Message string `json:"message"`
}

// listResponse is the GET /api/agendamentos response format.
type listResponse struct {
	errorPayload
	Agendamentos []itemPayload `json:"agendamentos"`
}

// itemPayload is one scheduled item as the service returns it.
type itemPayload struct {
	ID            flexibleID `json:"id"`
	Title         string     `json:"titulo"`
	ScheduledAt   string     `json:"data_agendamento"`
	Status        string     `json:"status"`
	Platform      string     `json:"plataforma,omitempty"`
	PostedVideoID string     `json:"id_video_postado,omitempty"`
	ErrorMessage  string     `json:"mensagem_erro,omitempty"`
}

// generateRequest is the POST /api/generate-content request format.
type generateRequest struct {
	Summary string `json:"summary"`
}

// generateResponse is the POST /api/generate-content response format.
type generateResponse struct {
	errorPayload
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        any    `json:"tags"`
}

// scheduleResponse is the POST /api/schedule/youtube response format.
type scheduleResponse struct {
	errorPayload
	ID      flexibleID `json:"id_agendamento"`
	Message string     `json:"message"`
}

// flexibleID accepts a JSON number or string identifier.
type flexibleID string

// UnmarshalJSON decodes numbers verbatim and strings unquoted.
func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = flexibleID(n.String())
	}
	return nil
}

// timestampLayouts are tried in order for timestamps with a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
}

// naiveLayouts are tried in order for timestamps without a zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// scheduledTimeLayout is the naive ISO 8601 form sent to the service.
const scheduledTimeLayout = "2006-01-02T15:04:05"

// parseTimestamp parses the service's ISO 8601 timestamps. Timestamps
// without a zone are interpreted in loc.
func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// toDomain converts the payload. An unparseable timestamp leaves
// ScheduledAt zero.
func (p itemPayload) toDomain(loc *time.Location) (domain.ScheduledItem, error) {
	at, err := parseTimestamp(p.ScheduledAt, loc)
	return domain.ScheduledItem{
		ID:            string(p.ID),
		Title:         p.Title,
		ScheduledAt:   at,
		Status:        domain.ScheduleStatus(p.Status),
		Platform:      p.Platform,
		PostedVideoID: p.PostedVideoID,
		ErrorMessage:  p.ErrorMessage,
	}, err
}

// tagsString renders the tags field, which the AI may return as a
// string or a list.
func tagsString(tags any) string {
	switch v := tags.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
