package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Default dashboard settings.
const (
	DefaultBaseURL              = "http://localhost:5000"
	DefaultRateLimit            = 10.0
	DefaultPollInterval         = 30 * time.Second
	DefaultNotificationDuration = 5 * time.Second
	DefaultTimeLayout           = "02/01/2006, 15:04:05"
)

// DashboardSettings holds the user's configuration for the dashboard and
// the remote scheduling service.
type DashboardSettings struct {
	// BaseURL is the root of the scheduling service, e.g. http://localhost:5000.
	BaseURL string

	// APIToken is an optional bearer token attached to every request.
	APIToken string

	// APITimeout bounds each request. Zero means no timeout.
	APITimeout time.Duration

	// RateLimit is the client-side request budget per second. Zero or
	// negative disables throttling.
	RateLimit float64

	// PollInterval is the period of the background list refresh.
	PollInterval time.Duration

	// NotificationDuration is how long a notification stays visible.
	NotificationDuration time.Duration

	// PollWhileUnauthenticated keeps the background refresh running while
	// the last rendered auth state is not connected.
	PollWhileUnauthenticated bool

	// DiscardStaleResponses drops list responses that resolve after a
	// newer refresh was issued.
	DiscardStaleResponses bool

	// TimeLayout is the Go time layout used to render scheduled times.
	TimeLayout string

	// TimeZone is an IANA zone name. Empty means the local zone.
	TimeZone string
}

// DefaultDashboardSettings returns the settings used when nothing is configured.
func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		BaseURL:                  DefaultBaseURL,
		RateLimit:                DefaultRateLimit,
		PollInterval:             DefaultPollInterval,
		NotificationDuration:     DefaultNotificationDuration,
		PollWhileUnauthenticated: true,
		TimeLayout:               DefaultTimeLayout,
	}
}

// Validate checks the settings for values the dashboard cannot run with.
func (s DashboardSettings) Validate() error {
	var errs []error

	u, err := url.Parse(s.BaseURL)
	switch {
	case strings.TrimSpace(s.BaseURL) == "":
		errs = append(errs, &ValidationError{Field: "api.base_url", Message: "base URL is required"})
	case err != nil || u.Scheme == "" || u.Host == "":
		errs = append(errs, &ValidationError{Field: "api.base_url", Message: fmt.Sprintf("invalid base URL %q", s.BaseURL)})
	}
	if s.APITimeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "timeout must not be negative"})
	}
	if s.PollInterval <= 0 {
		errs = append(errs, &ValidationError{Field: "dashboard.poll_interval", Message: "poll interval must be positive"})
	}
	if s.NotificationDuration <= 0 {
		errs = append(errs, &ValidationError{Field: "dashboard.notification_duration", Message: "notification duration must be positive"})
	}
	if strings.TrimSpace(s.TimeLayout) == "" {
		errs = append(errs, &ValidationError{Field: "display.time_layout", Message: "time layout is required"})
	}
	if _, err := s.Location(); err != nil {
		errs = append(errs, &ValidationError{Field: "display.time_zone", Message: err.Error()})
	}

	return errors.Join(errs...)
}

// Location resolves TimeZone. Empty means time.Local.
func (s DashboardSettings) Location() (*time.Location, error) {
	if s.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", s.TimeZone, err)
	}
	return loc, nil
}

// ThrottleDescription returns a human-readable form of the rate limit.
func (s DashboardSettings) ThrottleDescription() string {
	if s.RateLimit <= 0 {
		return "Unlimited"
	}
	return fmt.Sprintf("%g req/s", s.RateLimit)
}

// PollDescription returns a human-readable form of the poll policy.
func (s DashboardSettings) PollDescription() string {
	if s.PollInterval <= 0 {
		return unknownDescription
	}
	if s.PollWhileUnauthenticated {
		return "every " + s.PollInterval.String()
	}
	return "every " + s.PollInterval.String() + " while connected"
}

// Setting is one config key with its effective value in textual form.
type Setting struct {
	Key   string
	Value string
}
