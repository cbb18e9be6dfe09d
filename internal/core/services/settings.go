package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// ErrWatchUnsupported is returned when the config store cannot be watched.
var ErrWatchUnsupported = errors.New("services: config store does not support watching")

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyBaseURL                  = "api.base_url"
	KeyAPIToken                 = "api.token"
	KeyAPITimeout               = "api.timeout"
	KeyRateLimit                = "api.rate_limit"
	KeyPollInterval             = "dashboard.poll_interval"
	KeyNotificationDuration     = "dashboard.notification_duration"
	KeyPollWhileUnauthenticated = "dashboard.poll_while_unauthenticated"
	KeyDiscardStaleResponses    = "dashboard.discard_stale_responses"
	KeyTimeLayout               = "display.time_layout"
	KeyTimeZone                 = "display.time_zone"
)

var settingKeys = []string{
	KeyBaseURL,
	KeyAPIToken,
	KeyAPITimeout,
	KeyRateLimit,
	KeyPollInterval,
	KeyNotificationDuration,
	KeyPollWhileUnauthenticated,
	KeyDiscardStaleResponses,
	KeyTimeLayout,
	KeyTimeZone,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or unreadable values fall back
// to the defaults.
func (s *SettingsService) Get() (domain.DashboardSettings, error) {
	defaults := domain.DefaultDashboardSettings()

	return domain.DashboardSettings{
		BaseURL:                  strings.TrimRight(s.getString(KeyBaseURL, defaults.BaseURL), "/"),
		APIToken:                 s.configStore.GetString(KeyAPIToken),
		APITimeout:               s.getDuration(KeyAPITimeout, defaults.APITimeout),
		RateLimit:                s.getFloat(KeyRateLimit, defaults.RateLimit),
		PollInterval:             s.getDuration(KeyPollInterval, defaults.PollInterval),
		NotificationDuration:     s.getDuration(KeyNotificationDuration, defaults.NotificationDuration),
		PollWhileUnauthenticated: s.getBool(KeyPollWhileUnauthenticated, defaults.PollWhileUnauthenticated),
		DiscardStaleResponses:    s.getBool(KeyDiscardStaleResponses, defaults.DiscardStaleResponses),
		TimeLayout:               s.getString(KeyTimeLayout, defaults.TimeLayout),
		TimeZone:                 s.configStore.GetString(KeyTimeZone),
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings domain.DashboardSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		KeyBaseURL:                  settings.BaseURL,
		KeyAPITimeout:               settings.APITimeout.String(),
		KeyRateLimit:                settings.RateLimit,
		KeyPollInterval:             settings.PollInterval.String(),
		KeyNotificationDuration:     settings.NotificationDuration.String(),
		KeyPollWhileUnauthenticated: settings.PollWhileUnauthenticated,
		KeyDiscardStaleResponses:    settings.DiscardStaleResponses,
		KeyTimeLayout:               settings.TimeLayout,
		KeyTimeZone:                 settings.TimeZone,
	}
	if settings.APIToken != "" {
		values[KeyAPIToken] = settings.APIToken
	}

	for _, key := range settingKeys {
		val, ok := values[key]
		if !ok {
			continue
		}
		if err := s.configStore.Set(key, val); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set updates one setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case KeyBaseURL:
		settings.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
		stored = settings.BaseURL
	case KeyAPIToken:
		settings.APIToken = value
		stored = value
	case KeyAPITimeout:
		settings.APITimeout, err = time.ParseDuration(value)
		stored = value
	case KeyRateLimit:
		settings.RateLimit, err = strconv.ParseFloat(value, 64)
		stored = settings.RateLimit
	case KeyPollInterval:
		settings.PollInterval, err = time.ParseDuration(value)
		stored = value
	case KeyNotificationDuration:
		settings.NotificationDuration, err = time.ParseDuration(value)
		stored = value
	case KeyPollWhileUnauthenticated:
		settings.PollWhileUnauthenticated, err = strconv.ParseBool(value)
		stored = settings.PollWhileUnauthenticated
	case KeyDiscardStaleResponses:
		settings.DiscardStaleResponses, err = strconv.ParseBool(value)
		stored = settings.DiscardStaleResponses
	case KeyTimeLayout:
		settings.TimeLayout = value
		stored = value
	case KeyTimeZone:
		settings.TimeZone = value
		stored = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return &domain.ValidationError{Field: key, Message: fmt.Sprintf("invalid value %q: %v", value, err)}
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// List returns every setting in display order with its effective value.
// The API token is masked.
func (s *SettingsService) List() ([]domain.Setting, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	token := ""
	if settings.APIToken != "" {
		token = "********"
	}
	values := map[string]string{
		KeyBaseURL:                  settings.BaseURL,
		KeyAPIToken:                 token,
		KeyAPITimeout:               settings.APITimeout.String(),
		KeyRateLimit:                strconv.FormatFloat(settings.RateLimit, 'f', -1, 64),
		KeyPollInterval:             settings.PollInterval.String(),
		KeyNotificationDuration:     settings.NotificationDuration.String(),
		KeyPollWhileUnauthenticated: strconv.FormatBool(settings.PollWhileUnauthenticated),
		KeyDiscardStaleResponses:    strconv.FormatBool(settings.DiscardStaleResponses),
		KeyTimeLayout:               settings.TimeLayout,
		KeyTimeZone:                 settings.TimeZone,
	}

	list := make([]domain.Setting, 0, len(settingKeys))
	for _, key := range settingKeys {
		list = append(list, domain.Setting{Key: key, Value: values[key]})
	}
	return list, nil
}

// Watch calls onChange with the reloaded settings after every external
// config change. Changes that fail validation are logged and skipped.
func (s *SettingsService) Watch(ctx context.Context, onChange func(domain.DashboardSettings)) error {
	watcher, ok := s.configStore.(driven.ConfigWatcher)
	if !ok {
		return ErrWatchUnsupported
	}
	return watcher.Watch(ctx, func() {
		settings, err := s.Get()
		if err != nil {
			logger.Warn("reload settings: %v", err)
			return
		}
		if err := settings.Validate(); err != nil {
			logger.Warn("ignoring invalid config change: %v", err)
			return
		}
		logger.Info("settings reloaded from %s", s.configStore.Path())
		onChange(settings)
	})
}

// Keys lists the supported config keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.DashboardSettings {
	return domain.DefaultDashboardSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// getDuration reads a duration string such as "30s". Integers are
// taken as milliseconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	if str, ok := val.(string); ok {
		d, err := time.ParseDuration(str)
		if err != nil {
			logger.Warn("config %s: %v", key, err)
			return defaultVal
		}
		return d
	}
	if ms := s.configStore.GetInt(key); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultVal
}
