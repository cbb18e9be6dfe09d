package driving

import (
	"context"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, defaults filled in for missing keys.
	Get() (domain.DashboardSettings, error)

	// Save persists settings.
	Save(settings domain.DashboardSettings) error

	// Set updates one setting by its config key, e.g. "api.base_url".
	Set(key, value string) error

	// List returns every setting with its effective value, secrets masked.
	List() ([]domain.Setting, error)

	// Watch calls onChange with the reloaded settings after every change
	// made outside the process, until ctx is cancelled.
	Watch(ctx context.Context, onChange func(domain.DashboardSettings)) error

	// Keys lists the supported config keys in display order.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.DashboardSettings
}
