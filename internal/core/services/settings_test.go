package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postador-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDashboardSettings(), settings)
	assert.Equal(t, domain.DefaultDashboardSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyBaseURL, "http://backend:5000/")
	_ = store.Set(KeyAPIToken, "secret")
	_ = store.Set(KeyAPITimeout, "15s")
	_ = store.Set(KeyRateLimit, int64(3))
	_ = store.Set(KeyPollInterval, "1m")
	_ = store.Set(KeyNotificationDuration, int64(2500))
	_ = store.Set(KeyPollWhileUnauthenticated, false)
	_ = store.Set(KeyDiscardStaleResponses, true)
	_ = store.Set(KeyTimeLayout, time.RFC3339)
	_ = store.Set(KeyTimeZone, "America/Sao_Paulo")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "http://backend:5000", settings.BaseURL)
	assert.Equal(t, "secret", settings.APIToken)
	assert.Equal(t, 15*time.Second, settings.APITimeout)
	assert.InDelta(t, 3.0, settings.RateLimit, 0.0001)
	assert.Equal(t, time.Minute, settings.PollInterval)
	assert.Equal(t, 2500*time.Millisecond, settings.NotificationDuration)
	assert.False(t, settings.PollWhileUnauthenticated)
	assert.True(t, settings.DiscardStaleResponses)
	assert.Equal(t, time.RFC3339, settings.TimeLayout)
	assert.Equal(t, "America/Sao_Paulo", settings.TimeZone)
}

func TestSettingsService_Get_InvalidDurationFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyPollInterval, "often")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPollInterval, settings.PollInterval)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultDashboardSettings()
	settings.BaseURL = "http://10.0.0.5:5000"
	settings.PollInterval = 45 * time.Second
	settings.DiscardStaleResponses = true

	require.NoError(t, service.Save(settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, got)
	assert.Equal(t, "45s", store.GetString(KeyPollInterval))
	_, hasToken := store.Get(KeyAPIToken)
	assert.False(t, hasToken)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultDashboardSettings()
	settings.PollInterval = 0

	err := service.Save(settings)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// failingConfigStore fails every Set.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (f *failingConfigStore) Set(_ string, _ any) error {
	return assert.AnError
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	service := NewSettingsService(&failingConfigStore{ConfigStore: memory.NewConfigStore()})

	err := service.Save(domain.DefaultDashboardSettings())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save api.base_url")
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s domain.DashboardSettings)
	}{
		{KeyBaseURL, "http://backend:8080/", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, "http://backend:8080", s.BaseURL)
		}},
		{KeyAPIToken, "tok", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, "tok", s.APIToken)
		}},
		{KeyAPITimeout, "20s", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, 20*time.Second, s.APITimeout)
		}},
		{KeyRateLimit, "2.5", func(t *testing.T, s domain.DashboardSettings) {
			assert.InDelta(t, 2.5, s.RateLimit, 0.0001)
		}},
		{KeyPollInterval, "10s", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, 10*time.Second, s.PollInterval)
		}},
		{KeyNotificationDuration, "3s", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, 3*time.Second, s.NotificationDuration)
		}},
		{KeyPollWhileUnauthenticated, "false", func(t *testing.T, s domain.DashboardSettings) {
			assert.False(t, s.PollWhileUnauthenticated)
		}},
		{KeyDiscardStaleResponses, "true", func(t *testing.T, s domain.DashboardSettings) {
			assert.True(t, s.DiscardStaleResponses)
		}},
		{KeyTimeLayout, "2006-01-02", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, "2006-01-02", s.TimeLayout)
		}},
		{KeyTimeZone, "UTC", func(t *testing.T, s domain.DashboardSettings) {
			assert.Equal(t, "UTC", s.TimeZone)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Set("search.mode", "hybrid"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyPollInterval, "soon"), domain.ErrValidation)
	assert.ErrorIs(t, service.Set(KeyPollInterval, "-5s"), domain.ErrValidation)
	assert.ErrorIs(t, service.Set(KeyBaseURL, "not a url"), domain.ErrValidation)
	assert.ErrorIs(t, service.Set(KeyDiscardStaleResponses, "maybe"), domain.ErrValidation)

	assert.NoError(t, service.Validate())
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 10)
	assert.Equal(t, KeyBaseURL, keys[0])
	keys[0] = "mutated"
	assert.Equal(t, KeyBaseURL, service.Keys()[0])
}

func TestSettingsService_List(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyAPIToken, "secret")
	_ = store.Set(KeyPollInterval, "45s")
	service := NewSettingsService(store)

	list, err := service.List()

	require.NoError(t, err)
	require.Len(t, list, len(service.Keys()))
	values := make(map[string]string, len(list))
	for i, s := range list {
		assert.Equal(t, service.Keys()[i], s.Key)
		values[s.Key] = s.Value
	}
	assert.Equal(t, "********", values[KeyAPIToken])
	assert.Equal(t, "45s", values[KeyPollInterval])
	assert.Equal(t, "10", values[KeyRateLimit])
	assert.Equal(t, "true", values[KeyPollWhileUnauthenticated])
	assert.Equal(t, domain.DefaultBaseURL, values[KeyBaseURL])
}

func TestSettingsService_Watch(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []domain.DashboardSettings
	require.NoError(t, service.Watch(ctx, func(s domain.DashboardSettings) {
		got = append(got, s)
	}))

	require.NoError(t, store.Set(KeyPollInterval, "10s"))

	require.Len(t, got, 1)
	assert.Equal(t, 10*time.Second, got[0].PollInterval)
}

func TestSettingsService_Watch_SkipsInvalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	require.NoError(t, service.Watch(ctx, func(domain.DashboardSettings) { calls++ }))

	require.NoError(t, store.Set(KeyTimeZone, "Not/AZone"))

	assert.Equal(t, 0, calls)
}

func TestSettingsService_Watch_Unsupported(t *testing.T) {
	// Embedding hides the memory store's Watch method.
	store := struct{ driven.ConfigStore }{memory.NewConfigStore()}
	service := NewSettingsService(store)

	err := service.Watch(context.Background(), func(domain.DashboardSettings) {})

	assert.ErrorIs(t, err, ErrWatchUnsupported)
}
