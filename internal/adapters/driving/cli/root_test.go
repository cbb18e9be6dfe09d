package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
)

// MockSchedulingService implements driving.SchedulingService for CLI tests.
type MockSchedulingService struct {
	AuthStateFunc       func(ctx context.Context) (domain.AuthState, error)
	AuthenticateFunc    func(ctx context.Context) (string, error)
	ListScheduledFunc   func(ctx context.Context) ([]domain.ScheduledItem, error)
	GenerateContentFunc func(ctx context.Context, summary string) (domain.GeneratedContent, error)
	ScheduleFunc        func(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error)
}

func (m *MockSchedulingService) AuthState(ctx context.Context) (domain.AuthState, error) {
	if m.AuthStateFunc != nil {
		return m.AuthStateFunc(ctx)
	}
	return domain.AuthConnected, nil
}

func (m *MockSchedulingService) Authenticate(ctx context.Context) (string, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx)
	}
	return "Authentication complete!", nil
}

func (m *MockSchedulingService) ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error) {
	if m.ListScheduledFunc != nil {
		return m.ListScheduledFunc(ctx)
	}
	return []domain.ScheduledItem{}, nil
}

func (m *MockSchedulingService) GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, summary)
	}
	return domain.GeneratedContent{Title: "Generated", Description: "Body", Tags: "a,b"}, nil
}

func (m *MockSchedulingService) Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error) {
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx, req)
	}
	return domain.ScheduleReceipt{ID: "1"}, nil
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	GetFunc      func() (domain.DashboardSettings, error)
	SetFunc      func(key, value string) error
	ListFunc     func() ([]domain.Setting, error)
	WatchFunc    func(ctx context.Context, onChange func(domain.DashboardSettings)) error
	ValidateFunc func() error
}

func (m *MockSettingsService) Get() (domain.DashboardSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return domain.DefaultDashboardSettings(), nil
}

func (m *MockSettingsService) Save(domain.DashboardSettings) error {
	return nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *MockSettingsService) List() ([]domain.Setting, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []domain.Setting{
		{Key: "api.base_url", Value: "http://localhost:5000"},
		{Key: "api.token", Value: ""},
		{Key: "dashboard.poll_interval", Value: "30s"},
	}, nil
}

func (m *MockSettingsService) Watch(ctx context.Context, onChange func(domain.DashboardSettings)) error {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, onChange)
	}
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{"api.base_url", "api.token", "dashboard.poll_interval"}
}

func (m *MockSettingsService) Validate() error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc()
	}
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.DashboardSettings {
	return domain.DefaultDashboardSettings()
}

// MockDashboardFactory implements driving.DashboardFactory for CLI tests.
type MockDashboardFactory struct {
	NewDashboardFunc func(surfaces driven.Surfaces, rt driven.Runtime) (driving.Dashboard, error)
}

func (m *MockDashboardFactory) NewDashboard(surfaces driven.Surfaces, rt driven.Runtime) (driving.Dashboard, error) {
	if m.NewDashboardFunc != nil {
		return m.NewDashboardFunc(surfaces, rt)
	}
	return &MockDashboard{}, nil
}

// MockDashboard implements driving.Dashboard for CLI tests.
type MockDashboard struct {
	StartFunc       func()
	ReconfigureFunc func(settings domain.DashboardSettings)

	stopped bool
}

func (m *MockDashboard) Start() {
	if m.StartFunc != nil {
		m.StartFunc()
	}
}

func (m *MockDashboard) Reinitialize() {}

func (m *MockDashboard) Stop() {
	m.stopped = true
}

func (m *MockDashboard) Reconfigure(settings domain.DashboardSettings) {
	if m.ReconfigureFunc != nil {
		m.ReconfigureFunc(settings)
	}
}

func (m *MockDashboard) RefreshAuth() {}

func (m *MockDashboard) RefreshList() {}

func (m *MockDashboard) Authenticate() error {
	return nil
}

func (m *MockDashboard) Submit() error {
	return nil
}

func (m *MockDashboard) Generate() error {
	return nil
}

func (m *MockDashboard) AuthState() domain.AuthState {
	return domain.AuthConnected
}

func (m *MockDashboard) Notification() (domain.Notification, bool) {
	return domain.Notification{}, false
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// setupTestServices installs mocks and resets flag state.
// The returned function restores the previous globals.
func setupTestServices() func() {
	prevDashboard := dashboardFactory
	prevScheduling := schedulingService
	prevSettings := settingsService
	prevBuilder := builder
	prevNow := now
	prevTerminal := isTerminal

	SetServices(&Services{
		Dashboard:  &MockDashboardFactory{},
		Scheduling: &MockSchedulingService{},
		Settings:   &MockSettingsService{},
	})
	builder = nil
	now = func() time.Time { return fixedNow }
	isTerminal = func() bool { return false }
	resetFlags()

	return func() {
		dashboardFactory = prevDashboard
		schedulingService = prevScheduling
		settingsService = prevSettings
		builder = prevBuilder
		now = prevNow
		isTerminal = prevTerminal
		resetFlags()
	}
}

func resetFlags() {
	opts = Options{}
	listJSON, listStatus, listLimit = false, "", 0
	generateJSON = false
	scheduleOpts = scheduleFlags{privacy: "private", category: "22"}
	watchInterval = 0
	versionShort = false
	mcpPort, mcpHost = 0, "localhost"
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, args...)
}

func executeContext(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	// Cobra only fills a subcommand's context while it is nil, so a
	// context left over from an earlier execution would shadow ctx.
	setContextAll(rootCmd, ctx)

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

func setContextAll(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, sub := range cmd.Commands() {
		setContextAll(sub, ctx)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "postador", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config-dir", "api-url", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"tui", "watch", "status", "auth", "list", "generate", "schedule", "settings", "mcp", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_PrintsHelpWithoutTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_BuilderReceivesFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var got Options
	scheduling := &MockSchedulingService{}
	SetBuilder(func(_ context.Context, o Options) (*Services, error) {
		got = o
		return &Services{Scheduling: scheduling}, nil
	})

	_, err := execute(t, "--config-dir", "/tmp/p", "--api-url", "http://svc:9000", "-v", "status")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/p", APIURL: "http://svc:9000", Verbose: true}, got)
	assert.Same(t, scheduling, schedulingService)
}

func TestRootCmd_BuilderError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetBuilder(func(context.Context, Options) (*Services, error) {
		return nil, errors.New("bad config")
	})

	_, err := execute(t, "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad config")
}

func TestSetServices_Nil(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.Nil(t, dashboardFactory)
	assert.Nil(t, schedulingService)
	assert.Nil(t, settingsService)
}

func TestCommands_WithoutServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	tests := []struct {
		args []string
		want error
	}{
		{[]string{"status"}, ErrSchedulingNotConfigured},
		{[]string{"auth"}, ErrSchedulingNotConfigured},
		{[]string{"list"}, ErrSchedulingNotConfigured},
		{[]string{"generate", "x"}, ErrSchedulingNotConfigured},
		{[]string{"settings"}, ErrSettingsNotConfigured},
		{[]string{"watch"}, ErrDashboardNotConfigured},
		{[]string{"tui"}, ErrDashboardNotConfigured},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
