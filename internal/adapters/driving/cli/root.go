// Package cli implements the postador command line: the interactive
// dashboard, a headless watch mode and one-shot commands against the
// scheduling service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Options are the global flags, handed to the Builder once parsed.
type Options struct {
	// ConfigDir overrides the config directory. Empty means the default.
	ConfigDir string

	// APIURL overrides api.base_url for this run.
	APIURL string

	// Verbose enables debug logging.
	Verbose bool
}

// Services are the driving ports the commands use.
type Services struct {
	Dashboard  driving.DashboardFactory
	Scheduling driving.SchedulingService
	Settings   driving.SettingsService

	// LogFile receives logs while the full-screen UI owns the terminal.
	LogFile string
}

// Builder creates the services from the parsed global flags.
type Builder func(ctx context.Context, opts Options) (*Services, error)

// Errors returned when a command runs without its service.
var (
	ErrDashboardNotConfigured  = errors.New("dashboard not configured")
	ErrSchedulingNotConfigured = errors.New("scheduling service not configured")
	ErrSettingsNotConfigured   = errors.New("settings service not configured")
)

var (
	opts    Options
	builder Builder

	dashboardFactory  driving.DashboardFactory
	schedulingService driving.SchedulingService
	settingsService   driving.SettingsService
	logFile           string
)

// isTerminal reports whether the interactive UI can run.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "postador",
	Short: "Schedule YouTube uploads from the terminal",
	Long: `postador is a terminal client for the video scheduling service.

It shows the service's YouTube authentication state, keeps the list of
scheduled videos up to date, generates titles and descriptions with AI
and queues new uploads.

Run without a subcommand in a terminal to open the interactive dashboard.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default ~/.postador)")
	flags.StringVar(&opts.APIURL, "api-url", "", "scheduling service URL, overrides api.base_url")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
}

// SetBuilder sets the function that creates the services after flag parsing.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices injects the services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	dashboardFactory = s.Dashboard
	schedulingService = s.Scheduling
	settingsService = s.Settings
	logFile = s.LogFile
}

// Version returns the build version.
func Version() string {
	return version
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if builder == nil {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := builder(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(s)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
