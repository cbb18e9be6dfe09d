package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/adapters/driven/eventloop"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the schedule without the interactive UI",
	Long: `Runs the dashboard headless: prints the authentication state, then the
schedule every time it changes, refreshing on the configured poll
interval until interrupted. Config file changes apply live.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 0, "refresh interval (default dashboard.poll_interval)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if dashboardFactory == nil {
		return ErrDashboardNotConfigured
	}
	if watchInterval < 0 {
		return fmt.Errorf("invalid interval %s", watchInterval)
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	loop := eventloop.New(ctx)
	out := newConsole(cmd.OutOrStdout(), now)
	dashboard, err := dashboardFactory.NewDashboard(out.surfaces(), loop)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	apply := func(settings domain.DashboardSettings) {
		if watchInterval > 0 {
			settings.PollInterval = watchInterval
		}
		loop.Post(func() { dashboard.Reconfigure(settings) })
	}

	if watchInterval > 0 {
		apply(displaySettings())
	}
	loop.Post(dashboard.Start)

	if settingsService != nil {
		if err := settingsService.Watch(ctx, apply); err != nil {
			logger.Warn("config hot reload disabled: %v", err)
		}
	}

	err = loop.Run(ctx)
	// The loop has returned, so this goroutine owns the dashboard.
	dashboard.Stop()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
