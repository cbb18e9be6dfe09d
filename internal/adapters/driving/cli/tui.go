package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/adapters/driven/eventloop"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive scheduling dashboard.

The dashboard shows the authentication state, the scheduled videos
(refreshed periodically) and the scheduling form with AI assist.

Controls:
  Tab/Shift+Tab - Move between fields
  Ctrl+S        - Schedule the video
  Ctrl+G        - Generate metadata with AI
  Ctrl+O        - Authenticate with YouTube
  Ctrl+R        - Refresh the list
  F2            - Settings
  F1            - Toggle help
  Ctrl+C        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if dashboardFactory == nil {
		return ErrDashboardNotConfigured
	}

	// Logs would corrupt the alternate screen.
	if logFile != "" {
		closer, err := logger.RedirectToFile(logFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	ports := tui.NewPorts(dashboardFactory, settingsService)

	if err := tui.Run(ctx, ports, eventloop.New(ctx)); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
