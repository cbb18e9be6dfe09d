package cli

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/services"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the service's authentication state",
	Long: `Probes the scheduling service and reports whether it is connected to
YouTube. Exits with an error when the service cannot be reached.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate the service with YouTube",
	Long: `Runs the scheduling service's YouTube authentication flow. The service
opens the consent page on its own host; the command returns once the flow
has completed.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(authCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if schedulingService == nil {
		return ErrSchedulingNotConfigured
	}

	state, err := schedulingService.AuthState(commandContext(cmd))
	cmd.Printf("Service: %s\n", stateStyle(state).Render(state.Label()))
	if err != nil {
		cmd.Println(mutedStyle.Render(services.TextServerOffline))
		return errors.New(domain.UserMessage(err))
	}
	if state == domain.AuthDisconnected {
		cmd.Println("Run 'postador auth' to connect a YouTube account.")
	}
	return nil
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if schedulingService == nil {
		return ErrSchedulingNotConfigured
	}

	cmd.Println("Authenticating...")
	msg, err := schedulingService.Authenticate(commandContext(cmd))
	if err != nil {
		return errors.New(services.TextAuthFailedPrefix + domain.UserMessage(err))
	}
	cmd.Println(successStyle.Render(msg))
	return nil
}

func stateStyle(state domain.AuthState) lipgloss.Style {
	switch state {
	case domain.AuthConnected:
		return successStyle
	case domain.AuthUnreachable:
		return errorStyle
	default:
		return mutedStyle
	}
}
