package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// secretKeys are read without echo and never printed.
var secretKeys = []string{"api.token"}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the client configuration stored in config.toml.

Running dashboards and watch sessions pick up changes to the dashboard
and display settings without a restart.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Change one setting",
	Long: `Change one setting by its config key, e.g.:

  postador settings set dashboard.poll_interval 1m
  postador settings set display.time_zone America/Sao_Paulo

When the value is omitted it is read from stdin; api.token is read
without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Walks through every setting, keeping the current value on empty input.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return ErrSettingsNotConfigured
	}

	settings, err := settingsService.List()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")

	section := ""
	for _, s := range settings {
		group, name, _ := strings.Cut(s.Key, ".")
		if group != section {
			section = group
			cmd.Println()
			cmd.Printf("[%s]\n", section)
		}
		value := s.Value
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %s: %s\n", name, value)
	}
	cmd.Println()

	status := "valid"
	if err := settingsService.Validate(); err != nil {
		status = "invalid: " + err.Error()
	}
	cmd.Printf("Status: %s\n", status)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return ErrSettingsNotConfigured
	}

	key := args[0]
	if !slices.Contains(settingsService.Keys(), key) {
		return fmt.Errorf("unknown setting %q, valid keys: %s", key, strings.Join(settingsService.Keys(), ", "))
	}

	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case slices.Contains(secretKeys, key):
		cmd.Printf("%s: ", key)
		in := cmd.InOrStdin()
		value = readPassword(in, bufio.NewReader(in))
		cmd.Println()
	default:
		cmd.Printf("%s: ", key)
		value = readLine(bufio.NewReader(cmd.InOrStdin()))
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	shown := value
	if slices.Contains(secretKeys, key) {
		shown = maskSecret(value)
	}
	cmd.Printf("%s set to %s\n", key, shown)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return ErrSettingsNotConfigured
	}

	current, err := settingsService.List()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("postador Setup Wizard")
	cmd.Println("=====================")
	cmd.Println("Press Enter to keep the value in brackets.")
	cmd.Println()

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)
	changed := 0
	for _, s := range current {
		cmd.Printf("%s [%s]: ", s.Key, s.Value)

		var input string
		if slices.Contains(secretKeys, s.Key) {
			input = readPassword(in, reader)
			cmd.Println()
		} else {
			input = readLine(reader)
		}
		if input == "" || input == s.Value {
			continue
		}

		if err := settingsService.Set(s.Key, input); err != nil {
			return fmt.Errorf("failed to set %s: %w", s.Key, err)
		}
		changed++
	}

	cmd.Println()
	cmd.Printf("%d setting(s) updated.\n", changed)
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads without echo when in is a terminal, else a line
// from reader.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
