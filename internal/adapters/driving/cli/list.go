package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/services"
)

var (
	listJSON   bool
	listStatus string
	listLimit  int
)

// now is the clock used for relative times.
var now = time.Now

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List scheduled videos",
	Long: `Lists the videos queued on the scheduling service, in the order the
service returns them, with their publication time and status.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output items as JSON")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "only show items with this status (agendado, processando, postado, erro)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of items (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if schedulingService == nil {
		return ErrSchedulingNotConfigured
	}

	items, err := schedulingService.ListScheduled(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list scheduled videos: %w", err)
	}
	items = filterItems(items, listStatus, listLimit)

	if listJSON {
		return outputListJSON(cmd, items)
	}

	settings := displaySettings()
	loc, err := settings.Location()
	if err != nil {
		loc = time.Local
	}
	rows := services.BuildRows(items, settings.TimeLayout, loc)
	cmd.Println(renderRows(rows, now()))
	return nil
}

func filterItems(items []domain.ScheduledItem, status string, limit int) []domain.ScheduledItem {
	out := make([]domain.ScheduledItem, 0, len(items))
	for i := range items {
		if status != "" && string(items[i].Status) != status {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, items[i])
	}
	return out
}

type itemJSON struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	Platform      string    `json:"platform,omitempty"`
	PostedVideoID string    `json:"posted_video_id,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

func outputListJSON(cmd *cobra.Command, items []domain.ScheduledItem) error {
	out := make([]itemJSON, len(items))
	for i := range items {
		out[i] = itemJSON{
			ID:            items[i].ID,
			Title:         items[i].Title,
			ScheduledAt:   items[i].ScheduledAt,
			Status:        items[i].Status.String(),
			Platform:      items[i].Platform,
			PostedVideoID: items[i].PostedVideoID,
			ErrorMessage:  items[i].ErrorMessage,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// displaySettings falls back to defaults when no settings are available.
func displaySettings() domain.DashboardSettings {
	if settingsService == nil {
		return domain.DefaultDashboardSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultDashboardSettings()
	}
	return settings
}
