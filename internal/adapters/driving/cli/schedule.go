package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/services"
)

// Privacy statuses accepted by YouTube.
var privacyOptions = []string{"private", "unlisted", "public"}

// scheduleFlags holds the schedule command's flags.
type scheduleFlags struct {
	title       string
	description string
	tags        string
	privacy     string
	category    string
	at          string
	summary     string
}

var scheduleOpts scheduleFlags

var scheduleCmd = &cobra.Command{
	Use:   "schedule <video>",
	Short: "Schedule a video for publication",
	Long: `Uploads a local video file to the scheduling service and queues it for
publication on YouTube at the given time.

Times are read as RFC 3339 or as "YYYY-MM-DD HH:MM" in the configured
display time zone. With --summary, missing metadata is generated by AI
before the upload.

Examples:
  postador schedule clip.mp4 --title "Launch" --at "2026-03-01 18:30"
  postador schedule clip.mp4 --summary "unboxing the new camera" --at 2026-03-01T18:30:00-03:00`,
	Args: cobra.ExactArgs(1),
	RunE: runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.StringVarP(&scheduleOpts.title, "title", "t", "", "video title")
	f.StringVarP(&scheduleOpts.description, "description", "d", "", "video description")
	f.StringVar(&scheduleOpts.tags, "tags", "", "comma separated tags")
	f.StringVar(&scheduleOpts.privacy, "privacy", privacyOptions[0], "privacy status (private, unlisted, public)")
	f.StringVar(&scheduleOpts.category, "category", "22", "YouTube category ID")
	f.StringVar(&scheduleOpts.at, "at", "", "publication time")
	f.StringVar(&scheduleOpts.summary, "summary", "", "generate missing metadata with AI from this summary")
	_ = scheduleCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if schedulingService == nil {
		return ErrSchedulingNotConfigured
	}
	if !slices.Contains(privacyOptions, scheduleOpts.privacy) {
		return fmt.Errorf("invalid privacy %q: use one of %v", scheduleOpts.privacy, privacyOptions)
	}

	loc, err := displaySettings().Location()
	if err != nil {
		loc = time.Local
	}
	at, err := domain.ParseScheduleTime(scheduleOpts.at, loc)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	media, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve video path: %w", err)
	}

	req := domain.ScheduleRequest{
		Title:       scheduleOpts.title,
		Description: scheduleOpts.description,
		Tags:        scheduleOpts.tags,
		Privacy:     scheduleOpts.privacy,
		Category:    scheduleOpts.category,
		ScheduledAt: at,
		MediaPath:   media,
	}

	ctx := commandContext(cmd)
	if scheduleOpts.summary != "" {
		content, err := schedulingService.GenerateContent(ctx, scheduleOpts.summary)
		if err != nil {
			return aiError(err)
		}
		req = withGenerated(req, content)
		cmd.Println(mutedStyle.Render(services.TextContentGenerated))
	}

	cmd.Printf("%s %s\n", services.LabelSubmitting, req.Title)
	receipt, err := schedulingService.Schedule(ctx, req)
	if err != nil {
		return errors.New(services.TextScheduleFailed + domain.UserMessage(err))
	}

	cmd.Println(successStyle.Render(fmt.Sprintf(services.TextScheduled, receipt.ID)))
	return nil
}

// withGenerated fills the fields the user left empty.
func withGenerated(req domain.ScheduleRequest, content domain.GeneratedContent) domain.ScheduleRequest {
	if req.Title == "" {
		req.Title = content.Title
	}
	if req.Description == "" {
		req.Description = content.Description
	}
	if req.Tags == "" {
		req.Tags = content.Tags
	}
	return req
}
