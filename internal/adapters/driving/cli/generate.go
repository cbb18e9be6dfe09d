package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/services"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate [summary]",
	Short: "Generate video metadata with AI",
	Long: `Asks the scheduling service's AI assistant for a title, description and
tags matching a short summary of the video. Nothing is scheduled.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the metadata as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if schedulingService == nil {
		return ErrSchedulingNotConfigured
	}

	content, err := schedulingService.GenerateContent(commandContext(cmd), strings.Join(args, " "))
	if err != nil {
		return aiError(err)
	}

	if generateJSON {
		data, err := json.MarshalIndent(map[string]string{
			"title":       content.Title,
			"description": content.Description,
			"tags":        content.Tags,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal content: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printContent(cmd, content)
	return nil
}

func printContent(cmd *cobra.Command, content domain.GeneratedContent) {
	cmd.Println(headerStyle.Render("Title"))
	cmd.Printf("  %s\n\n", content.Title)
	cmd.Println(headerStyle.Render("Description"))
	for _, line := range strings.Split(content.Description, "\n") {
		cmd.Printf("  %s\n", line)
	}
	cmd.Println()
	cmd.Println(headerStyle.Render("Tags"))
	cmd.Printf("  %s\n", content.Tags)
}

// aiError keeps validation messages as they are and prefixes service failures.
func aiError(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return errors.New(domain.UserMessage(err))
	}
	return errors.New(services.TextAIFailedPrefix + domain.UserMessage(err))
}
