package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// AuthStatus probes whether the service holds platform credentials.
func (c *Client) AuthStatus(ctx context.Context) (domain.AuthStatus, error) {
	const op = "auth status"

	req, err := c.newRequest(ctx, http.MethodGet, pathAuthStatus, nil)
	if err != nil {
		return domain.AuthStatus{}, err
	}

	var resp authStatusResponse
	if err := c.do(op, req, &resp); err != nil {
		return domain.AuthStatus{}, err
	}
	if resp.Authenticated == nil {
		return domain.AuthStatus{}, fmt.Errorf("%s: %w: missing authenticated field", op, domain.ErrMalformedPayload)
	}
	return domain.AuthStatus{Authenticated: *resp.Authenticated}, nil
}

// Authenticate asks the service to run its authentication flow.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathAuth, nil)
	if err != nil {
		return "", err
	}

	var resp messageResponse
	if err := c.do("authenticate", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListScheduled returns the scheduled items in service order.
func (c *Client) ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error) {
	const op = "list scheduled"

	req, err := c.newRequest(ctx, http.MethodGet, pathList, nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := c.do(op, req, &resp); err != nil {
		return nil, err
	}
	if resp.Agendamentos == nil {
		return nil, fmt.Errorf("%s: %w: missing agendamentos field", op, domain.ErrMalformedPayload)
	}

	items := make([]domain.ScheduledItem, 0, len(resp.Agendamentos))
	for _, payload := range resp.Agendamentos {
		item, err := payload.toDomain(c.location)
		if err != nil {
			logger.Debug("item %s: %v", item.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// GenerateContent asks the service to generate metadata from a summary.
func (c *Client) GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error) {
	jsonBody, err := json.Marshal(generateRequest{Summary: summary})
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathGenerate, bytes.NewReader(jsonBody))
	if err != nil {
		return domain.GeneratedContent{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp generateResponse
	if err := c.do("generate content", req, &resp); err != nil {
		return domain.GeneratedContent{}, err
	}
	return domain.GeneratedContent{
		Title:       resp.Title,
		Description: resp.Description,
		Tags:        tagsString(resp.Tags),
	}, nil
}

// Schedule uploads the media file and creates a scheduling request.
// The file is streamed; it is never held in memory.
func (c *Client) Schedule(ctx context.Context, sr domain.ScheduleRequest) (domain.ScheduleReceipt, error) {
	const op = "schedule"

	file, err := os.Open(sr.MediaPath)
	if err != nil {
		return domain.ScheduleReceipt{}, fmt.Errorf("open video: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(c.writeScheduleForm(mw, sr, file))
	}()

	req, err := c.newRequest(ctx, http.MethodPost, pathSchedule, pr)
	if err != nil {
		_ = pr.Close()
		return domain.ScheduleReceipt{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp scheduleResponse
	if err := c.do(op, req, &resp); err != nil {
		_ = pr.Close()
		return domain.ScheduleReceipt{}, err
	}
	if resp.ID == "" {
		return domain.ScheduleReceipt{}, fmt.Errorf("%s: %w: missing id_agendamento field", op, domain.ErrMalformedPayload)
	}
	return domain.ScheduleReceipt{ID: string(resp.ID), Message: resp.Message}, nil
}

// writeScheduleForm writes the multipart body. Empty optional fields are
// omitted so the service applies its own defaults.
func (c *Client) writeScheduleForm(mw *multipart.Writer, sr domain.ScheduleRequest, file io.Reader) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", sr.Title},
		{"description", sr.Description},
		{"tags", sr.Tags},
		{"privacy", sr.Privacy},
		{"category", sr.Category},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := mw.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	if !sr.ScheduledAt.IsZero() {
		at := sr.ScheduledAt.In(c.location).Format(scheduledTimeLayout)
		if err := mw.WriteField("scheduled_time", at); err != nil {
			return fmt.Errorf("write scheduled_time: %w", err)
		}
	}

	part, err := mw.CreateFormFile("video", filepath.Base(sr.MediaPath))
	if err != nil {
		return fmt.Errorf("create video part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy video: %w", err)
	}
	return mw.Close()
}
