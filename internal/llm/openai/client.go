package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/llm"
)

var completionSchema = llm.MustCompileSchema(llm.BuildCompletionJSONSchema())

var errNoChoices = errors.New("no choices in response")

// ExtractOrders implements llm.OrdersExtractor using a single vision chat/completions call.
// Failures are returned as an llm.CallError sentinel, never as an error.
func (c *Client) ExtractOrders(ctx context.Context, req llm.ExtractRequest) string {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"run_id", common.RunIDFromContext(ctx),
		"model", c.cfg.Model,
		"filename", req.Filename,
		"image_len", len(req.ImageDataURL),
	)

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": llm.BuildOrdersPrompt(req.Filename)},
					{"type": "image_url", "image_url": map[string]any{"url": req.ImageDataURL}},
				},
			},
		},
		"response_format": map[string]any{"type": "text"},
	}

	content, err := c.complete(ctx, body)
	if err != nil {
		c.logger.Error("llm.extract.failed",
			"req_id", rid, "filename", req.Filename, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CallError(err)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"filename", req.Filename,
		"reply", common.Truncate(content, constants.RawLogRunes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content
}

// Ping sends a text-only message and returns the reply. Used to check the key and model.
func (c *Client) Ping(ctx context.Context) (string, error) {
	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "user", "content": "You are a helpful assistant."},
		},
	}
	return c.complete(ctx, body)
}

// complete posts body to chat/completions within the configured timeout and returns
// the first choice's content, trimmed.
func (c *Client) complete(ctx context.Context, body map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return "", err
	}
	if err := llm.ValidateJSON(completionSchema, raw); err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", errNoChoices
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}
