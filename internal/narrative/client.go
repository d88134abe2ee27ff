// Package narrative adapts an OpenAI-compatible chat-completion endpoint to
// the core.NarrativeGenerator port. The generator is best-effort by contract:
// callers must survive every failure mode this client can produce.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/veridianhealth/riskengine/internal/platform/metrics"
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	cfg   Config
	httpc *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate performs a single completion call. One call, no retries; retry
// strategy (fallback model, deterministic substitute) belongs to the caller.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("narrative: encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("narrative: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.NarrativeFailures.WithLabelValues(c.cfg.Model).Inc()
		return "", fmt.Errorf("narrative: call %s: %w", c.cfg.Model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.NarrativeFailures.WithLabelValues(c.cfg.Model).Inc()
		// Read a little of the body for the log line; the caller discards it.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("narrative: %s returned %d: %s", c.cfg.Model, resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.NarrativeFailures.WithLabelValues(c.cfg.Model).Inc()
		return "", fmt.Errorf("narrative: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		metrics.NarrativeFailures.WithLabelValues(c.cfg.Model).Inc()
		return "", fmt.Errorf("narrative: %s returned no choices", c.cfg.Model)
	}

	return parsed.Choices[0].Message.Content, nil
}
