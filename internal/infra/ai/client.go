// Package ai talks to a hosted text-generation endpoint over plain JSON.
// One prompt in, one completion out; there is no retry or streaming.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"gocery/internal/pkg/config"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/commands"
)

var (
	ErrNotConfigured   = errs.New("assistant endpoint is not configured")
	ErrBadStatus       = errs.New("assistant endpoint returned a non-200 status")
	ErrEmptyCompletion = errs.New("assistant returned an empty completion")
)

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

type Client struct {
	cfg  config.AssistantConfig
	http *http.Client
}

func NewClient(cfg config.AssistantConfig) commands.AssistantGateway {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Endpoint == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(completionRequest{Model: c.cfg.Model, Prompt: prompt})
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return "", ErrBadStatus
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode completion response")
	}
	if out.Text == "" {
		return "", ErrEmptyCompletion
	}
	return out.Text, nil
}
