package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"menucatalog/config"
)

// Describer generates one-sentence menu item descriptions through an
// OpenAI-compatible chat/completions endpoint. Callers are expected to
// treat any error as non-fatal and substitute their own fallback text.
type Describer struct {
	cfg    config.AIConfig
	client *http.Client
}

// NewDescriber creates a describer from the AI section of the config.
func NewDescriber(cfg *config.Config) *Describer {
	return &Describer{
		cfg:    cfg.AI,
		client: &http.Client{Timeout: cfg.AI.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Describe asks the model for a single-sentence description of a dish.
func (d *Describer) Describe(ctx context.Context, name, category string, ingredients []string) (string, error) {
	if !d.cfg.Enabled {
		return "", fmt.Errorf("description generator disabled")
	}
	if d.cfg.APIKey == "" {
		return "", fmt.Errorf("description generator has no api key")
	}

	prompt := fmt.Sprintf("Describe food: %s (%s). Ingredients: %s. One sentence.",
		name, category, strings.Join(ingredients, ","))

	body, err := json.Marshal(chatRequest{
		Model:    d.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	url := strings.TrimRight(d.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.cfg.APIKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach ai service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ai service returned %d: %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse ai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai response has no choices")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("ai response is empty")
	}
	return text, nil
}
