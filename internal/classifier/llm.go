package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// completionClient calls an OpenAI-compatible chat completion endpoint.
type completionClient struct {
	cfg        Config
	httpClient *http.Client
}

func newCompletionClient(cfg Config) *completionClient {
	return &completionClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
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

// tokenUsage carries the token counters reported by the completion service.
// The counters are logged for cost visibility and never used for control
// flow.
type tokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage tokenUsage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// chat sends the system and user messages and returns the first completion's
// text plus token usage. One attempt only; retry policy belongs to the
// caller and the caller has chosen not to retry.
func (c *completionClient) chat(ctx context.Context, system, user string) (string, tokenUsage, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", tokenUsage{}, fmt.Errorf("classifier: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", tokenUsage{}, fmt.Errorf("classifier: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", tokenUsage{}, fmt.Errorf("classifier: completion call failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", tokenUsage{}, fmt.Errorf("classifier: malformed completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", tokenUsage{}, fmt.Errorf("classifier: completion service error: %s", parsed.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", tokenUsage{}, fmt.Errorf("classifier: completion service returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", tokenUsage{}, fmt.Errorf("classifier: completion response carried no choices")
	}

	return parsed.Choices[0].Message.Content, parsed.Usage, nil
}
