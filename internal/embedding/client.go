package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client computes embeddings through an external embedding service that
// accepts {"model": ..., "prompt": ...} and answers {"embedding": [...]}.
//
// Client implements the Embedder interface.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient constructs a Client from Config.
// Missing fields are filled with package defaults before validation.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPTimeoutS == 0 {
		cfg.HTTPTimeoutS = DefaultHTTPTimeoutS
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed computes the embedding vector for the given text.
//
// An absent "embedding" field, a transport failure or a non-2xx status all
// return ErrNoEmbedding-wrapped errors; callers treat any failure here as
// fatal to the request per the degrade policy.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	payload, err := json.Marshal(embedRequest{Model: c.cfg.Model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEmbedding, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: service returned status %d", ErrNoEmbedding, resp.StatusCode)
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrNoEmbedding, err)
	}
	if len(parsed.Embedding) == 0 {
		return nil, fmt.Errorf("%w: response carried no embedding field", ErrNoEmbedding)
	}
	if c.cfg.Dimensions > 0 && len(parsed.Embedding) != c.cfg.Dimensions {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d", ErrNoEmbedding, c.cfg.Dimensions, len(parsed.Embedding))
	}

	return parsed.Embedding, nil
}
