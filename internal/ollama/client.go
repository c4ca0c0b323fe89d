package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	// DefaultModel is the recommended embedding model
	DefaultModel = "nomic-embed-text"
	// DefaultURL is the default Ollama API endpoint
	DefaultURL = "http://localhost:11434"

	requestTimeout = 30 * time.Second
)

// ErrEmptyText is returned when asked to embed blank input
var ErrEmptyText = errors.New("text cannot be empty")

// Client embeds memory fragments through a local Ollama server
type Client struct {
	client *api.Client
	model  string
}

// NewClient creates a client for the Ollama server at rawURL
func NewClient(rawURL, model string) (*Client, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}

	base, err := url.Parse(rawURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid ollama url %q", rawURL)
	}

	return &Client{
		client: api.NewClient(base, &http.Client{Timeout: requestTimeout}),
		model:  model,
	}, nil
}

// Model returns the embedding model in use
func (c *Client) Model() string {
	return c.model
}

// Ping checks that the server answers
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("ollama is not reachable: %w", err)
	}
	return nil
}

// Embed returns the embedding vector for text
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	resp, err := c.client.Embed(ctx, &api.EmbedRequest{
		Model: c.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	vec := make([]float64, len(resp.Embeddings[0]))
	for i, v := range resp.Embeddings[0] {
		vec[i] = float64(v)
	}
	return vec, nil
}

// CheckModel verifies the configured model has been pulled.
// Names match with or without the ":latest" tag.
func (c *Client) CheckModel(ctx context.Context) error {
	list, err := c.client.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	for _, m := range list.Models {
		if m.Name == c.model || strings.TrimSuffix(m.Name, ":latest") == c.model {
			return nil
		}
	}
	return fmt.Errorf("model '%s' not found - run: ollama pull %s", c.model, c.model)
}
