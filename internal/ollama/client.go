// Package ollama is a minimal client for the Ollama HTTP API, covering
// the three endpoints the benchmark needs: listing installed models,
// pulling a model, and single-shot generation.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one Ollama server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:11434".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping verifies the server is reachable by listing its tags.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ollama unreachable at %s: %w", c.baseURL, err)
	}
	defer drain(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama unreachable at %s: status %d", c.baseURL, resp.StatusCode)
	}
	return nil
}

// ListModels returns the identifiers of all installed models.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	defer drain(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing models: status %d", resp.StatusCode)
	}

	var body struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing model list: %w", err)
	}

	names := make([]string, 0, len(body.Models))
	for _, m := range body.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Pull downloads a model onto the server. The call blocks until the
// pull completes; pulls of large models can take minutes.
func (c *Client) Pull(ctx context.Context, name string) error {
	payload, err := json.Marshal(map[string]any{
		"name":   name,
		"stream": false,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pull", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Pulls are not subject to the per-generation timeout.
	hc := &http.Client{Transport: c.http.Transport}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("pulling model %s: %w", name, err)
	}
	defer drain(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pulling model %s: status %d", name, resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("parsing pull response for %s: %w", name, err)
	}
	if body.Error != "" {
		return fmt.Errorf("pulling model %s: %s", name, body.Error)
	}
	return nil
}

// GenerateResult is the outcome of one generation call.
type GenerateResult struct {
	// Response is the model's generated text, trimmed of surrounding
	// whitespace.
	Response string
	// Duration is the wall-clock time of the HTTP round trip.
	Duration time.Duration
}

// Generate sends one prompt to /api/generate and returns the generated
// text. Streaming is disabled and the model is asked for strict JSON
// output; options (e.g. temperature) are passed through verbatim.
func (c *Client) Generate(ctx context.Context, model, prompt string, options map[string]any) (GenerateResult, error) {
	payload, err := json.Marshal(map[string]any{
		"model":   model,
		"prompt":  prompt,
		"stream":  false,
		"format":  "json",
		"options": options,
	})
	if err != nil {
		return GenerateResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return GenerateResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generate call for model %s: %w", model, err)
	}
	defer drain(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return GenerateResult{}, fmt.Errorf("generate call for model %s: status %d", model, resp.StatusCode)
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return GenerateResult{}, fmt.Errorf("parsing generate response for model %s: %w", model, err)
	}

	return GenerateResult{
		Response: strings.TrimSpace(body.Response),
		Duration: time.Since(start),
	}, nil
}

// drain consumes and closes a response body so connections are reused.
func drain(body io.ReadCloser) {
	io.Copy(io.Discard, body) //nolint:errcheck
	body.Close()              //nolint:errcheck
}
