// Package ollama is the client for the external text-generation endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds one inference call. The Lambda invocation budget is
// the outer limit; this keeps a hung backend from consuming all of it.
const requestTimeout = 60 * time.Second

// temperature is kept low on purpose: translations should be consistent
// across identical requests, not creative.
const temperature = 0.1

type generateRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options options `json:"options"`
}

type options struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Client calls an Ollama-compatible /api/generate endpoint.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// New builds a client for the given host. The host may come with or without
// a scheme; deployments usually configure a bare host:port.
func New(hostURL, model string) *Client {
	if !strings.Contains(hostURL, "://") {
		hostURL = "http://" + hostURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(hostURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Translate asks the model for a translation of text into the named
// language and returns the trimmed response. Any transport failure or
// non-200 status is an error; the caller treats all of them as the backend
// being unreachable.
func (c *Client) Translate(ctx context.Context, languageName, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following English text to %s, providing only the translated text: \"%s\"",
		languageName, text,
	)

	payload, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: options{Temperature: temperature},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error: %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return strings.TrimSpace(out.Response), nil
}
