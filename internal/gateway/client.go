// Package gateway is a client for the LLM prompt gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the gateway's prompt endpoint.
type Client struct {
	BaseURL    string
	JWT        string
	HTTPClient *http.Client // optional, defaults to a 30s-timeout client
}

// Request carries one text-generation call.
type Request struct {
	Prompt      string
	Provider    string
	Model       string
	MaxTokens   int
	Temperature *float64
	TopP        *float64
}

type promptBody struct {
	Prompts         []promptMessage `json:"prompts"`
	Provider        string          `json:"provider"`
	Store           bool            `json:"store"`
	IsPrivate       bool            `json:"is_private"`
	ProviderOptions providerOptions `json:"provider_options"`
}

type promptMessage struct {
	From    string          `json:"from"`
	Content []promptContent `json:"content"`
}

type promptContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type providerOptions struct {
	Model       string   `json:"model"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

type promptResponse struct {
	Data struct {
		Value struct {
			Content string `json:"content"`
		} `json:"value"`
	} `json:"data"`
}

// Generate sends the prompt and returns the model's text output. Any
// transport failure, non-200 status, malformed body, or empty content is an
// error; the caller treats it as fatal.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	provider := req.Provider
	if provider == "" {
		provider = "anthropic_chat"
	}

	payload := promptBody{
		Prompts: []promptMessage{{
			From:    "user",
			Content: []promptContent{{Type: "text", Value: req.Prompt}},
		}},
		Provider: provider,
		ProviderOptions: providerOptions{
			Model:       req.Model,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
			TopP:        req.TopP,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := c.BaseURL + "/v1/prompts"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "sso-jwt "+c.JWT)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed promptResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if parsed.Data.Value.Content == "" {
		return "", fmt.Errorf("empty content in gateway response")
	}
	return parsed.Data.Value.Content, nil
}
