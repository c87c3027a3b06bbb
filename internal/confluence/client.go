// Package confluence is a client for the Confluence content REST API.
package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to one Confluence site with basic auth.
type Client struct {
	BaseURL    string
	Email      string
	APIToken   string
	HTTPClient *http.Client // optional, defaults to a 30s-timeout client
}

// Page identifies an existing page and its current version.
type Page struct {
	ID      string
	Version int
}

type searchResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Version struct {
			Number int `json:"number"`
		} `json:"version"`
	} `json:"results"`
}

type pageBody struct {
	ID      string       `json:"id,omitempty"`
	Type    string       `json:"type"`
	Title   string       `json:"title"`
	Space   spaceKey     `json:"space"`
	Version *pageVersion `json:"version,omitempty"`
	Body    wikiBody     `json:"body"`
}

type spaceKey struct {
	Key string `json:"key"`
}

type pageVersion struct {
	Number int `json:"number"`
}

type wikiBody struct {
	Wiki wikiValue `json:"wiki"`
}

type wikiValue struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type pageResponse struct {
	ID string `json:"id"`
}

// FindPage looks up a page by title within a space. The bool reports whether
// a page was found.
func (c *Client) FindPage(ctx context.Context, title, space string) (Page, bool, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("spaceKey", space)
	q.Set("expand", "version")
	endpoint := c.BaseURL + "/rest/api/content?" + q.Encode()

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, false, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Page{}, false, fmt.Errorf("parsing search response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Page{}, false, nil
	}
	first := parsed.Results[0]
	return Page{ID: first.ID, Version: first.Version.Number}, true, nil
}

// CreatePage creates a new wiki-representation page and returns its id.
func (c *Client) CreatePage(ctx context.Context, title, space, wiki string) (string, error) {
	payload := pageBody{
		Type:  "page",
		Title: title,
		Space: spaceKey{Key: space},
		Body:  wikiBody{Wiki: wikiValue{Value: wiki, Representation: "wiki"}},
	}
	return c.writePage(ctx, http.MethodPost, c.BaseURL+"/rest/api/content/", payload)
}

// UpdatePage replaces an existing page's body at the given new version.
func (c *Client) UpdatePage(ctx context.Context, id, title, space, wiki string, newVersion int) (string, error) {
	payload := pageBody{
		ID:      id,
		Type:    "page",
		Title:   title,
		Space:   spaceKey{Key: space},
		Version: &pageVersion{Number: newVersion},
		Body:    wikiBody{Wiki: wikiValue{Value: wiki, Representation: "wiki"}},
	}
	return c.writePage(ctx, http.MethodPut, c.BaseURL+"/rest/api/content/"+id, payload)
}

// PageURL returns the browse URL for a page id.
func (c *Client) PageURL(id string) string {
	return c.BaseURL + "/pages/viewpage.action?pageId=" + id
}

func (c *Client) writePage(ctx context.Context, method, endpoint string, payload pageBody) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling page: %w", err)
	}

	respBody, err := c.do(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}

	var parsed pageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parsing page response: %w", err)
	}
	return parsed.ID, nil
}

// do issues one authenticated request and returns the body for 2xx statuses.
// Non-2xx responses are reported with status and body; nothing is retried.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.Email, c.APIToken)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("confluence request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("confluence returned %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
