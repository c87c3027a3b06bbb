package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	vlog "github.com/futureCreator/docuflux/internal/log"
)

// ErrUnsupportedURL marks a GitHub URL whose shape is not recognized.
var ErrUnsupportedURL = errors.New("unsupported GitHub URL")

const defaultAPIBase = "https://api.github.com"

// GitHubClient fetches file contents from GitHub, unauthenticated.
// Blob URLs are rewritten to raw-content downloads; tree URLs are listed via
// the repository-contents API.
type GitHubClient struct {
	APIBase    string       // contents API base, defaults to api.github.com
	HTTPClient *http.Client // optional, defaults to a 30s-timeout client
}

// BlobRawURL maps a GitHub blob URL to its raw-content URL and the
// repo-relative path. Pure.
func BlobRawURL(url string) (rawURL, relPath string, err error) {
	parts := strings.Split(url, "/blob/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedURL, url)
	}
	base := strings.Replace(parts[0], "github.com", "raw.githubusercontent.com", 1)
	return base + "/" + parts[1], parts[1], nil
}

// FetchBlob downloads a single file from a GitHub blob URL.
func (c *GitHubClient) FetchBlob(ctx context.Context, url string) (Item, error) {
	rawURL, relPath, err := BlobRawURL(url)
	if err != nil {
		return Item{}, err
	}

	body, err := c.get(ctx, rawURL)
	if err != nil {
		return Item{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	return Item{Identifier: relPath, Content: string(body)}, nil
}

// TreeRef is a parsed GitHub tree URL.
type TreeRef struct {
	Owner     string
	Repo      string
	Branch    string
	PathParts []string
}

// ParseTreeURL extracts owner, repo, branch, and directory path from a GitHub
// tree URL. Pure.
func ParseTreeURL(url string) (TreeRef, error) {
	parts := strings.Split(url, "/tree/")
	if len(parts) != 2 {
		return TreeRef{}, fmt.Errorf("%w: %s", ErrUnsupportedURL, url)
	}
	segs := strings.Split(parts[0], "/")
	if len(segs) < 5 {
		return TreeRef{}, fmt.Errorf("%w: invalid repo URL %s", ErrUnsupportedURL, url)
	}
	ref := TreeRef{
		Owner: segs[len(segs)-2],
		Repo:  segs[len(segs)-1],
	}
	relParts := strings.Split(parts[1], "/")
	ref.Branch = relParts[0]
	ref.PathParts = relParts[1:]
	return ref, nil
}

type contentsEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// FetchTree downloads all files directly under a GitHub tree URL. The listing
// is single-level: directories in the listing are not recursed into.
func (c *GitHubClient) FetchTree(ctx context.Context, url string) ([]Item, error) {
	ref, err := ParseTreeURL(url)
	if err != nil {
		return nil, err
	}

	apiBase := c.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		apiBase, ref.Owner, ref.Repo, strings.Join(ref.PathParts, "/"), ref.Branch)

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", url, err)
	}

	var entries []contentsEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing contents listing for %s: %w", url, err)
	}

	var items []Item
	for _, e := range entries {
		if e.Type != "file" {
			continue
		}
		content, err := c.get(ctx, e.DownloadURL)
		if err != nil {
			vlog.Warn("could not download file", "name", e.Name, "err", err)
			continue
		}
		id := strings.Join(append(append([]string{}, ref.PathParts...), e.Name), "/")
		items = append(items, Item{Identifier: id, Content: string(content)})
	}
	return items, nil
}

// get issues a GET and returns the body for HTTP 200 only.
func (c *GitHubClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
