// Package manifest fetches the story index from a running Storybook and
// turns it into an ordered list of stories. Both manifest generations are
// supported: index.json (v4+) and the older stories.json.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storydoc/internal/story"

	"go.uber.org/zap"
)

// Client fetches and decodes a Storybook manifest.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a manifest client rooted at the Storybook base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// entryRecord covers both manifest generations: index.json entries carry
// id/title/name/type, stories.json entries may carry kind/story instead.
type entryRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Kind  string `json:"kind"`
	Story string `json:"story"`
}

// FetchStories returns the manifest's stories in the exact order the
// manifest lists them. Autodocs entries (type "docs") are skipped; entries
// without a title are kept and degenerate to a single leaf heading
// downstream.
func (c *Client) FetchStories(ctx context.Context) ([]story.Story, error) {
	body, key, err := c.fetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateManifest(body); err != nil {
		return nil, err
	}

	return decodeStories(body, key)
}

// fetchManifest tries index.json first and falls back to stories.json when
// the newer endpoint does not exist.
func (c *Client) fetchManifest(ctx context.Context) ([]byte, string, error) {
	body, status, err := c.get(ctx, "/index.json")
	if err != nil {
		return nil, "", err
	}
	if status == http.StatusOK {
		return body, "entries", nil
	}
	if status != http.StatusNotFound {
		return nil, "", fmt.Errorf("fetch manifest: %s/index.json returned %d", c.baseURL, status)
	}

	c.logger.Debug("index.json not found, falling back to stories.json")
	body, status, err = c.get(ctx, "/stories.json")
	if err != nil {
		return nil, "", err
	}
	if status != http.StatusOK {
		return nil, "", fmt.Errorf("fetch manifest: %s/stories.json returned %d", c.baseURL, status)
	}
	return body, "stories", nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch manifest %s%s: %w", c.baseURL, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read manifest %s%s: %w", c.baseURL, path, err)
	}
	return body, resp.StatusCode, nil
}

// decodeStories walks the manifest token by token so the entry order of the
// JSON object is preserved. A plain map decode would lose the collaborator's
// ordering, and the transformer must never re-sort.
func decodeStories(body []byte, key string) ([]story.Story, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	if _, err := dec.Token(); err != nil { // opening {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}
		name, _ := tok.(string)
		if name != key {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("decode manifest: %w", err)
			}
			continue
		}
		return decodeEntries(dec)
	}
	return nil, fmt.Errorf("decode manifest: no %q object found", key)
}

func decodeEntries(dec *json.Decoder) ([]story.Story, error) {
	if _, err := dec.Token(); err != nil { // opening {
		return nil, fmt.Errorf("decode manifest entries: %w", err)
	}

	var stories []story.Story
	for dec.More() {
		if _, err := dec.Token(); err != nil { // entry id key
			return nil, fmt.Errorf("decode manifest entries: %w", err)
		}
		var rec entryRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode manifest entry: %w", err)
		}
		if rec.Type == "docs" {
			continue
		}

		s := story.Story{ID: rec.ID, Title: rec.Title, Name: rec.Name}
		if s.Title == "" {
			s.Title = rec.Kind
		}
		if s.Name == "" {
			s.Name = rec.Story
		}
		stories = append(stories, s)
	}
	return stories, nil
}
