package palette

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// huntFeedURL is a var so tests can point the client at a local server.
var huntFeedURL = "https://colorhunt.co/php/feed.php"

// Global client with a custom User-Agent header.
var httpClient = &http.Client{}

type headerTransport struct {
	Transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "wallrus-palette-client")
	return t.Transport.RoundTrip(req)
}

func init() {
	httpClient.Transport = &headerTransport{Transport: http.DefaultTransport}
}

// HuntQuery selects a page of the ColorHunt community feed.
type HuntQuery struct {
	// Sort is one of new, popular or random. Empty means new.
	Sort string
	// Tags filters by a dash-separated tag list, for example "pastel-blue".
	Tags string
	// Timeframe narrows popular sorting to the last N days.
	Timeframe string
	// Step pages through the feed, 40 palettes per step.
	Step int
}

type huntItem struct {
	Code  string `json:"code"`
	Likes string `json:"likes"`
	Date  string `json:"date"`
}

// Hunt fetches one page of community palettes from the ColorHunt feed. Feed
// entries with malformed codes are skipped, not fatal.
func Hunt(ctx context.Context, q HuntQuery) ([]Palette, error) {
	sortBy := q.Sort
	if sortBy == "" {
		sortBy = "new"
	}

	form := url.Values{}
	form.Set("step", strconv.Itoa(q.Step))
	form.Set("sort", sortBy)
	form.Set("tags", q.Tags)
	form.Set("timeframe", q.Timeframe)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, huntFeedURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("palette feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load palette feed, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	var items []huntItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode feed JSON: %w", err)
	}

	palettes := make([]Palette, 0, len(items))
	for _, item := range items {
		p, err := FromCode(item.Code)
		if err != nil {
			log.Printf("Warning: skipping feed entry %q: %v", item.Code, err)
			continue
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
