package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/newsgenie-ai/newsgenie/models"
)

type Search struct {
	APIKey  string
	Timeout time.Duration
}

func (s Search) Discover(ctx context.Context, q string, k int) ([]models.SearchResult, error) {
	// https://api.search.brave.com/app/documentation/web-search
	endpoint := fmt.Sprintf("https://api.search.brave.com/res/v1/web/search?q=%s&count=%d", url.QueryEscape(q), k)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", s.APIKey)

	client := &http.Client{Timeout: s.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave error: %s", resp.Status)
	}

	var raw struct {
		Web struct {
			Results []struct {
				Title   string `json:"title"`
				URL     string `json:"url"`
				Snippet string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	var out []models.SearchResult
	for i, r := range raw.Web.Results {
		if i >= k {
			break
		}
		out = append(out, models.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Snippet})
	}
	return out, nil
}
