package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Article is the provider-side headline shape.
type Article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Params are the query parameters for a top-headlines request.
type Params struct {
	Language string
	PageSize int
	Category string
	Query    string
}

// Client is a minimal NewsAPI.org-style client. Failures propagate; the
// fetch adapter above decides what to do with them.
type Client struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(apiKey, endpoint string, timeout time.Duration) *Client {
	return &Client{
		APIKey:     apiKey,
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// TopHeadlines issues one GET against the configured endpoint.
func (c *Client) TopHeadlines(ctx context.Context, p Params) ([]Article, error) {
	params := url.Values{}
	params.Add("apiKey", c.APIKey)
	if p.Language != "" {
		params.Add("language", p.Language)
	}
	if p.PageSize > 0 {
		params.Add("pageSize", fmt.Sprintf("%d", p.PageSize))
	}
	if p.Category != "" {
		params.Add("category", p.Category)
	}
	if p.Query != "" {
		params.Add("q", p.Query)
	}

	reqURL := fmt.Sprintf("%s?%s", c.Endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi error: %s", resp.Status)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Articles, nil
}
