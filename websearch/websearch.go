package websearch

import (
	"context"
	"fmt"
	"log"

	"github.com/newsgenie-ai/newsgenie/config"
	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/telemetry"
	"github.com/newsgenie-ai/newsgenie/websearch/brave"
	"github.com/newsgenie-ai/newsgenie/websearch/serper"
)

// Searcher is the provider side of the search contract.
type Searcher interface {
	Discover(ctx context.Context, q string, k int) ([]models.SearchResult, error)
}

// Provider selects the web search backend.
type Provider string

const (
	BraveProvider  Provider = "brave"
	SerperProvider Provider = "serper"
)

// NewSearcher builds a provider-specific searcher.
func NewSearcher(provider Provider, cfg config.WebSearchConfig) (Searcher, error) {
	switch provider {
	case BraveProvider:
		return brave.Search{APIKey: cfg.BraveAPIKey, Timeout: cfg.Timeout}, nil
	case SerperProvider:
		return serper.Search{APIKey: cfg.SerperAPIKey, Timeout: cfg.Timeout}, nil
	default:
		return nil, fmt.Errorf("unsupported search provider: %s", provider)
	}
}

// FallbackResults is the fixed query-echoing mock used when no provider is
// configured or a search attempt fails.
func FallbackResults(query string) []models.SearchResult {
	return []models.SearchResult{
		{
			Title:   fmt.Sprintf("Background information related to: %s", query),
			Snippet: "This is a mock search result used when no real web search API is configured.",
			URL:     "https://example.com/mock-search",
		},
	}
}

// Adapter is the failure-absorbing wrapper around a Searcher. Search never
// returns an error; every failure mode resolves to FallbackResults.
type Adapter struct {
	cfg      config.WebSearchConfig
	searcher Searcher
	logger   *log.Logger
}

// NewAdapter creates a search adapter from explicit configuration. An
// unknown provider name degrades to mock results rather than failing later.
func NewAdapter(cfg config.WebSearchConfig) *Adapter {
	a := &Adapter{cfg: cfg, logger: telemetry.NewLogger("[SEARCH] ")}
	s, err := NewSearcher(Provider(cfg.Provider), cfg)
	if err != nil {
		a.logger.Printf("search provider unavailable: %v", err)
		return a
	}
	a.searcher = s
	return a
}

// NewAdapterWithSearcher wires a custom searcher, for tests.
func NewAdapterWithSearcher(cfg config.WebSearchConfig, s Searcher) *Adapter {
	return &Adapter{cfg: cfg, searcher: s, logger: telemetry.NewLogger("[SEARCH] ")}
}

// Search runs one bounded search attempt and normalizes the results.
func (a *Adapter) Search(ctx context.Context, query string, k int) []models.SearchResult {
	if k <= 0 || k > a.cfg.MaxResults {
		k = a.cfg.MaxResults
	}
	if a.searcher == nil || a.cfg.Key() == "" {
		telemetry.FetchFallbacksTotal.WithLabelValues("search").Inc()
		return FallbackResults(query)
	}

	results, err := a.searcher.Discover(ctx, query, k)
	if err != nil {
		a.logger.Printf("search failed for %q: %v", query, err)
		telemetry.FetchFallbacksTotal.WithLabelValues("search").Inc()
		return FallbackResults(query)
	}
	if len(results) == 0 {
		a.logger.Printf("search returned no results for %q", query)
		telemetry.FetchFallbacksTotal.WithLabelValues("search").Inc()
		return FallbackResults(query)
	}
	if len(results) > k {
		results = results[:k]
	}
	return results
}
