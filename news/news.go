package news

import (
	"context"
	"log"
	"strings"

	"github.com/newsgenie-ai/newsgenie/config"
	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/news/newsapi"
	"github.com/newsgenie-ai/newsgenie/telemetry"
)

// Headlines is the provider side of the fetch contract. *newsapi.Client
// satisfies it; tests inject fakes.
type Headlines interface {
	TopHeadlines(ctx context.Context, p newsapi.Params) ([]newsapi.Article, error)
}

// Fetcher is the failure-absorbing adapter over a headlines provider.
// Fetch never returns an error: missing credentials, transport failures,
// non-2xx statuses, malformed bodies and empty result lists all resolve to
// the fixed mock fallback for the requested category.
type Fetcher struct {
	cfg    config.NewsAPIConfig
	client Headlines
	logger *log.Logger
}

// NewFetcher creates a news fetch adapter from explicit configuration.
func NewFetcher(cfg config.NewsAPIConfig) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: newsapi.NewClient(cfg.APIKey, cfg.Endpoint, cfg.Timeout),
		logger: telemetry.NewLogger("[NEWS] "),
	}
}

// NewFetcherWithClient wires a custom headlines provider, for tests.
func NewFetcherWithClient(cfg config.NewsAPIConfig, client Headlines) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, logger: telemetry.NewLogger("[NEWS] ")}
}

// Fetch returns up to page-size normalized items for a category and query.
func (f *Fetcher) Fetch(ctx context.Context, category, query string) []models.NewsItem {
	if category == "" {
		category = models.CategoryGeneral
	}
	if f.cfg.APIKey == "" {
		telemetry.FetchFallbacksTotal.WithLabelValues("news").Inc()
		return FallbackItems(category)
	}

	articles, err := f.client.TopHeadlines(ctx, newsapi.Params{
		Language: f.cfg.Language,
		PageSize: f.cfg.PageSize,
		Category: category,
		Query:    query,
	})
	if err != nil {
		f.logger.Printf("fetch failed for category %q: %v", category, err)
		telemetry.FetchFallbacksTotal.WithLabelValues("news").Inc()
		return FallbackItems(category)
	}
	if len(articles) == 0 {
		f.logger.Printf("fetch returned no articles for category %q", category)
		telemetry.FetchFallbacksTotal.WithLabelValues("news").Inc()
		return FallbackItems(category)
	}

	items := make([]models.NewsItem, 0, len(articles))
	for i, art := range articles {
		if f.cfg.PageSize > 0 && i >= f.cfg.PageSize {
			break
		}
		items = append(items, models.NewsItem{
			Title:       art.Title,
			Description: art.Description,
			URL:         art.URL,
			Source:      art.Source.Name,
			PublishedAt: art.PublishedAt,
		})
	}
	return items
}

// InferCategory maps a query to a known news category by keyword scan.
// The first matching keyword set wins; anything unmatched is general.
func InferCategory(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "tech") || strings.Contains(q, "ai") || strings.Contains(q, "software"):
		return models.CategoryTechnology
	case strings.Contains(q, "stock") || strings.Contains(q, "market") || strings.Contains(q, "finance"):
		return models.CategoryFinance
	case strings.Contains(q, "sport") || strings.Contains(q, "game") || strings.Contains(q, "score"):
		return models.CategorySports
	}
	return models.CategoryGeneral
}
