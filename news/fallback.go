package news

import "github.com/newsgenie-ai/newsgenie/models"

// FallbackItems returns the fixed mock headline set for a category. It is a
// deterministic substitute used when no API key is configured or the
// provider call fails, not a cache.
func FallbackItems(category string) []models.NewsItem {
	switch category {
	case models.CategoryTechnology:
		return []models.NewsItem{
			{
				Title:       "AI Startups Transforming the Tech Landscape",
				Description: "A look at how AI-powered tools are reshaping software development and productivity.",
				URL:         "https://example.com/ai-startups",
				Source:      "Mock Tech Daily",
				PublishedAt: "2025-01-01T10:00:00Z",
			},
			{
				Title:       "Breakthrough in Quantum Computing Announced",
				Description: "Researchers reveal a new quantum processor with improved stability.",
				URL:         "https://example.com/quantum-breakthrough",
				Source:      "Mock Science News",
				PublishedAt: "2025-01-01T09:30:00Z",
			},
		}
	case models.CategoryFinance:
		return []models.NewsItem{
			{
				Title:       "Global Markets Rally After Inflation Report",
				Description: "Stocks rise as inflation data comes in lower than expected.",
				URL:         "https://example.com/markets-rally",
				Source:      "Mock Finance Times",
				PublishedAt: "2025-01-01T11:15:00Z",
			},
			{
				Title:       "Central Bank Signals Possible Rate Cuts",
				Description: "Investors react to hints of a shift in monetary policy.",
				URL:         "https://example.com/rate-cuts",
				Source:      "Mock Economic Review",
				PublishedAt: "2025-01-01T08:45:00Z",
			},
		}
	case models.CategorySports:
		return []models.NewsItem{
			{
				Title:       "Underdog Team Wins Championship in Overtime",
				Description: "A dramatic finish caps off an unforgettable season.",
				URL:         "https://example.com/championship",
				Source:      "Mock Sports Network",
				PublishedAt: "2025-01-01T07:00:00Z",
			},
			{
				Title:       "Star Player Sets New Scoring Record",
				Description: "A historic performance cements the player's legacy.",
				URL:         "https://example.com/scoring-record",
				Source:      "Mock Sports Network",
				PublishedAt: "2025-01-01T06:30:00Z",
			},
		}
	}
	return []models.NewsItem{
		{
			Title:       "Global News Summary",
			Description: "A quick overview of major headlines around the world.",
			URL:         "https://example.com/global-summary",
			Source:      "Mock World News",
			PublishedAt: "2025-01-01T05:00:00Z",
		},
	}
}
