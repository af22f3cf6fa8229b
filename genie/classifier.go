package genie

import (
	"strings"

	"github.com/newsgenie-ai/newsgenie/models"
)

// newsKeywords route a query to the news branch when any of them appears as
// a case-insensitive substring. Substring matches inside unrelated words
// count too; that false-positive risk is accepted.
var newsKeywords = []string{
	"news",
	"headline",
	"headlines",
	"latest",
	"today",
	"market update",
	"stock market",
	"breaking",
	"technology news",
	"sports scores",
	"finance news",
}

// Classify maps a query to a branch. Deterministic, total, no side effects:
// any news keyword or the phrase "what happened" selects the news branch,
// everything else (including the empty string) is general.
func Classify(query string) models.QueryType {
	q := strings.ToLower(query)

	for _, keyword := range newsKeywords {
		if strings.Contains(q, keyword) {
			return models.QueryTypeNews
		}
	}

	if strings.Contains(q, "what happened") {
		return models.QueryTypeNews
	}

	return models.QueryTypeGeneral
}
