package genie

import (
	"context"
	"fmt"
	"strings"

	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/provider"
	"github.com/newsgenie-ai/newsgenie/telemetry"
)

const systemPrompt = `
You are NewsGenie, an AI-powered information and news assistant.

Goals:
1. Answer general knowledge and informational questions clearly and concisely.
2. Help users stay updated with reliable, up-to-date news.
3. Always distinguish between:
   - verified news,
   - your own explanation/summary,
   - and uncertainty when sources are unclear.

Guidelines:
- If the user asks for "latest" or "today" news, prefer calling the news tool.
- If the question is conceptual (e.g. "explain inflation"), focus on explanation.
- If both news and explanation are needed, you may combine them.
- Be honest about limitations and do not invent sources.
`

// NoItemsAnswer is returned verbatim when the news branch has nothing to
// summarize; no completion call is made in that case.
const NoItemsAnswer = "I couldn't find any relevant news items right now."

// GeneralAnswer answers a non-news query over the conversation so far.
// Only user-role history entries are replayed into context; assistant
// turns are a known limitation carried over unchanged.
func GeneralAnswer(ctx context.Context, llm provider.Provider, query string, history []models.Message) (string, error) {
	messages := []provider.Message{
		{Role: provider.RoleSystem, Content: systemPrompt},
	}

	for _, turn := range history {
		if turn.Role == models.RoleUser {
			messages = append(messages, provider.Message{Role: provider.RoleUser, Content: turn.Content})
		}
	}

	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: query})

	telemetry.CompletionRequestsTotal.Inc()
	return llm.Complete(ctx, messages)
}

// SummarizeNews turns fetched items into a single answer for the user.
func SummarizeNews(ctx context.Context, llm provider.Provider, items []models.NewsItem, query, category string) (string, error) {
	if len(items) == 0 {
		return NoItemsAnswer, nil
	}

	prompt := fmt.Sprintf(`
The user asked: %s

You have the following news articles (title, source, date, description, link):

%s

1. Provide a concise summary of the most important points.
2. Highlight any trends or patterns.
3. If appropriate, suggest what a typical user might want to watch out for.
4. Do NOT invent facts beyond what is implied by the articles.
`, query, renderItems(items))

	messages := []provider.Message{
		{Role: provider.RoleSystem, Content: systemPrompt},
		{Role: provider.RoleUser, Content: prompt},
	}

	telemetry.CompletionRequestsTotal.Inc()
	return llm.Complete(ctx, messages)
}

// renderItems produces the 1-indexed enumeration embedded in the summary
// prompt. Missing fields render with explicit placeholders.
func renderItems(items []models.NewsItem) string {
	lines := make([]string, 0, len(items))
	for idx, item := range items {
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		source := item.Source
		if source == "" {
			source = "Unknown source"
		}
		date := item.PublishedAt
		if date == "" {
			date = "unknown date"
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s, %s)\n   %s\n   Link: %s",
			idx+1, title, source, date, item.Description, item.URL))
	}
	return strings.Join(lines, "\n\n")
}
