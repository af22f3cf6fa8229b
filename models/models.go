package models

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry. Messages are immutable once
// appended; insertion order is conversation order.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// QueryType is the branch a turn is routed through.
type QueryType string

const (
	QueryTypeNews    QueryType = "news"
	QueryTypeGeneral QueryType = "general"
)

// NewsItem is a normalized headline. Every field defaults to the empty
// string so downstream consumers never see absent keys.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// SearchResult is a normalized web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Categories the news adapter knows how to infer from a query.
const (
	CategoryTechnology = "technology"
	CategoryFinance    = "finance"
	CategorySports     = "sports"
	CategoryGeneral    = "general"
)
