package genie

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/newsgenie-ai/newsgenie/config"
	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/news"
	"github.com/newsgenie-ai/newsgenie/websearch"
)

type fakeNews struct {
	items []models.NewsItem
	calls int
}

func (f *fakeNews) Fetch(_ context.Context, _, _ string) []models.NewsItem {
	f.calls++
	return f.items
}

type fakeSearch struct {
	calls int
}

func (f *fakeSearch) Search(_ context.Context, _ string, _ int) []models.SearchResult {
	f.calls++
	return []models.SearchResult{{Title: "hit", URL: "https://x"}}
}

func assertPairedHistory(t *testing.T, in, out []models.Message, query, answer string) {
	t.Helper()
	if len(out) != len(in)+2 {
		t.Fatalf("expected history to grow by 2, got %d -> %d", len(in), len(out))
	}
	userMsg := out[len(out)-2]
	assistantMsg := out[len(out)-1]
	if userMsg.Role != models.RoleUser || userMsg.Content != query {
		t.Fatalf("unexpected user message: %+v", userMsg)
	}
	if assistantMsg.Role != models.RoleAssistant || assistantMsg.Content != answer {
		t.Fatalf("unexpected assistant message: %+v", assistantMsg)
	}
}

func TestGeneralBranchAppendsPairedHistory(t *testing.T) {
	llm := &fakeProvider{reply: "inflation is a rise in prices"}
	orch := NewOrchestrator(llm, &fakeNews{}, &fakeSearch{})

	in := TurnInput{
		Query: "Explain inflation",
		History: []models.Message{
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hello"},
		},
	}
	result, err := orch.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.QueryType != models.QueryTypeGeneral {
		t.Fatalf("expected general branch, got %s", result.QueryType)
	}
	if result.Answer == "" {
		t.Fatalf("expected non-empty answer")
	}
	if len(result.Items) != 0 {
		t.Fatalf("general branch must not return items, got %d", len(result.Items))
	}
	assertPairedHistory(t, in.History, result.History, in.Query, result.Answer)
}

func TestGeneralBranchDoesNotMutateInputHistory(t *testing.T) {
	llm := &fakeProvider{reply: "answer"}
	orch := NewOrchestrator(llm, &fakeNews{}, &fakeSearch{})

	in := TurnInput{Query: "Explain inflation", History: make([]models.Message, 0, 8)}
	if _, err := orch.Run(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.History) != 0 {
		t.Fatalf("input history mutated: %d entries", len(in.History))
	}
}

func TestGeneralBranchCompletionFailureIsFatal(t *testing.T) {
	llm := &fakeProvider{err: errors.New("service down")}
	orch := NewOrchestrator(llm, &fakeNews{}, &fakeSearch{})

	if _, err := orch.Run(context.Background(), TurnInput{Query: "Explain inflation"}); err == nil {
		t.Fatalf("expected fatal error from general branch")
	}
}

func TestNewsBranchFetchesSearchSideChannel(t *testing.T) {
	llm := &fakeProvider{reply: "summary"}
	newsSrc := &fakeNews{items: []models.NewsItem{{Title: "a"}}}
	searchSrc := &fakeSearch{}
	orch := NewOrchestrator(llm, newsSrc, searchSrc)

	result, err := orch.Run(context.Background(), TurnInput{Query: "latest news"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newsSrc.calls != 1 {
		t.Fatalf("expected one news fetch, got %d", newsSrc.calls)
	}
	// The search call is still issued even though its result is unused.
	if searchSrc.calls != 1 {
		t.Fatalf("expected one search fetch, got %d", searchSrc.calls)
	}
	if result.Answer != "summary" {
		t.Fatalf("unexpected answer: %q", result.Answer)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected fetched items in result, got %d", len(result.Items))
	}
}

func TestNewsBranchCategoryHintWins(t *testing.T) {
	llm := &fakeProvider{reply: "summary"}
	orch := NewOrchestrator(llm, &fakeNews{items: []models.NewsItem{{Title: "a"}}}, &fakeSearch{})

	result, err := orch.Run(context.Background(), TurnInput{Query: "latest news", CategoryHint: "Sports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != models.CategorySports {
		t.Fatalf("expected hint to win, got %q", result.Category)
	}
}

func TestNewsBranchEmptyItemsSkipsCompletion(t *testing.T) {
	llm := &fakeProvider{reply: "must not be called"}
	orch := NewOrchestrator(llm, &fakeNews{}, &fakeSearch{})

	in := TurnInput{Query: "latest obscure news"}
	result, err := orch.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != NoItemsAnswer {
		t.Fatalf("expected fixed no-items answer, got %q", result.Answer)
	}
	if llm.calls != 0 {
		t.Fatalf("expected no completion call, got %d", llm.calls)
	}
	assertPairedHistory(t, in.History, result.History, in.Query, result.Answer)
}

func TestNewsBranchSummarizerFailureDegradesTurn(t *testing.T) {
	llm := &fakeProvider{err: errors.New("model overloaded")}
	orch := NewOrchestrator(llm, &fakeNews{items: []models.NewsItem{{Title: "a"}}}, &fakeSearch{})

	in := TurnInput{Query: "latest news"}
	result, err := orch.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("turn must complete despite summarizer failure, got %v", err)
	}
	if result.Error == "" || !strings.Contains(result.Error, "model overloaded") {
		t.Fatalf("expected recorded error, got %q", result.Error)
	}
	if !strings.Contains(result.Answer, "model overloaded") {
		t.Fatalf("expected apology embedding failure message, got %q", result.Answer)
	}
	assertPairedHistory(t, in.History, result.History, in.Query, result.Answer)
}

func TestEndToEndMockNewsTurn(t *testing.T) {
	llm := &fakeProvider{reply: "Here is what's new in tech."}
	cfg := config.NewsAPIConfig{
		Endpoint: "https://newsapi.org/v2/top-headlines",
		Language: "en",
		PageSize: 5,
		Timeout:  time.Second,
	}
	searchCfg := config.WebSearchConfig{Provider: "brave", MaxResults: 3, Timeout: time.Second}
	orch := NewOrchestrator(llm, news.NewFetcher(cfg), websearch.NewAdapter(searchCfg))

	result, err := orch.Run(context.Background(), TurnInput{Query: "latest tech news"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.QueryType != models.QueryTypeNews {
		t.Fatalf("expected news branch, got %s", result.QueryType)
	}
	if result.Category != models.CategoryTechnology {
		t.Fatalf("expected inferred technology category, got %q", result.Category)
	}
	want := news.FallbackItems(models.CategoryTechnology)
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d mock items, got %d", len(want), len(result.Items))
	}
	for i := range want {
		if result.Items[i] != want[i] {
			t.Fatalf("mock item %d mismatch: %+v", i, result.Items[i])
		}
	}
	if result.Answer == "" {
		t.Fatalf("expected non-empty summary")
	}
	if len(result.History) != 2 {
		t.Fatalf("expected history with 2 entries, got %d", len(result.History))
	}
}
