package genie

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/provider"
)

type fakeProvider struct {
	calls    int
	last     []provider.Message
	reply    string
	err      error
}

func (f *fakeProvider) Complete(_ context.Context, messages []provider.Message) (string, error) {
	f.calls++
	f.last = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGeneralAnswerReplaysUserTurnsOnly(t *testing.T) {
	llm := &fakeProvider{reply: "42"}
	history := []models.Message{
		{Role: models.RoleUser, Content: "first question"},
		{Role: models.RoleAssistant, Content: "first answer"},
		{Role: models.RoleUser, Content: "second question"},
	}

	answer, err := GeneralAnswer(context.Background(), llm, "third question", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "42" {
		t.Fatalf("unexpected answer: %q", answer)
	}

	// system + two prior user turns + current query
	if len(llm.last) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(llm.last))
	}
	if llm.last[0].Role != provider.RoleSystem {
		t.Fatalf("expected leading system message, got role %q", llm.last[0].Role)
	}
	for _, m := range llm.last[1:] {
		if m.Role != provider.RoleUser {
			t.Fatalf("assistant turns must not be replayed, got role %q", m.Role)
		}
	}
	if llm.last[3].Content != "third question" {
		t.Fatalf("final message must be the current query, got %q", llm.last[3].Content)
	}
}

func TestSummarizeNewsEmptyItemsSkipsProvider(t *testing.T) {
	llm := &fakeProvider{reply: "should not be used"}

	answer, err := SummarizeNews(context.Background(), llm, nil, "any news?", "general")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != NoItemsAnswer {
		t.Fatalf("expected fixed no-items answer, got %q", answer)
	}
	if llm.calls != 0 {
		t.Fatalf("expected no completion call, got %d", llm.calls)
	}
}

func TestSummarizeNewsPromptEnumeration(t *testing.T) {
	llm := &fakeProvider{reply: "summary"}
	items := []models.NewsItem{
		{Title: "First", Source: "Feed A", PublishedAt: "2025-01-01T10:00:00Z", Description: "d1", URL: "https://a"},
		{Title: "", Source: "", PublishedAt: "", Description: "d2", URL: "https://b"},
	}

	if _, err := SummarizeNews(context.Background(), llm, items, "tech news", "technology"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(llm.last) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(llm.last))
	}
	prompt := llm.last[1].Content
	if !strings.Contains(prompt, "1. First (Feed A, 2025-01-01T10:00:00Z)") {
		t.Fatalf("expected 1-indexed item rendering, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2. Untitled (Unknown source, unknown date)") {
		t.Fatalf("expected placeholders for missing fields, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "The user asked: tech news") {
		t.Fatalf("expected query embedded in prompt")
	}
	if !strings.Contains(prompt, "Do NOT invent facts") {
		t.Fatalf("expected no-fabrication instruction")
	}
}

func TestSummarizeNewsPropagatesProviderFailure(t *testing.T) {
	llm := &fakeProvider{err: errors.New("completion unavailable")}
	items := []models.NewsItem{{Title: "First"}}

	if _, err := SummarizeNews(context.Background(), llm, items, "q", "general"); err == nil {
		t.Fatalf("expected provider failure to propagate")
	}
}
