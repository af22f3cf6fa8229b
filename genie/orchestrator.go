package genie

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/news"
	"github.com/newsgenie-ai/newsgenie/provider"
	"github.com/newsgenie-ai/newsgenie/telemetry"
)

// How many side-channel search results to request per news turn.
const searchSideResults = 2

// NewsSource is the news instance of the fetch contract. Implementations
// never fail; they degrade to mock data.
type NewsSource interface {
	Fetch(ctx context.Context, category, query string) []models.NewsItem
}

// SearchSource is the search instance of the fetch contract.
type SearchSource interface {
	Search(ctx context.Context, query string, k int) []models.SearchResult
}

// TurnInput is one user query plus the conversation so far.
type TurnInput struct {
	Query        string
	History      []models.Message
	CategoryHint string
}

// TurnResult is the completed turn handed back to the caller. History is
// the input history extended by exactly one user and one assistant message,
// in that order. Items is populated only on the news path. Error is set
// when the news branch degraded but the turn still completed.
type TurnResult struct {
	Answer    string            `json:"answer"`
	Items     []models.NewsItem `json:"items"`
	Error     string            `json:"error,omitempty"`
	History   []models.Message  `json:"history"`
	QueryType models.QueryType  `json:"query_type"`
	Category  string            `json:"category,omitempty"`
}

// turnState is the mutable per-turn record threaded through the stages.
// It is created fresh for every turn and discarded after the result is
// built; queryType is set exactly once, before branching.
type turnState struct {
	input     TurnInput
	queryType models.QueryType
	category  string
	items     []models.NewsItem
	answer    string
	errMsg    string
	history   []models.Message
}

// appendPair adds the user/assistant message pair for this turn. Every
// branch goes through here, error paths included, so history always grows
// by exactly two correctly ordered messages.
func (st *turnState) appendPair() {
	st.history = append(st.history,
		models.Message{Role: models.RoleUser, Content: st.input.Query},
		models.Message{Role: models.RoleAssistant, Content: st.answer},
	)
}

type branchFunc func(ctx context.Context, st *turnState) error

// Orchestrator runs the classify -> branch -> finalize state machine for a
// single turn. It owns no conversation state between turns; the caller
// persists the returned history.
type Orchestrator struct {
	llm      provider.Provider
	news     NewsSource
	search   SearchSource
	logger   *log.Logger
	branches map[models.QueryType]branchFunc
}

// NewOrchestrator wires the orchestrator with explicit collaborators.
func NewOrchestrator(llm provider.Provider, newsSource NewsSource, searchSource SearchSource) *Orchestrator {
	o := &Orchestrator{
		llm:    llm,
		news:   newsSource,
		search: searchSource,
		logger: telemetry.NewLogger("[ORCH] "),
	}
	o.branches = map[models.QueryType]branchFunc{
		models.QueryTypeNews:    o.runNewsBranch,
		models.QueryTypeGeneral: o.runGeneralBranch,
	}
	return o
}

// Run processes one turn to completion. A returned error means the turn
// produced no usable state (general-branch completion failure or a
// programming error); news-branch degradation is reported inside the
// result instead.
func (o *Orchestrator) Run(ctx context.Context, in TurnInput) (TurnResult, error) {
	start := time.Now()
	defer func() {
		telemetry.TurnDuration.Observe(time.Since(start).Seconds())
	}()

	st := &turnState{
		input:   in,
		history: append([]models.Message(nil), in.History...),
	}

	// Classification happens exactly once; the branch is never re-evaluated.
	st.queryType = Classify(in.Query)
	telemetry.TurnsTotal.WithLabelValues(string(st.queryType)).Inc()

	branch, ok := o.branches[st.queryType]
	if !ok {
		return TurnResult{}, fmt.Errorf("no branch registered for query type %q", st.queryType)
	}

	if err := branch(ctx, st); err != nil {
		telemetry.TurnErrorsTotal.WithLabelValues(string(st.queryType)).Inc()
		return TurnResult{}, err
	}

	o.finalize(st)

	return TurnResult{
		Answer:    st.answer,
		Items:     st.items,
		Error:     st.errMsg,
		History:   st.history,
		QueryType: st.queryType,
		Category:  st.category,
	}, nil
}

// runNewsBranch fetches headlines and a side-channel web search
// concurrently, then summarizes the headlines. Fetch failures never reach
// this level; a summarizer failure degrades the turn to an apology answer
// but still appends a paired history entry.
func (o *Orchestrator) runNewsBranch(ctx context.Context, st *turnState) error {
	st.category = strings.ToLower(st.input.CategoryHint)
	if st.category == "" {
		st.category = news.InferCategory(st.input.Query)
	}

	var (
		items      []models.NewsItem
		webResults []models.SearchResult
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items = o.news.Fetch(ctx, st.category, st.input.Query)
	}()
	go func() {
		defer wg.Done()
		// Placeholder side channel: fetched alongside the headlines but not
		// merged into the summary.
		webResults = o.search.Search(ctx, st.input.Query, searchSideResults)
	}()
	wg.Wait()

	st.items = items
	o.logger.Printf("news branch: category=%s items=%d web_results=%d", st.category, len(items), len(webResults))

	summary, err := SummarizeNews(ctx, o.llm, items, st.input.Query, st.category)
	if err != nil {
		st.errMsg = err.Error()
		st.answer = fmt.Sprintf("Sorry, I had trouble fetching news right now. Error: %s", err)
		telemetry.TurnErrorsTotal.WithLabelValues(string(models.QueryTypeNews)).Inc()
		o.logger.Printf("news summarization failed: %v", err)
	} else {
		st.answer = summary
	}

	st.appendPair()
	return nil
}

// runGeneralBranch answers over conversation context. A completion failure
// here is fatal to the turn; the caller decides presentation.
func (o *Orchestrator) runGeneralBranch(ctx context.Context, st *turnState) error {
	answer, err := GeneralAnswer(ctx, o.llm, st.input.Query, st.history)
	if err != nil {
		return fmt.Errorf("general answer: %w", err)
	}

	st.answer = answer
	st.appendPair()
	return nil
}

// finalize is the convergence step both branches pass through. It performs
// no mutation; the hook exists for future format enforcement.
func (o *Orchestrator) finalize(st *turnState) {
	o.logger.Printf("turn complete: type=%s history=%d", st.queryType, len(st.history))
}
