package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsgenie-ai/newsgenie/genie"
	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/session"
)

// TurnRunner is what the handler needs from the orchestrator.
type TurnRunner interface {
	Run(ctx context.Context, in genie.TurnInput) (genie.TurnResult, error)
}

// ChatHandler exposes the turn entry point. When a session id is used the
// handler owns loading and saving that session's history around the turn;
// otherwise the caller supplies and keeps the history.
type ChatHandler struct {
	Orchestrator TurnRunner
	Sessions     session.Store
}

func (h *ChatHandler) Register(g *echo.Group) {
	g.POST("/chat", h.chat)
	g.GET("/sessions/:id/history", h.history)
}

type chatRequest struct {
	Query     string           `json:"query"`
	History   []models.Message `json:"history"`
	SessionID string           `json:"session_id"`
	Category  string           `json:"category"`
}

type chatResponse struct {
	Answer    string            `json:"answer"`
	Items     []models.NewsItem `json:"items"`
	Error     string            `json:"error,omitempty"`
	History   []models.Message  `json:"history"`
	QueryType models.QueryType  `json:"query_type"`
	Category  string            `json:"category,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
}

func (h *ChatHandler) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	history := req.History
	var sess session.Session
	if req.SessionID != "" {
		var err error
		sess, err = h.Sessions.EnsureSession(req.SessionID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		history = sess.History()
	}

	result, err := h.Orchestrator.Run(c.Request().Context(), genie.TurnInput{
		Query:        req.Query,
		History:      history,
		CategoryHint: req.Category,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := chatResponse{
		Answer:    result.Answer,
		Items:     result.Items,
		Error:     result.Error,
		History:   result.History,
		QueryType: result.QueryType,
		Category:  result.Category,
	}
	if resp.Items == nil {
		resp.Items = []models.NewsItem{}
	}
	if sess != nil {
		sess.SetHistory(result.History)
		resp.SessionID = sess.ID()
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) history(c echo.Context) error {
	sess, err := h.Sessions.GetSession(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if sess == nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sess.ID(),
		"history":    sess.History(),
	})
}
