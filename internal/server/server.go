package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/newsgenie-ai/newsgenie/config"
	"github.com/newsgenie-ai/newsgenie/genie"
	"github.com/newsgenie-ai/newsgenie/news"
	"github.com/newsgenie-ai/newsgenie/provider"
	"github.com/newsgenie-ai/newsgenie/session"
	"github.com/newsgenie-ai/newsgenie/websearch"
)

// Run wires the turn pipeline and serves the HTTP API until the listener
// stops.
func Run(cfg *config.Config) error {
	llm, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating completion provider: %w", err)
	}

	orch := genie.NewOrchestrator(llm,
		news.NewFetcher(cfg.Sources.NewsAPI),
		websearch.NewAdapter(cfg.Sources.WebSearch),
	)
	sessions := session.NewStore(session.InMemoryStore)

	e := newEcho()

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api")
	if cfg.Server.JWTSecret != "" {
		api.Use(authMiddleware([]byte(cfg.Server.JWTSecret)))
	}
	(&ChatHandler{Orchestrator: orch, Sessions: sessions}).Register(api)

	return e.Start(cfg.Server.Address)
}

// newEcho builds the echo instance with the shared middleware stack and the
// unified JSON error handler.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	return e
}
