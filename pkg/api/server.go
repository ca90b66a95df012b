// Package api exposes the HTTP surface: thread and run management,
// trigger CRUD, webhook ingress, the SSE event stream, health and
// metrics. Handlers stay thin; behaviour lives in the service layer and
// errors come back through mapServiceError.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/database"
	"github.com/weftlabs/weft/pkg/events"
	"github.com/weftlabs/weft/pkg/execution"
	"github.com/weftlabs/weft/pkg/observe"
	"github.com/weftlabs/weft/pkg/queue"
	"github.com/weftlabs/weft/pkg/services"
)

// Server hosts the HTTP API. All collaborator fields are optional for
// construction; handlers that need an absent one answer 503 so a
// partially wired deployment degrades instead of panicking.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	threads   *services.ThreadService
	messages  *services.MessageService
	runs      *services.RunService
	agents    *services.AgentService
	credits   *services.CreditService
	triggers  *services.TriggerService
	queue     *queue.Queue
	pool      *queue.WorkerPool
	events    *events.ConnectionManager
	execution *execution.Service
	metrics   *observe.Metrics
	logger    *slog.Logger
	podID     string

	router  *echo.Echo
	httpSrv *http.Server
}

// Deps carries the collaborators for NewServer.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Threads   *services.ThreadService
	Messages  *services.MessageService
	Runs      *services.RunService
	Agents    *services.AgentService
	Credits   *services.CreditService
	Triggers  *services.TriggerService
	Queue     *queue.Queue
	Pool      *queue.WorkerPool
	Events    *events.ConnectionManager
	Execution *execution.Service
	Metrics   *observe.Metrics
	PodID     string
}

// NewServer wires the routes and middleware onto a fresh echo instance.
func NewServer(deps Deps) *Server {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = observe.DefaultMetrics()
	}
	s := &Server{
		cfg:       deps.Config,
		db:        deps.DB,
		threads:   deps.Threads,
		messages:  deps.Messages,
		runs:      deps.Runs,
		agents:    deps.Agents,
		credits:   deps.Credits,
		triggers:  deps.Triggers,
		queue:     deps.Queue,
		pool:      deps.Pool,
		events:    deps.Events,
		execution: deps.Execution,
		metrics:   metrics,
		logger:    slog.With("component", "api"),
		podID:     deps.PodID,
	}
	s.router = s.routes()
	return s
}

// Handler exposes the router so tests can serve it over httptest
// without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// routes builds the router. Webhook ingress lives under /api next to
// the resources it creates; /metrics stays at the root where scrapers
// expect it.
func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestTelemetry(s.metrics, s.logger))

	g := e.Group("/api")
	g.POST("/threads", s.createThreadHandler)
	g.GET("/threads/:thread_id/messages", s.listMessagesHandler)
	g.POST("/threads/:thread_id/messages", s.appendMessageHandler)
	g.POST("/threads/:thread_id/runs", s.startRunHandler)
	g.GET("/threads/:thread_id/stream", s.streamHandler)
	g.POST("/agent-runs/:run_id/stop", s.stopRunHandler)
	g.GET("/agent-runs/:run_id", s.getRunHandler)
	g.POST("/agents/:agent_id/triggers", s.createTriggerHandler)
	g.GET("/agents/:agent_id/triggers", s.listTriggersHandler)
	g.GET("/triggers/:trigger_id", s.getTriggerHandler)
	g.PATCH("/triggers/:trigger_id", s.updateTriggerHandler)
	g.DELETE("/triggers/:trigger_id", s.deleteTriggerHandler)
	g.POST("/triggers/:trigger_id/webhook", s.triggerWebhookHandler)
	g.POST("/composio/webhook", s.composioWebhookHandler)
	g.GET("/health", s.healthHandler)

	e.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})
	return e
}

// Start serves HTTP on addr until Shutdown or a listener failure. A
// clean Shutdown surfaces as http.ErrServerClosed, matching net/http
// semantics so main can filter it. WriteTimeout stays unset because the
// SSE stream holds its response open indefinitely.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
// Open SSE streams never drain on their own; the caller's deadline
// bounds the wait.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
