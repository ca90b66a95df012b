// Weft agent server — serves the conversation API, runs the queue
// workers, and executes agent runs against the configured LLM providers.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/weftlabs/weft/pkg/api"
	"github.com/weftlabs/weft/pkg/cleanup"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/contextmgr"
	"github.com/weftlabs/weft/pkg/database"
	"github.com/weftlabs/weft/pkg/events"
	"github.com/weftlabs/weft/pkg/execution"
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/observe"
	"github.com/weftlabs/weft/pkg/processor"
	"github.com/weftlabs/weft/pkg/queue"
	"github.com/weftlabs/weft/pkg/runner"
	"github.com/weftlabs/weft/pkg/sandbox"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/tokens"
	"github.com/weftlabs/weft/pkg/tools"
	"github.com/weftlabs/weft/pkg/triggers"
	"github.com/weftlabs/weft/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for run ownership and
// orphan recovery. Priority: POD_ID env > configured pod_id > "local"
func resolvePodID(cfg *config.Config) string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if cfg.System.PodID != "" {
		return cfg.System.PodID
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	podID := resolvePodID(cfg)
	slog.Info("Starting Weft",
		"version", version.Full(),
		"listen_addr", cfg.System.ListenAddr,
		"pod_id", podID,
		"config_dir", *configDir)

	// 2. Initialize telemetry. Must precede anything that resolves the
	// default metrics instance against the global meter provider.
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    version.AppName,
		ServiceVersion: version.GitCommit,
	})
	if err != nil {
		slog.Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	metrics, err := observe.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		slog.Error("Failed to create metrics", "error", err)
		os.Exit(1)
	}

	// 3. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. Connect Redis and build the run queue
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: os.Getenv(cfg.Redis.PasswordEnv),
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	runQueue := queue.New(rdb, cfg.Queue)
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	// 5. Domain services
	threadService := services.NewThreadService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client, threadService)
	runService := services.NewRunService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	creditService := services.NewCreditService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	providerRegistry := triggers.NewRegistry()
	providerRegistry.Register(triggers.NewScheduleProvider(
		dbClient.DB(), cfg.System.BaseURL, os.Getenv(cfg.Triggers.SchedulerSecretEnv)))
	providerRegistry.Register(triggers.NewWebhookProvider())
	providerRegistry.Register(triggers.NewComposioProvider(
		dbClient.Client, cfg.Triggers.ComposioBaseURL, os.Getenv(cfg.Triggers.ComposioAPIKeyEnv)))
	triggerService := services.NewTriggerService(dbClient.Client, providerRegistry)
	slog.Info("Services initialized")

	// 6. One-time startup orphan cleanup. Requeues runs this pod owned
	// before a crash or redeploy. Non-fatal — the periodic scan catches
	// anything missed here.
	if requeued, err := queue.CleanupStartupOrphans(ctx, runService, runQueue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
	} else if requeued > 0 {
		slog.Info("Requeued orphaned runs from previous instance", "count", requeued)
	}

	// 7. LLM router
	llmRouter, err := llm.NewRouter(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM router", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmRouter.Close(); err != nil {
			slog.Error("Error closing LLM router", "error", err)
		}
	}()
	slog.Info("LLM router initialized", "default_model", cfg.LLM.DefaultModel)

	// 8. Streaming infrastructure
	eventPublisher := events.NewPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 9. Thread runner stack
	sandboxClient := sandbox.NewClient(cfg.Sandbox)

	var counter *tokens.Counter
	if anthropicClient, ok := llmRouter.Anthropic(); ok {
		counter = tokens.NewCounter(anthropicClient)
	} else {
		counter = tokens.NewCounter(nil)
	}
	compressor := contextmgr.NewManager(counter, messageService)

	toolRegistry := tools.NewRegistry()
	toolRegistry.Register(tools.NewAskTool())
	toolRegistry.Register(tools.NewCompleteTool())
	toolRegistry.Register(tools.NewExpandMessageTool(messageService))
	toolRegistry.Register(tools.NewWebSearchTool(sandboxClient))

	proc := processor.New(messageService, creditService, toolRegistry, slog.Default())
	threadRunner := runner.New(runner.Deps{
		LLM:        llmRouter,
		Processor:  proc,
		History:    messageService,
		Threads:    threadService,
		Credits:    creditService,
		Runs:       runService,
		Compressor: compressor,
		Registry:   toolRegistry,
		Config:     cfg.LLM,
	})

	// 10. Start worker pool (before HTTP server)
	executor := queue.NewRunnerExecutor(queue.ExecutorDeps{
		Runner:    threadRunner,
		Threads:   threadService,
		Agents:    agentService,
		Projects:  projectService,
		Publisher: eventPublisher,
		Config:    cfg.LLM,
	})
	workerPool := queue.NewWorkerPool(podID, runQueue, executor, runService, eventPublisher, cfg.Queue)
	workerPool.Start(ctx)

	// 11. Execution service (trigger event → agent run pipeline)
	executionService := execution.NewService(execution.Deps{
		Verifier:     execution.NewVerifier(os.Getenv(cfg.Triggers.WebhookSecretEnv)),
		Redis:        rdb,
		Triggers:     triggerService,
		Projects:     projectService,
		Sandboxes:    sandboxClient,
		Threads:      threadService,
		Messages:     messageService,
		Agents:       agentService,
		Credits:      creditService,
		Runs:         runService,
		Queue:        runQueue,
		PodID:        podID,
		DefaultModel: cfg.LLM.DefaultModel,
	})

	// 12. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, eventService, triggerService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 13. Create HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:    cfg,
		DB:        dbClient,
		Threads:   threadService,
		Messages:  messageService,
		Runs:      runService,
		Agents:    agentService,
		Credits:   creditService,
		Triggers:  triggerService,
		Queue:     runQueue,
		Pool:      workerPool,
		Events:    connManager,
		Execution: executionService,
		Metrics:   metrics,
		PodID:     podID,
	})

	// 14. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(cfg.System.ListenAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Weft started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown. Workers first so active runs finish inside
	// the budget; runs that overrun are reclaimed by orphan recovery.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
