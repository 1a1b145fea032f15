// RecruitFlow server — screens applicants with automated voice calls,
// scores transcripts, chases CVs over WhatsApp and email, and drives the
// application pipeline through its periodic jobs.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/recruitflow/recruitflow/pkg/api"
	"github.com/recruitflow/recruitflow/pkg/cache"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/database"
	"github.com/recruitflow/recruitflow/pkg/evaluation"
	"github.com/recruitflow/recruitflow/pkg/llm"
	"github.com/recruitflow/recruitflow/pkg/messaging"
	"github.com/recruitflow/recruitflow/pkg/scheduler"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		slog.Error("Invalid scheduler timezone", "timezone", cfg.Scheduler.Timezone, "error", err)
		os.Exit(1)
	}

	slog.Info("Starting RecruitFlow",
		"environment", cfg.Environment,
		"listen_addr", cfg.ListenAddr,
		"timezone", cfg.Scheduler.Timezone)

	ctx := context.Background()

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

	// Sidebar-counts cache; the pipeline works without Redis, reads just
	// fall back to direct queries.
	countsCache := cache.New(cfg.Redis)
	defer countsCache.Close()
	if err := countsCache.Ping(ctx); err != nil {
		slog.Warn("Redis unavailable, sidebar counts will be queried directly", "error", err)
	}

	apps := services.NewApplicationService(dbClient.Client, countsCache)
	settings := services.NewSettingService(dbClient.Client)
	replies := services.NewReplyService(dbClient.Client)

	va := voiceagent.NewClient(cfg.VoiceAgent)
	if !va.Configured() {
		slog.Warn("Voice agent credentials not configured, call dispatch disabled")
	}
	dispatcher := voiceagent.NewDispatcher(dbClient.Client, apps, va, loc)
	reducer := voiceagent.NewReducer(dbClient.Client, apps)

	whapi := messaging.NewWhapiClient(cfg.Whapi)
	gmail, err := messaging.NewGmailSender(ctx, cfg.Gmail)
	if err != nil {
		slog.Error("Failed to initialize Gmail client", "error", err)
		os.Exit(1)
	}
	var emailSender messaging.EmailSender
	var mailbox scheduler.Mailbox
	if gmail != nil {
		emailSender = gmail
		mailbox = gmail
	} else {
		slog.Warn("Gmail credentials not configured, email channel disabled")
	}
	messages := messaging.NewMessageService(dbClient.Client, apps, whapi, emailSender)

	llmClient := llm.NewClient(cfg.Anthropic)
	var extractor cvmatch.ContactExtractor
	var evaluator *evaluation.Adapter
	if llmClient.Configured() {
		extractor = llmClient
		evaluator = evaluation.NewAdapter(dbClient.Client, apps, llmClient, messages)
	} else {
		slog.Warn("Anthropic credentials not configured, evaluation and CV content matching disabled")
	}

	matcher := cvmatch.NewMatcher(dbClient.Client, apps, replies, extractor, cvmatch.NewFileStore(cfg.CVStoreDir))

	// A typed nil adapter must not reach the interface fields, both
	// consumers gate on a nil interface.
	var apiEvaluator api.Evaluator
	var jobEvaluator scheduler.Evaluator
	if evaluator != nil {
		apiEvaluator = evaluator
		jobEvaluator = evaluator
	}

	jobs := scheduler.NewJobs(
		dbClient.Client, apps, settings, replies, messages, matcher,
		dispatcher, reducer, va, jobEvaluator, mailbox, cfg.Scheduler,
	)

	// Calls stranded by a previous crash are failed before any job or
	// webhook can touch them.
	if err := jobs.StartupSweep(ctx); err != nil {
		slog.Error("Startup sweep failed", "error", err)
		// Non-fatal — continue
	}

	sched := scheduler.New()
	jobs.Register(sched)
	sched.Start(ctx)
	defer sched.Stop()

	apiServer := api.NewServer(dbClient, cfg, reducer, apiEvaluator, matcher, replies, whapi)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           apiServer.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Deferred: scheduler stop waits for in-flight jobs, then DB close.
	slog.Info("Shutdown complete")
}
