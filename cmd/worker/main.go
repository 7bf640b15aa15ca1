package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	marketmemory "github.com/delibro/delibro/internal/domains/marketplace/adapters/memory"
	marketpostgres "github.com/delibro/delibro/internal/domains/marketplace/adapters/persistence/postgres"
	marketapp "github.com/delibro/delibro/internal/domains/marketplace/application"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
	platformobservability "github.com/delibro/delibro/internal/platform/observability"
	platformpostgres "github.com/delibro/delibro/internal/platform/postgres"
	settlementactivities "github.com/delibro/delibro/internal/platform/temporal/activities/settlement"
	settlementworkflows "github.com/delibro/delibro/internal/platform/temporal/workflows/settlement"
)

func main() {
	ctx := context.Background()
	const serviceName = "delibro-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	ledger, cleanupLedger := buildLedger(ctx, logger)
	defer cleanupLedger()
	marketService := marketapp.NewService(ledger, marketapp.WithLogger(logger))
	activities := settlementactivities.NewActivities(marketService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, settlementworkflows.PayoutTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(settlementworkflows.PayoutWorkflow, workflow.RegisterOptions{Name: settlementworkflows.PayoutWorkflowName})
	w.RegisterActivityWithOptions(activities.MarkTransactionPaid, activity.RegisterOptions{Name: settlementactivities.MarkTransactionPaidActivityName})

	logger.Info("worker listening", slog.String("taskQueue", settlementworkflows.PayoutTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildLedger(ctx context.Context, logger *slog.Logger) (marketports.Ledger, func()) {
	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory ledger")
		return marketmemory.NewLedger(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres (falling back to memory)", slog.String("error", err.Error()))
		return marketmemory.NewLedger(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection (falling back to memory)", slog.String("error", err.Error()))
		return marketmemory.NewLedger(), func() {}
	}
	logger.Info("worker ledger configured with postgres")
	return marketpostgres.NewLedger(db), func() { _ = sqlDB.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
