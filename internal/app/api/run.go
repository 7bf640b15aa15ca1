package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	delibroserver "github.com/delibro/delibro/go"

	marketmemory "github.com/delibro/delibro/internal/domains/marketplace/adapters/memory"
	marketobs "github.com/delibro/delibro/internal/domains/marketplace/adapters/observability"
	marketpostgres "github.com/delibro/delibro/internal/domains/marketplace/adapters/persistence/postgres"
	marketworkflows "github.com/delibro/delibro/internal/domains/marketplace/adapters/workflows"
	marketapp "github.com/delibro/delibro/internal/domains/marketplace/application"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
	pricingapp "github.com/delibro/delibro/internal/domains/pricing/application"
	pricingdomain "github.com/delibro/delibro/internal/domains/pricing/domain"
	platformobservability "github.com/delibro/delibro/internal/platform/observability"
	platformpostgres "github.com/delibro/delibro/internal/platform/postgres"
)

// Run boots the delibro HTTP API with observability, the ledger, and
// settlement workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "delibro-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	ledger, cleanupLedger := buildLedger(ctx, cfg, logger)
	defer cleanupLedger()

	var scheduler marketports.SettlementScheduler = marketworkflows.NewInlineSettlements()
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, settlement falls back to sweeping", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		scheduler = marketworkflows.NewTemporalSettlements(temporalClient)
		logger.Info("Temporal settlement workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	coreService := marketapp.NewService(ledger,
		marketapp.WithSettlementScheduler(scheduler),
		marketapp.WithLogger(logger),
	)
	marketService := marketobs.New(
		coreService,
		marketobs.WithLogger(logger),
		marketobs.WithTracer(instruments.Tracer("internal.marketplace.application")),
		marketobs.WithMeter(instruments.Meter("internal.marketplace.application")),
	)

	pricingOpts := []pricingapp.Option{}
	if cfg.PricingFillerSeed != nil {
		pricingOpts = append(pricingOpts, pricingapp.WithMatrix(pricingdomain.NewMatrix(pricingdomain.WithFillerSeed(*cfg.PricingFillerSeed))))
	}
	pricingService := pricingapp.NewService(pricingOpts...)

	handlers := delibroserver.ApiHandleFunctions{
		ShopAPI:       delibroserver.NewShopAPI(marketService),
		ProductAPI:    delibroserver.NewProductAPI(marketService),
		OrderAPI:      delibroserver.NewOrderAPI(marketService),
		SettlementAPI: delibroserver.NewSettlementAPI(marketService),
		ModerationAPI: delibroserver.NewModerationAPI(marketService),
		PricingAPI:    delibroserver.NewPricingAPI(pricingService),
	}

	router := delibroserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("delibro API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("delibro API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildLedger(ctx context.Context, cfg Config, logger *slog.Logger) (marketports.Ledger, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory ledger")
		return marketmemory.NewLedger(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory ledger", slog.String("error", err.Error()))
		return marketmemory.NewLedger(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory ledger", slog.String("error", err.Error()))
		return marketmemory.NewLedger(), func() {}
	}
	logger.Info("ledger configured with postgres")
	return marketpostgres.NewLedger(db), func() { _ = sqlDB.Close() }
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
