package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	marketpostgres "github.com/delibro/delibro/internal/domains/marketplace/adapters/persistence/postgres"
	platformpostgres "github.com/delibro/delibro/internal/platform/postgres"
)

// The sweeper pays out scheduled transactions whose payout date has passed.
// It backstops the Temporal payout workflows when the cluster was down at
// order time.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot sweep settlements")
	}

	ledger := marketpostgres.NewLedger(db)
	settled, err := ledger.SettleOverdue(ctx, time.Now())
	if err != nil {
		log.Fatalf("failed to sweep settlements: %v", err)
	}
	log.Printf("settlement sweep completed, %d transactions paid", settled)
}
