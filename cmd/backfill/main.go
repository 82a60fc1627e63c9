package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/acervo-dev/acervo/internal/backfill"
	"github.com/acervo-dev/acervo/internal/common"
	repo "github.com/acervo-dev/acervo/internal/repository"
)

func main() {
	inmem := flag.Bool("inmem", false, "use in-memory SQLite database")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	dbResult, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	docsRepo := repo.NewDocumentRepository(dbResult.Client, logger)

	stats, err := backfill.NewService(docsRepo, logger).Run(ctx)
	if err != nil {
		logger.Error("backfill failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Backfill complete!\n")
	fmt.Printf("- Scanned: %d\n", stats.Scanned)
	fmt.Printf("- Dated: %d\n", stats.Dated)
	fmt.Printf("- Still undated: %d\n", stats.NoDate)
	fmt.Printf("- Failed: %d\n", stats.Failed)
}
