package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/acervo-dev/acervo/internal/backfill"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/export"
	"github.com/acervo-dev/acervo/internal/extract"
	"github.com/acervo-dev/acervo/internal/ingest"
	"github.com/acervo-dev/acervo/internal/ocr"
	repo "github.com/acervo-dev/acervo/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir        = flag.String("dir", "", "directory to ingest PDFs from (required)")
		watch      = flag.Bool("watch", false, "keep running and ingest files as they appear")
		doBackfill = flag.Bool("backfill", false, "re-run date extraction over undated documents after ingest")
		out        = flag.String("out", "", "write an XLSX catalog to this path after ingest (optional)")
		fromStr    = flag.String("from", "", "catalog from date YYYY-MM-DD")
		toStr      = flag.String("to", "", "catalog to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		printError("Error: DB_URL is required unless --inmem is set\n")
		os.Exit(1)
	}

	dbResult, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	ingestor := ingest.NewFSIngestor(docsRepo, extract.NewOCRAdapter(extractor), logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"ingested", stats.Ingested,
		"duplicates", stats.Duplicates,
		"unextractable", stats.Unextractable,
		"failed", stats.Failed)

	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file failed", "path", r.FilePath, "error", r.Err)
		}
	}

	if *doBackfill {
		bfStats, err := backfill.NewService(docsRepo, logger).Run(ctx)
		if err != nil {
			logger.Error("backfill failed", "error", err)
			os.Exit(1)
		}
		logger.Info("backfill complete", "scanned", bfStats.Scanned, "dated", bfStats.Dated)
	}

	if *out != "" {
		xlsxBytes, err := export.NewService(docsRepo, logger).ExportCatalogXLSX(ctx, from, to)
		if err != nil {
			logger.Error("failed to export catalog", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("catalog written", "output", *out)
	}

	if *watch {
		runWatch(ctx, *dir, cfg.Ingest.WatchDebounce, ingestor, logger)
		return
	}

	fmt.Printf("Ingestion complete!\n")
	fmt.Printf("- Scanned: %d\n", stats.Scanned)
	fmt.Printf("- Ingested: %d\n", stats.Ingested)
	fmt.Printf("- Duplicates: %d\n", stats.Duplicates)
	fmt.Printf("- Unextractable: %d\n", stats.Unextractable)
	fmt.Printf("- Failed: %d\n", stats.Failed)
}

func runWatch(ctx context.Context, dir string, debounce time.Duration, ingestor ingest.Ingestor, logger *slog.Logger) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger.Error("failed to resolve directory", "dir", dir, "error", err)
		os.Exit(1)
	}
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{Root: abs, Debounce: debounce})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for new documents", "dir", abs)

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			if _, err := ingestor.IngestPath(ctx, path); err != nil {
				logger.Error("failed to ingest watched file", "path", path, "error", err)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
