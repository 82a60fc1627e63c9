package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/acervo-dev/acervo/gen/proto/acervo/v1"
	"github.com/acervo-dev/acervo/internal/backfill"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/export"
	"github.com/acervo-dev/acervo/internal/extract"
	"github.com/acervo-dev/acervo/internal/files"
	"github.com/acervo-dev/acervo/internal/ingest"
	"github.com/acervo-dev/acervo/internal/metrics"
	"github.com/acervo-dev/acervo/internal/ocr"
	repo "github.com/acervo-dev/acervo/internal/repository"
	"github.com/acervo-dev/acervo/internal/search"
	svc "github.com/acervo-dev/acervo/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	stopMetrics := metrics.StartServer(cfg.Server.MetricsAddr)

	docsRepo := repo.NewDocumentRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	ocrAdapter := extract.NewOCRAdapter(extractor)

	ingestor := ingest.NewFSIngestor(docsRepo, ocrAdapter, logger)
	backfiller := backfill.NewService(docsRepo, logger)
	engine := search.NewEngine(docsRepo, logger)
	fileSvc := files.NewService(cfg.Ingest.DocumentsDir, logger)
	exportSvc := export.NewService(docsRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)),
	)

	v1.RegisterSearchServiceServer(grpcServer, svc.NewSearchService(engine, m, logger))
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, backfiller, m, logger))
	v1.RegisterFileServiceServer(grpcServer, svc.NewFileService(fileSvc, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if cfg.Ingest.Watch {
		startWatch(ctx, cfg, ingestor, logger)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("acervod listening", "addr", cfg.Server.GRPCAddr, "documents_dir", cfg.Ingest.DocumentsDir)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = stopMetrics(shutdownCtx)
	grpcServer.GracefulStop()
}

// startWatch ingests every PDF dropped into the documents directory while the
// daemon runs.
func startWatch(ctx context.Context, cfg *common.Config, ingestor ingest.Ingestor, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:     cfg.Ingest.DocumentsDir,
		Debounce: cfg.Ingest.WatchDebounce,
	})
	if err != nil {
		logger.Error("failed to start directory watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching documents directory", "root", cfg.Ingest.DocumentsDir)

	go func() {
		for {
			select {
			case <-ctx.Done():
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
	}()
}
