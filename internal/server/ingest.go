package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/acervo-dev/acervo/gen/proto/acervo/v1"
	"github.com/acervo-dev/acervo/internal/backfill"
	"github.com/acervo-dev/acervo/internal/ingest"
	"github.com/acervo-dev/acervo/internal/metrics"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	backfill *backfill.Service
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, bf *backfill.Service, m *metrics.Metrics, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		backfill: bf,
		metrics:  m,
		logger:   logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	start := time.Now()
	r, err := s.ingestor.IngestPath(ctx, path)
	s.observe(r, time.Since(start), err)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "ingest: %v", err)
	}
	s.logger.Info("file ingest finished", "path", path, "document_id", r.DocumentID, "skipped", r.Skipped, "skip_reason", r.SkipReason)

	return toPBResult(r), nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "root", root)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root)
	for _, r := range results {
		s.observe(r, 0, nil)
	}
	if err != nil {
		// store errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.Internal, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"root", root,
		"scanned", stats.Scanned,
		"ingested", stats.Ingested,
		"duplicates", stats.Duplicates,
		"unextractable", stats.Unextractable,
		"failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:       int32(stats.Scanned),
		Ingested:      int32(stats.Ingested),
		Duplicates:    int32(stats.Duplicates),
		Unextractable: int32(stats.Unextractable),
		Failed:        int32(stats.Failed),
		Results:       make([]*v1.IngestResponse, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, toPBResult(r))
	}
	return out, nil
}

func (s *IngestionService) BackfillDates(ctx context.Context, _ *v1.BackfillDatesRequest) (*v1.BackfillDatesResponse, error) {
	s.logger.Info("starting date backfill")
	stats, err := s.backfill.Run(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "backfill: %v", err)
	}
	return &v1.BackfillDatesResponse{
		Scanned: int32(stats.Scanned),
		Dated:   int32(stats.Dated),
		NoDate:  int32(stats.NoDate),
		Failed:  int32(stats.Failed),
	}, nil
}

func (s *IngestionService) observe(r ingest.Result, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case err != nil || r.Err != "":
		s.metrics.DocsIngestedTotal.WithLabelValues("failed").Inc()
	case r.Skipped:
		s.metrics.DocsIngestedTotal.WithLabelValues(r.SkipReason).Inc()
	default:
		s.metrics.DocsIngestedTotal.WithLabelValues("ingested").Inc()
		if r.Method != "" {
			s.metrics.ExtractionMethodTotal.WithLabelValues(r.Method).Inc()
		}
		if r.DateFound {
			s.metrics.DatesExtractedTotal.WithLabelValues("found").Inc()
		} else {
			s.metrics.DatesExtractedTotal.WithLabelValues("not_found").Inc()
		}
	}
	if elapsed > 0 {
		s.metrics.IngestDuration.Observe(elapsed.Seconds())
	}
}

func toPBResult(r ingest.Result) *v1.IngestResponse {
	out := &v1.IngestResponse{
		DocumentId:       r.DocumentID,
		SourcePath:       r.FilePath,
		Skipped:          r.Skipped,
		SkipReason:       r.SkipReason,
		DateFound:        r.DateFound,
		ExtractionMethod: r.Method,
		Error:            r.Err,
	}
	if !r.IngestedAt.IsZero() {
		out.IngestedAt = r.IngestedAt.UTC().Format(time.RFC3339)
	}
	return out
}
