package backfill

import (
	"context"
	"log/slog"

	"github.com/acervo-dev/acervo/internal/dates"
	"github.com/acervo-dev/acervo/internal/repository"
)

// Stats summarizes one backfill run.
type Stats struct {
	Scanned int
	Dated   int
	NoDate  int
	Failed  int
}

// Service re-runs date extraction over documents that were stored without a
// document date, typically after the extraction patterns improve.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	return &Service{
		docs:   docs,
		logger: logger,
	}
}

// Run scans every undated document, extracts a date from its raw content, and
// fills document_date where one is found. Existing dates are never rewritten;
// per-document failures are logged and the run continues.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	docs, err := s.docs.ListMissingDate(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Scanned: len(docs)}
	for _, doc := range docs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		date, ok := dates.Extract(doc.OriginalContent)
		if !ok {
			stats.NoDate++
			continue
		}

		if err := s.docs.SetDocumentDate(ctx, doc.ID, date); err != nil {
			s.logger.Error("failed to backfill document date", "id", doc.ID, "file_name", doc.FileName, "error", err)
			stats.Failed++
			continue
		}

		s.logger.Info("backfilled document date", "id", doc.ID, "file_name", doc.FileName, "document_date", date.Format("2006-01-02"))
		stats.Dated++
	}

	s.logger.Info("backfill completed",
		"scanned", stats.Scanned,
		"dated", stats.Dated,
		"no_date", stats.NoDate,
		"failed", stats.Failed)

	return stats, nil
}
