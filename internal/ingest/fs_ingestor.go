package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/acervo-dev/acervo/constants"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/dates"
	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/extract"
	"github.com/acervo-dev/acervo/internal/repository"
	"github.com/acervo-dev/acervo/internal/textproc"
)

// FSIngestor reads PDFs from the local filesystem and turns each one into a
// document record: extraction cascade, normalization, date inference,
// persistence. One file at a time; each record commit is atomic.
type FSIngestor struct {
	docs      repository.DocumentRepository
	extractor extract.TextExtractor
	logger    *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, tx extract.TextExtractor, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{docs: docs, extractor: tx, logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{FilePath: path, Err: err.Error()}, err
	}
	out := Result{FilePath: abs}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !constants.AllowedExt(ext) {
		err := fmt.Errorf("unsupported or missing extension: %q", ext)
		out.Err = err.Error()
		return out, err
	}

	exists, err := i.docs.ExistsByPath(ctx, abs)
	if err != nil {
		out.Err = err.Error()
		return out, common.WrapError(err, "check existing document")
	}
	if exists {
		i.logger.Info("skipping document, already ingested", "path", abs)
		out.Skipped = true
		out.SkipReason = "duplicate"
		return out, nil
	}

	res, err := i.extractor.Extract(ctx, abs)
	if err != nil {
		// Extraction failures never abort a run; the file is skipped.
		i.logger.Error("extraction failed", "path", abs, "error", err)
		out.Skipped = true
		out.SkipReason = "unextractable"
		return out, nil
	}
	if strings.TrimSpace(res.Text) == "" {
		i.logger.Warn("no text extracted, skipping document", "path", abs)
		out.Skipped = true
		out.SkipReason = "unextractable"
		return out, nil
	}
	out.Method = res.Method

	normalized := textproc.Normalize(res.Text)
	var docDate *time.Time
	if d, ok := dates.Extract(res.Text); ok {
		docDate = &d
		out.DateFound = true
	} else {
		i.logger.Info("no document date found", "path", abs)
	}

	doc, err := i.docs.Create(ctx, &entity.Document{
		FileName:        filepath.Base(abs),
		FilePath:        abs,
		Content:         normalized,
		OriginalContent: res.Text,
		DocumentDate:    docDate,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			// Raced with another ingest of the same path; treat as skip.
			i.logger.Info("duplicate document on insert, skipping", "path", abs)
			out.Skipped = true
			out.SkipReason = "duplicate"
			return out, nil
		}
		out.Err = err.Error()
		return out, common.WrapError(err, "create document")
	}

	out.DocumentID = doc.ID.String()
	out.IngestedAt = doc.IngestedAt
	i.logger.Info("document ingested",
		"path", abs,
		"document_id", out.DocumentID,
		"method", res.Method,
		"pages", res.Pages,
		"date_found", out.DateFound,
	)
	return out, nil
}

// IngestDirectory enumerates *.pdf directly inside dir (non-recursive) and
// ingests each file. Per-file extraction problems are recorded and skipped;
// only store failures abort the run.
func (i *FSIngestor) IngestDirectory(ctx context.Context, dir string) ([]Result, Stats, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, Stats{}, errors.New("directory is required")
	}

	pattern := filepath.Join(dir, "*.pdf")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, Stats{}, common.WrapError(err, "enumerate pdfs")
	}
	sort.Strings(matches)

	var results []Result
	var stats Stats
	for _, path := range matches {
		stats.Scanned++

		r, err := i.IngestPath(ctx, path)
		results = append(results, r)
		if err != nil {
			// Only store-level failures surface from IngestPath; they
			// abort the remainder of the run.
			stats.Failed++
			return results, stats, err
		}
		switch {
		case r.Skipped && r.SkipReason == "duplicate":
			stats.Duplicates++
		case r.Skipped && r.SkipReason == "unextractable":
			stats.Unextractable++
		default:
			stats.Ingested++
		}
	}

	i.logger.Info("directory ingest completed",
		"dir", dir,
		"scanned", stats.Scanned,
		"ingested", stats.Ingested,
		"duplicates", stats.Duplicates,
		"unextractable", stats.Unextractable,
		"failed", stats.Failed,
	)
	return results, stats, nil
}
