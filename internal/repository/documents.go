package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acervo-dev/acervo/gen/ent"
	entdoc "github.com/acervo-dev/acervo/gen/ent/document"
	"github.com/acervo-dev/acervo/gen/ent/predicate"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/utils"
)

// DateRange bounds document_date inclusively. Nil ends are unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ExistsByPath(ctx context.Context, filePath string) (bool, error)
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	// ListByDate returns all documents inside the date range, in ingestion order.
	ListByDate(ctx context.Context, r DateRange) ([]*entity.Document, error)
	// MatchExact returns documents whose normalized or raw content equals query.
	MatchExact(ctx context.Context, query string, r DateRange) ([]*entity.Document, error)
	// MatchSubstring returns documents whose normalized or raw content contains
	// any of the terms, case-insensitively.
	MatchSubstring(ctx context.Context, terms []string, r DateRange) ([]*entity.Document, error)
	ListMissingDate(ctx context.Context) ([]*entity.Document, error)
	// SetDocumentDate fills document_date on a record that has none.
	SetDocumentDate(ctx context.Context, id uuid.UUID, date time.Time) error
}

type documentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		client: client,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get document", "id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) ExistsByPath(ctx context.Context, filePath string) (bool, error) {
	exists, err := r.client.Document.Query().
		Where(entdoc.FilePath(filePath)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check document existence", "file_path", filePath, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	builder := r.client.Document.Create().
		SetFileName(doc.FileName).
		SetFilePath(doc.FilePath).
		SetContent(doc.Content).
		SetOriginalContent(doc.OriginalContent).
		SetNillableDocumentDate(doc.DocumentDate)
	if !doc.IngestedAt.IsZero() {
		builder = builder.SetIngestedAt(doc.IngestedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrDuplicate
		}
		r.logger.Error("failed to create document", "file_path", doc.FilePath, "error", err)
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) ListByDate(ctx context.Context, dr DateRange) ([]*entity.Document, error) {
	rows, err := r.dateFiltered(dr).
		Order(entdoc.ByIngestedAt(), entdoc.ByFilePath()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by date", "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepo) MatchExact(ctx context.Context, query string, dr DateRange) ([]*entity.Document, error) {
	rows, err := r.dateFiltered(dr).
		Where(entdoc.Or(
			entdoc.ContentEQ(query),
			entdoc.OriginalContentEQ(query),
		)).
		Order(entdoc.ByIngestedAt(), entdoc.ByFilePath()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to match documents exactly", "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepo) MatchSubstring(ctx context.Context, terms []string, dr DateRange) ([]*entity.Document, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	preds := make([]predicate.Document, 0, len(terms)*2)
	for _, t := range terms {
		preds = append(preds,
			entdoc.ContentContainsFold(t),
			entdoc.OriginalContentContainsFold(t),
		)
	}
	rows, err := r.dateFiltered(dr).
		Where(entdoc.Or(preds...)).
		Order(entdoc.ByIngestedAt(), entdoc.ByFilePath()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to match documents by substring", "terms", terms, "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepo) ListMissingDate(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(entdoc.DocumentDateIsNil()).
		Order(entdoc.ByIngestedAt(), entdoc.ByFilePath()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents missing a date", "error", err)
		return nil, err
	}
	return toDocuments(rows), nil
}

func (r *documentRepo) SetDocumentDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	err := r.client.Document.UpdateOneID(id).
		Where(entdoc.DocumentDateIsNil()).
		SetDocumentDate(date).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Already dated or gone; backfill must not overwrite.
			return nil
		}
		r.logger.Error("failed to set document date", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepo) dateFiltered(dr DateRange) *ent.DocumentQuery {
	q := r.client.Document.Query()
	if dr.From != nil {
		q = q.Where(entdoc.DocumentDateGTE(*dr.From))
	}
	if dr.To != nil {
		q = q.Where(entdoc.DocumentDateLTE(*dr.To))
	}
	return q
}

func toDocuments(rows []*ent.Document) []*entity.Document {
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = utils.ToDocument(row)
	}
	return out
}
