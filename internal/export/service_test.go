package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/repository"
)

type fakeDocs struct {
	docs    []*entity.Document
	listErr error

	lastRange repository.DateRange
}

func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) { return nil, nil }
func (f *fakeDocs) ExistsByPath(context.Context, string) (bool, error)           { return false, nil }
func (f *fakeDocs) Create(_ context.Context, d *entity.Document) (*entity.Document, error) {
	return d, nil
}
func (f *fakeDocs) ListByDate(_ context.Context, r repository.DateRange) ([]*entity.Document, error) {
	f.lastRange = r
	return f.docs, f.listErr
}
func (f *fakeDocs) MatchExact(context.Context, string, repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}
func (f *fakeDocs) MatchSubstring(context.Context, []string, repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}
func (f *fakeDocs) ListMissingDate(context.Context) ([]*entity.Document, error) { return nil, nil }
func (f *fakeDocs) SetDocumentDate(context.Context, uuid.UUID, time.Time) error { return nil }

func catalogDoc(name, path string, date *time.Time) *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		FileName:     name,
		FilePath:     path,
		DocumentDate: date,
		IngestedAt:   time.Date(2024, time.July, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestExportCatalogXLSX(t *testing.T) {
	d := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	docs := &fakeDocs{docs: []*entity.Document{
		catalogDoc("escritura.pdf", "/docs/escritura.pdf", &d),
		catalogDoc("sin-fecha.pdf", "/docs/sin-fecha.pdf", nil),
	}}
	svc := NewService(docs, slog.Default())

	out, err := svc.ExportCatalogXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Documents")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"File Name", "File Path", "Document Date", "Ingested At"}, rows[0])
	assert.Equal(t, []string{"escritura.pdf", "/docs/escritura.pdf", "2020-01-15", "2024-07-01T09:30:00Z"}, rows[1])
	assert.Equal(t, "sin-fecha.pdf", rows[2][0])
	assert.Len(t, rows[2], 4, "undated documents still get a date cell")
	assert.Empty(t, rows[2][2])
}

func TestExportCatalogDateWindow(t *testing.T) {
	from := time.Date(2020, time.March, 5, 14, 45, 0, 0, time.Local)
	to := time.Date(2020, time.April, 9, 23, 59, 0, 0, time.Local)

	t.Run("both ends normalized to date-only utc", func(t *testing.T) {
		docs := &fakeDocs{}
		svc := NewService(docs, slog.Default())

		_, err := svc.ExportCatalogXLSX(context.Background(), &from, &to)
		require.NoError(t, err)

		require.NotNil(t, docs.lastRange.From)
		require.NotNil(t, docs.lastRange.To)
		assert.Equal(t, time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC), *docs.lastRange.From)
		assert.Equal(t, time.Date(2020, time.April, 9, 0, 0, 0, 0, time.UTC), *docs.lastRange.To)
	})

	t.Run("from only extends to today", func(t *testing.T) {
		docs := &fakeDocs{}
		svc := NewService(docs, slog.Default())

		_, err := svc.ExportCatalogXLSX(context.Background(), &from, nil)
		require.NoError(t, err)

		require.NotNil(t, docs.lastRange.To)
		now := time.Now().UTC()
		assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), *docs.lastRange.To)
	})

	t.Run("to only leaves from unbounded", func(t *testing.T) {
		docs := &fakeDocs{}
		svc := NewService(docs, slog.Default())

		_, err := svc.ExportCatalogXLSX(context.Background(), nil, &to)
		require.NoError(t, err)

		assert.Nil(t, docs.lastRange.From)
		require.NotNil(t, docs.lastRange.To)
	})

	t.Run("neither end queries the whole catalog", func(t *testing.T) {
		docs := &fakeDocs{}
		svc := NewService(docs, slog.Default())

		_, err := svc.ExportCatalogXLSX(context.Background(), nil, nil)
		require.NoError(t, err)

		assert.Nil(t, docs.lastRange.From)
		assert.Nil(t, docs.lastRange.To)
	})
}

func TestExportCatalogQueryFailure(t *testing.T) {
	docs := &fakeDocs{listErr: errors.New("connection refused")}
	svc := NewService(docs, slog.Default())

	_, err := svc.ExportCatalogXLSX(context.Background(), nil, nil)
	require.Error(t, err)
}
