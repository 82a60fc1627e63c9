package backfill

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/repository"
)

type fakeDocs struct {
	missing []*entity.Document
	listErr error

	setCalls map[uuid.UUID]time.Time
	setErr   map[uuid.UUID]error
}

func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) { return nil, nil }
func (f *fakeDocs) ExistsByPath(context.Context, string) (bool, error)           { return false, nil }
func (f *fakeDocs) Create(_ context.Context, d *entity.Document) (*entity.Document, error) {
	return d, nil
}
func (f *fakeDocs) ListByDate(context.Context, repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}
func (f *fakeDocs) MatchExact(context.Context, string, repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}
func (f *fakeDocs) MatchSubstring(context.Context, []string, repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) ListMissingDate(context.Context) ([]*entity.Document, error) {
	return f.missing, f.listErr
}

func (f *fakeDocs) SetDocumentDate(_ context.Context, id uuid.UUID, date time.Time) error {
	if err := f.setErr[id]; err != nil {
		return err
	}
	if f.setCalls == nil {
		f.setCalls = map[uuid.UUID]time.Time{}
	}
	f.setCalls[id] = date
	return nil
}

func undated(raw string) *entity.Document {
	return &entity.Document{
		ID:              uuid.New(),
		FileName:        "doc.pdf",
		OriginalContent: raw,
	}
}

func TestRun(t *testing.T) {
	withDate := undated("otorgado el 15 de enero de 2020 ante notario")
	noDate := undated("sin referencia temporal alguna")

	docs := &fakeDocs{missing: []*entity.Document{withDate, noDate}}
	svc := NewService(docs, slog.Default())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Scanned: 2, Dated: 1, NoDate: 1}, stats)

	require.Contains(t, docs.setCalls, withDate.ID)
	assert.Equal(t, time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC), docs.setCalls[withDate.ID])
	assert.NotContains(t, docs.setCalls, noDate.ID)
}

func TestRunContinuesAfterUpdateFailure(t *testing.T) {
	failing := undated("firmado el 2 de marzo de 2019")
	healthy := undated("firmado el 3 de marzo de 2019")

	docs := &fakeDocs{
		missing: []*entity.Document{failing, healthy},
		setErr:  map[uuid.UUID]error{failing.ID: errors.New("connection reset")},
	}
	svc := NewService(docs, slog.Default())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err, "per-record failures must not fail the job")
	assert.Equal(t, Stats{Scanned: 2, Dated: 1, Failed: 1}, stats)
	assert.Contains(t, docs.setCalls, healthy.ID)
}

func TestRunListFailure(t *testing.T) {
	docs := &fakeDocs{listErr: errors.New("relation does not exist")}
	svc := NewService(docs, slog.Default())

	_, err := svc.Run(context.Background())
	require.Error(t, err)
}
