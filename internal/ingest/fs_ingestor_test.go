package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/extract"
	"github.com/acervo-dev/acervo/internal/repository"
)

// fakeExtractor returns canned text keyed by base file name.
type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	name := filepath.Base(path)
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return extract.TextExtractionResult{}, err
	}
	return extract.TextExtractionResult{Text: f.texts[name], Method: "pdf-text"}, nil
}

// fakeDocs records created documents in memory.
type fakeDocs struct {
	byPath    map[string]*entity.Document
	createErr error
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{byPath: map[string]*entity.Document{}}
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range f.byPath {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocs) ExistsByPath(_ context.Context, filePath string) (bool, error) {
	_, ok := f.byPath[filePath]
	return ok, nil
}

func (f *fakeDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byPath[doc.FilePath]; ok {
		return nil, common.ErrDuplicate
	}
	stored := *doc
	stored.ID = uuid.New()
	stored.IngestedAt = time.Now()
	f.byPath[doc.FilePath] = &stored
	return &stored, nil
}

func (f *fakeDocs) ListByDate(_ context.Context, _ repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) MatchExact(_ context.Context, _ string, _ repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) MatchSubstring(_ context.Context, _ []string, _ repository.DateRange) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) ListMissingDate(_ context.Context) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) SetDocumentDate(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("%PDF-1.4"), 0644))
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.pdf", "a.pdf", "empty.pdf", "notes.txt")

	ext := &fakeExtractor{texts: map[string]string{
		"a.pdf":     "contrato firmado el 15 de enero de 2020",
		"b.pdf":     "texto sin fecha alguna",
		"empty.pdf": "   ",
	}}
	docs := newFakeDocs()
	ing := NewFSIngestor(docs, ext, slog.Default())

	results, stats, err := ing.IngestDirectory(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Scanned, "non-pdf files are not scanned")
	assert.Equal(t, uint32(2), stats.Ingested)
	assert.Equal(t, uint32(1), stats.Unextractable)
	assert.Equal(t, uint32(0), stats.Duplicates)
	assert.Equal(t, uint32(0), stats.Failed)

	// lexicographic processing order
	require.Len(t, results, 3)
	assert.Equal(t, "a.pdf", filepath.Base(results[0].FilePath))
	assert.Equal(t, "b.pdf", filepath.Base(results[1].FilePath))
	assert.Equal(t, "empty.pdf", filepath.Base(results[2].FilePath))

	assert.True(t, results[0].DateFound)
	assert.False(t, results[1].DateFound)
	assert.True(t, results[2].Skipped)
	assert.Equal(t, "unextractable", results[2].SkipReason)

	// stored record carries normalized and raw content plus the date
	stored := docs.byPath[results[0].FilePath]
	require.NotNil(t, stored)
	assert.Equal(t, "contrato firmado el 15 de enero de 2020", stored.OriginalContent)
	assert.NotEqual(t, stored.OriginalContent, stored.Content)
	require.NotNil(t, stored.DocumentDate)
	assert.Equal(t, time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC), *stored.DocumentDate)

	// no record for the unextractable file
	assert.Len(t, docs.byPath, 2)
}

func TestIngestDirectoryIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.pdf")

	ext := &fakeExtractor{texts: map[string]string{
		"a.pdf": "primer documento",
		"b.pdf": "segundo documento",
	}}
	docs := newFakeDocs()
	ing := NewFSIngestor(docs, ext, slog.Default())

	_, first, err := ing.IngestDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), first.Ingested)

	_, second, err := ing.IngestDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), second.Ingested)
	assert.Equal(t, uint32(2), second.Duplicates)
	assert.Len(t, docs.byPath, 2)

	// duplicates are skipped before extraction runs again
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ext.calls)
}

func TestIngestPathExtractionErrorSkips(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "broken.pdf", "good.pdf")

	ext := &fakeExtractor{
		texts: map[string]string{"good.pdf": "texto legible"},
		errs:  map[string]error{"broken.pdf": errors.New("pdftotext: damaged file")},
	}
	docs := newFakeDocs()
	ing := NewFSIngestor(docs, ext, slog.Default())

	results, stats, err := ing.IngestDirectory(context.Background(), dir)
	require.NoError(t, err, "extraction failures must not abort the run")
	assert.Equal(t, uint32(1), stats.Unextractable)
	assert.Equal(t, uint32(1), stats.Ingested)
	require.Len(t, results, 2)
	assert.Equal(t, "unextractable", results[0].SkipReason)
	assert.Len(t, docs.byPath, 1)
}

func TestIngestDirectoryStoreFailureAborts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.pdf")

	ext := &fakeExtractor{texts: map[string]string{
		"a.pdf": "texto uno",
		"b.pdf": "texto dos",
	}}
	docs := newFakeDocs()
	docs.createErr = errors.New("connection refused")
	ing := NewFSIngestor(docs, ext, slog.Default())

	results, stats, err := ing.IngestDirectory(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, uint32(1), stats.Failed)
	assert.Len(t, results, 1, "run stops at the first store failure")
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	docs := newFakeDocs()
	ing := NewFSIngestor(docs, &fakeExtractor{}, slog.Default())

	_, err := ing.IngestPath(context.Background(), "/tmp/report.docx")
	require.Error(t, err)
}
