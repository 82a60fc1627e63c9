package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/repository"
)

// memRepo is an in-memory DocumentRepository implementing the same substring
// and date-filter semantics as the real one.
type memRepo struct {
	docs []*entity.Document
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memRepo) ExistsByPath(_ context.Context, filePath string) (bool, error) {
	for _, d := range m.docs {
		if d.FilePath == filePath {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	m.docs = append(m.docs, doc)
	return doc, nil
}

func (m *memRepo) ListByDate(_ context.Context, r repository.DateRange) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if inRange(d, r) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memRepo) MatchExact(_ context.Context, query string, r repository.DateRange) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if !inRange(d, r) {
			continue
		}
		if d.Content == query || d.OriginalContent == query {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memRepo) MatchSubstring(_ context.Context, terms []string, r repository.DateRange) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if !inRange(d, r) {
			continue
		}
		for _, t := range terms {
			lt := strings.ToLower(t)
			if strings.Contains(strings.ToLower(d.Content), lt) ||
				strings.Contains(strings.ToLower(d.OriginalContent), lt) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (m *memRepo) ListMissingDate(_ context.Context) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.DocumentDate == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memRepo) SetDocumentDate(_ context.Context, id uuid.UUID, date time.Time) error {
	for _, d := range m.docs {
		if d.ID == id && d.DocumentDate == nil {
			t := date
			d.DocumentDate = &t
		}
	}
	return nil
}

func inRange(d *entity.Document, r repository.DateRange) bool {
	if r.From != nil && (d.DocumentDate == nil || d.DocumentDate.Before(*r.From)) {
		return false
	}
	if r.To != nil && (d.DocumentDate == nil || d.DocumentDate.After(*r.To)) {
		return false
	}
	return true
}

func doc(name, content, original string) *entity.Document {
	return &entity.Document{
		ID:              uuid.New(),
		FileName:        name,
		FilePath:        "/documents/" + name,
		Content:         content,
		OriginalContent: original,
	}
}

func newEngine(docs ...*entity.Document) *Engine {
	return NewEngine(&memRepo{docs: docs}, slog.Default())
}

func TestSearchValidation(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
	}{
		{"zero page", Request{Page: 0, PageSize: 10}},
		{"negative page", Request{Page: -1, PageSize: 10}},
		{"zero page size", Request{Page: 1, PageSize: 0}},
		{"oversized page", Request{Page: 1, PageSize: 101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Search(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestSearchTierPriority(t *testing.T) {
	exact := doc("exact.pdf", "acuerdo contrato enero firmado", "")
	first := doc("first.pdf", "contrato de compraventa", "")
	rest := doc("rest.pdf", "pago de enero recibido", "")

	// stored order deliberately reversed relative to tier priority
	e := newEngine(rest, first, exact)

	resp, err := e.Search(context.Background(), Request{
		Query:    "contrato enero",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 3, resp.TotalResults)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "exact.pdf", resp.Results[0].FileName)
	assert.Equal(t, "first.pdf", resp.Results[1].FileName)
	assert.Equal(t, "rest.pdf", resp.Results[2].FileName)
}

func TestSearchNoDuplicates(t *testing.T) {
	// matches every tier: full query, first term, and second term
	d := doc("all.pdf", "contrato enero contrato", "")
	e := newEngine(d)

	resp, err := e.Search(context.Background(), Request{
		Query:    "contrato enero",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalResults)
	assert.Len(t, resp.Results, 1)
}

func TestSearchExactMatchFlag(t *testing.T) {
	exact := doc("exact.pdf", "contrato enero", "")
	partial := doc("partial.pdf", "contrato enero y algo mas", "")
	e := newEngine(exact, partial)

	resp, err := e.Search(context.Background(), Request{
		Query:      "contrato enero",
		ExactMatch: true,
		Page:       1,
		PageSize:   10,
	})
	require.NoError(t, err)
	// the exact record leads; the partial one still enters via term tiers
	require.Equal(t, 2, resp.TotalResults)
	assert.Equal(t, "exact.pdf", resp.Results[0].FileName)
}

func TestSearchPagination(t *testing.T) {
	docs := make([]*entity.Document, 0, 25)
	for i := 0; i < 25; i++ {
		docs = append(docs, doc(fmt.Sprintf("doc-%02d.pdf", i), "expediente judicial", ""))
	}
	e := newEngine(docs...)

	resp, err := e.Search(context.Background(), Request{
		Query:    "expediente",
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, resp.TotalResults)
	require.Len(t, resp.Results, 10)
	assert.Equal(t, "doc-10.pdf", resp.Results[0].FileName)
	assert.Equal(t, "doc-19.pdf", resp.Results[9].FileName)

	t.Run("page past the end is empty", func(t *testing.T) {
		resp, err := e.Search(context.Background(), Request{
			Query:    "expediente",
			Page:     4,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 25, resp.TotalResults)
		assert.Empty(t, resp.Results)
	})
}

func TestSearchEmptyQueryWithDates(t *testing.T) {
	jan := date(2020, time.January, 10)
	mar := date(2020, time.March, 10)
	inWindow := doc("in.pdf", "contrato", "")
	inWindow.DocumentDate = &jan
	outWindow := doc("out.pdf", "contrato", "")
	outWindow.DocumentDate = &mar
	undated := doc("undated.pdf", "contrato", "")

	e := newEngine(inWindow, outWindow, undated)

	from := date(2020, time.January, 1)
	to := date(2020, time.January, 31)
	resp, err := e.Search(context.Background(), Request{
		Page:      1,
		PageSize:  10,
		StartDate: &from,
		EndDate:   &to,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalResults)
	assert.Equal(t, "in.pdf", resp.Results[0].FileName)
	assert.Equal(t, "", resp.Results[0].Snippet)
}

func TestSearchDateFilterAppliesToAllTiers(t *testing.T) {
	jan := date(2021, time.January, 5)
	dated := doc("dated.pdf", "contrato enero", "")
	dated.DocumentDate = &jan
	undated := doc("undated.pdf", "contrato enero", "")

	e := newEngine(dated, undated)

	from := date(2021, time.January, 1)
	resp, err := e.Search(context.Background(), Request{
		Query:     "contrato enero",
		Page:      1,
		PageSize:  10,
		StartDate: &from,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalResults)
	assert.Equal(t, "dated.pdf", resp.Results[0].FileName)
}

func TestSnippet(t *testing.T) {
	t.Run("match near start clamps to string head", func(t *testing.T) {
		content := "xxxxx" + "termo" + strings.Repeat("y", 190)
		d := doc("clamp.pdf", content, "")
		e := newEngine(d)

		resp, err := e.Search(context.Background(), Request{
			Query:    "termo",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		runes := []rune(content)
		assert.Equal(t, string(runes[0:55]), resp.Results[0].Snippet)
	})

	t.Run("match near end clamps to string tail", func(t *testing.T) {
		content := strings.Repeat("y", 100) + "final"
		d := doc("tail.pdf", content, "")
		e := newEngine(d)

		resp, err := e.Search(context.Background(), Request{
			Query:    "final",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		// window is [100-50, 100+50] clamped to len 105
		assert.Equal(t, content[50:105], resp.Results[0].Snippet)
	})

	t.Run("short content", func(t *testing.T) {
		d := doc("short.pdf", "hola contrato", "")
		e := newEngine(d)

		resp, err := e.Search(context.Background(), Request{
			Query:    "contrato",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "hola contrato", resp.Results[0].Snippet)
	})

	t.Run("falls back to raw content", func(t *testing.T) {
		d := doc("raw.pdf", "contenido normalizado distinto", "el testamento original completo")
		e := newEngine(d)

		resp, err := e.Search(context.Background(), Request{
			Query:    "testamento",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Contains(t, resp.Results[0].Snippet, "testamento")
	})

	t.Run("case-insensitive term location", func(t *testing.T) {
		d := doc("case.pdf", "ACUERDO DE CONFIDENCIALIDAD", "")
		e := newEngine(d)

		resp, err := e.Search(context.Background(), Request{
			Query:    "acuerdo",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Contains(t, resp.Results[0].Snippet, "ACUERDO")
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
