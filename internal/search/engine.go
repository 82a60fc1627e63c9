package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/entity"
	"github.com/acervo-dev/acervo/internal/repository"
)

const (
	// snippetRadius is the number of characters kept on each side of the
	// first matched term.
	snippetRadius = 50

	minPageSize = 1
	maxPageSize = 100
)

// Request carries one search invocation. An empty Query with date bounds set
// lists the dated window without any term matching.
type Request struct {
	Query      string
	ExactMatch bool
	Page       int
	PageSize   int
	StartDate  *time.Time
	EndDate    *time.Time
}

// Result is one hit in a response page.
type Result struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Snippet  string `json:"snippet"`
}

// Response is one page of ranked hits. TotalResults counts the full merged
// set before pagination.
type Response struct {
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
	TotalResults int      `json:"total_results"`
	Results      []Result `json:"results"`
}

// Engine runs the tiered substring search: exact (or full-query) matches
// first, then first-term matches, then any-remaining-term matches, merged in
// priority order without duplicates.
type Engine struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewEngine(docs repository.DocumentRepository, logger *slog.Logger) *Engine {
	return &Engine{
		docs:   docs,
		logger: logger,
	}
}

func (e *Engine) Search(ctx context.Context, req Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	dr := repository.DateRange{From: req.StartDate, To: req.EndDate}
	query := strings.TrimSpace(req.Query)

	merged, err := e.candidates(ctx, query, req.ExactMatch, dr)
	if err != nil {
		e.logger.Error("search failed", "query", query, "error", err)
		return nil, err
	}

	terms := strings.Fields(query)
	page := paginate(merged, req.Page, req.PageSize)
	results := make([]Result, len(page))
	for i, doc := range page {
		results[i] = Result{
			FileName: doc.FileName,
			FilePath: doc.FilePath,
			Snippet:  snippet(doc, terms),
		}
	}

	return &Response{
		Page:         req.Page,
		PageSize:     req.PageSize,
		TotalResults: len(merged),
		Results:      results,
	}, nil
}

func validate(req Request) error {
	if req.Page < 1 {
		return common.WrapError(common.ErrInvalidInput, "page must be >= 1")
	}
	if req.PageSize < minPageSize || req.PageSize > maxPageSize {
		return common.WrapError(common.ErrInvalidInput, "page_size must be between 1 and 100")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return common.WrapError(common.ErrInvalidInput, "end_date must not precede start_date")
	}
	return nil
}

// candidates computes the merged, ranked candidate list. Each tier is fetched
// independently with the same date bounds; a document seen in an earlier tier
// is never displaced or repeated by a later one.
func (e *Engine) candidates(ctx context.Context, query string, exact bool, dr repository.DateRange) ([]*entity.Document, error) {
	if query == "" {
		return e.docs.ListByDate(ctx, dr)
	}

	var tier1 []*entity.Document
	var err error
	if exact {
		tier1, err = e.docs.MatchExact(ctx, query, dr)
	} else {
		tier1, err = e.docs.MatchSubstring(ctx, []string{query}, dr)
	}
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(query)
	tier2, err := e.docs.MatchSubstring(ctx, terms[:1], dr)
	if err != nil {
		return nil, err
	}

	var tier3 []*entity.Document
	if len(terms) > 1 {
		tier3, err = e.docs.MatchSubstring(ctx, terms[1:], dr)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[uuid.UUID]struct{})
	merged := make([]*entity.Document, 0, len(tier1)+len(tier2)+len(tier3))
	for _, tier := range [][]*entity.Document{tier1, tier2, tier3} {
		for _, doc := range tier {
			if _, ok := seen[doc.ID]; ok {
				continue
			}
			seen[doc.ID] = struct{}{}
			merged = append(merged, doc)
		}
	}
	return merged, nil
}

func paginate(docs []*entity.Document, page, pageSize int) []*entity.Document {
	start := (page - 1) * pageSize
	if start >= len(docs) {
		return nil
	}
	end := start + pageSize
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end]
}

// snippet returns a fixed-width window around the first term found, checking
// normalized content before raw content. Terms are probed in query order and
// the first hit wins. No hit in either body yields an empty snippet.
func snippet(doc *entity.Document, terms []string) string {
	if len(terms) == 0 {
		return ""
	}
	if s, ok := window(doc.Content, terms); ok {
		return s
	}
	if s, ok := window(doc.OriginalContent, terms); ok {
		return s
	}
	return ""
}

func window(content string, terms []string) (string, bool) {
	if content == "" {
		return "", false
	}
	runes := []rune(content)
	lower := []rune(strings.ToLower(content))
	for _, term := range terms {
		pos := runeIndex(lower, []rune(strings.ToLower(term)))
		if pos < 0 {
			continue
		}
		start := pos - snippetRadius
		if start < 0 {
			start = 0
		}
		end := pos + snippetRadius
		if end > len(runes) {
			end = len(runes)
		}
		return string(runes[start:end]), true
	}
	return "", false
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for ; j < len(needle); j++ {
			if haystack[i+j] != needle[j] {
				break
			}
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}
