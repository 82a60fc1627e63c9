package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/acervo-dev/acervo/gen/proto/acervo/v1"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/metrics"
	"github.com/acervo-dev/acervo/internal/search"
	"github.com/acervo-dev/acervo/internal/utils"
)

type SearchService struct {
	v1.UnimplementedSearchServiceServer
	engine  *search.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSearchService(engine *search.Engine, m *metrics.Metrics, logger *slog.Logger) *SearchService {
	return &SearchService{
		engine:  engine,
		metrics: m,
		logger:  logger,
	}
}

func (s *SearchService) Search(ctx context.Context, req *v1.SearchRequest) (*v1.SearchResponse, error) {
	page := int(req.GetPage())
	if page == 0 {
		page = 1
	}
	pageSize := int(req.GetPageSize())
	if pageSize == 0 {
		pageSize = 10
	}

	var startDate, endDate *time.Time
	if sd := strings.TrimSpace(req.GetStartDate()); sd != "" {
		t, err := utils.ParseYMD(sd)
		if err != nil {
			s.logger.Error("invalid start_date format", "start_date", sd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "start_date invalid (YYYY-MM-DD): %v", err)
		}
		startDate = &t
	}
	if ed := strings.TrimSpace(req.GetEndDate()); ed != "" {
		t, err := utils.ParseYMD(ed)
		if err != nil {
			s.logger.Error("invalid end_date format", "end_date", ed, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "end_date invalid (YYYY-MM-DD): %v", err)
		}
		endDate = &t
	}

	start := time.Now()
	resp, err := s.engine.Search(ctx, search.Request{
		Query:      req.GetQuery(),
		ExactMatch: req.GetExactMatch(),
		Page:       page,
		PageSize:   pageSize,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("search failed", "query", req.GetQuery(), "error", err)
		return nil, status.Errorf(codes.Internal, "search: %v", err)
	}

	if s.metrics != nil {
		s.metrics.SearchLatency.Observe(time.Since(start).Seconds())
		s.metrics.SearchResultsCount.Observe(float64(resp.TotalResults))
		if resp.TotalResults > 0 {
			s.metrics.SearchQueriesTotal.WithLabelValues("hit").Inc()
		} else {
			s.metrics.SearchQueriesTotal.WithLabelValues("zero_result").Inc()
		}
	}

	out := &v1.SearchResponse{
		Page:         int32(resp.Page),
		PageSize:     int32(resp.PageSize),
		TotalResults: int32(resp.TotalResults),
		Results:      make([]*v1.SearchResult, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		out.Results = append(out.Results, &v1.SearchResult{
			FileName: r.FileName,
			FilePath: r.FilePath,
			Snippet:  r.Snippet,
		})
	}
	return out, nil
}
