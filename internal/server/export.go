package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/acervo-dev/acervo/gen/proto/acervo/v1"
	"github.com/acervo-dev/acervo/internal/export"
	"github.com/acervo-dev/acervo/internal/utils"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportCatalog(ctx context.Context, req *v1.ExportCatalogRequest) (*v1.ExportCatalogResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportCatalogXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &v1.ExportCatalogResponse{Xlsx: xlsx}, nil
}
