package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/acervo-dev/acervo/gen/proto/acervo/v1"
	"github.com/acervo-dev/acervo/internal/common"
	"github.com/acervo-dev/acervo/internal/files"
)

type FileService struct {
	v1.UnimplementedFileServiceServer
	files  *files.Service
	logger *slog.Logger
}

func NewFileService(svc *files.Service, logger *slog.Logger) *FileService {
	return &FileService{
		files:  svc,
		logger: logger,
	}
}

func (s *FileService) DownloadDocument(ctx context.Context, req *v1.DownloadDocumentRequest) (*v1.DownloadDocumentResponse, error) {
	name := req.GetFileName()
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}

	data, contentType, err := s.files.Read(name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("failed to serve document", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "serve document: %v", err)
	}

	return &v1.DownloadDocumentResponse{
		FileName:    filepath.Base(name),
		ContentType: contentType,
		Content:     data,
	}, nil
}
