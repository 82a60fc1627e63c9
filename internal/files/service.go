package files

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/acervo-dev/acervo/constants"
	"github.com/acervo-dev/acervo/internal/common"
)

// Service resolves requested display names to files inside the documents
// directory and serves their bytes. Names arrive URL-encoded; only the base
// name is honored, so a request can never escape the directory.
type Service struct {
	root   string
	logger *slog.Logger
}

func NewService(root string, logger *slog.Logger) *Service {
	return &Service{
		root:   root,
		logger: logger,
	}
}

// Resolve maps a display name to an absolute path under the documents
// directory. Missing files surface as ErrNotFound.
func (s *Service) Resolve(name string) (string, error) {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		decoded = name
	}
	decoded = strings.TrimSpace(decoded)
	if decoded == "" {
		return "", common.WrapError(common.ErrInvalidInput, "file name is required")
	}

	path := filepath.Join(s.root, filepath.Base(decoded))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.logger.Warn("requested document not found", "name", decoded, "path", path)
		return "", common.WrapError(common.ErrNotFound, "document not found")
	}
	return path, nil
}

// Read returns the document's bytes plus its content type. Stored documents
// are always PDFs.
func (s *Service) Read(name string) ([]byte, string, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("failed to read document", "path", path, "error", err)
		return nil, "", common.WrapError(common.ErrNotFound, "document not found")
	}
	return data, constants.PDFContentType, nil
}
