package extract

import (
	"context"
	"time"
)

// TextExtractor is the first pipeline stage: PDF file -> raw text.
// An empty Text with a nil error means the file is unextractable.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}
