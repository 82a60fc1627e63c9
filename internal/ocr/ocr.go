package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language string // tesseract language, default "spa"
	DPI      int    // rasterization DPI for scanned PDFs, default 300
	MaxPages int    // 0 = no limit
}

type ExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr" | "" when nothing was extracted
	Language string
	Duration time.Duration
	Warnings []string
}

// Extractor pulls raw text out of PDF files: text layer first, OCR second.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: toolRunner{logger: logger}, logger: logger}
}

// Extract runs the extraction cascade: the embedded text layer when the PDF
// has one, rasterization plus OCR when it does not. Tool failures on either
// path are logged and degrade to empty text; an empty result marks the file
// unextractable and must never abort a batch run.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{Language: e.cfg.Language}

	text, pages, warns, err := e.pdfToText(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		e.logger.Warn("text-layer extraction failed, falling back to ocr", "path", path, "error", err)
	}
	if strings.TrimSpace(text) != "" {
		res.Text = text
		res.Pages = pages
		res.Method = "pdf-text"
		res.Duration = time.Since(start)
		return res, nil
	}

	e.logger.Debug("empty text layer, running ocr", "path", path)
	text, pages, warns, err = e.pdfToOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		e.logger.Warn("ocr extraction failed", "path", path, "error", err)
	}
	if strings.TrimSpace(text) != "" {
		res.Text = text
		res.Pages = pages
		res.Method = "pdf-ocr"
	} else {
		e.logger.Warn("document is unextractable", "path", path)
	}
	res.Duration = time.Since(start)
	return res, nil
}
