package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRunner stubs the external pdftotext/pdftoppm/tesseract binaries.
type mockRunner struct {
	pdftotextOut string
	pdftotextErr error

	pdftoppmPages int // pngs to fake-render
	pdftoppmErr   error

	tesseractOut map[int]string // page number -> text
	tesseractErr error

	calls []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.calls = append(m.calls, name)
	switch name {
	case "pdftotext":
		if m.pdftotextErr != nil {
			return nil, []byte("pdftotext error"), m.pdftotextErr
		}
		return []byte(m.pdftotextOut), nil, nil
	case "pdftoppm":
		if m.pdftoppmErr != nil {
			return nil, []byte("pdftoppm error"), m.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= m.pdftoppmPages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if m.tesseractErr != nil {
			return nil, []byte("tesseract error"), m.tesseractErr
		}
		// args[0] is the page image path, ".../page-N.png"
		var page int
		_, _ = fmt.Sscanf(args[0][strings.LastIndex(args[0], "-")+1:], "%d.png", &page)
		return []byte(m.tesseractOut[page]), nil, nil
	default:
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

func newTestExtractor(r Runner, cfg Config) *Extractor {
	e := NewExtractor(cfg, slog.Default())
	e.runner = r
	return e
}

func TestExtractTextLayer(t *testing.T) {
	r := &mockRunner{pdftotextOut: "primera página\fsegunda página"}
	e := newTestExtractor(r, Config{})

	res, err := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "primera página\fsegunda página", res.Text)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, "spa", res.Language)
	assert.Equal(t, []string{"pdftotext"}, r.calls, "ocr tools must not run when the text layer suffices")
}

func TestExtractOCRFallback(t *testing.T) {
	r := &mockRunner{
		pdftotextOut:  "   \n",
		pdftoppmPages: 2,
		tesseractOut:  map[int]string{1: "página uno", 2: "página dos"},
	}
	e := newTestExtractor(r, Config{})

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "página uno\n\f\npágina dos", res.Text)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, []string{"pdftotext", "pdftoppm", "tesseract", "tesseract"}, r.calls)
}

func TestExtractFallbackAfterTextLayerError(t *testing.T) {
	r := &mockRunner{
		pdftotextErr:  errors.New("damaged xref table"),
		pdftoppmPages: 1,
		tesseractOut:  map[int]string{1: "contenido ocr"},
	}
	e := newTestExtractor(r, Config{})

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err, "tool failures must degrade, not propagate")
	assert.Equal(t, "contenido ocr", res.Text)
	assert.Equal(t, "pdf-ocr", res.Method)
}

func TestExtractUnextractable(t *testing.T) {
	t.Run("both paths fail", func(t *testing.T) {
		r := &mockRunner{
			pdftotextErr: errors.New("not a pdf"),
			pdftoppmErr:  errors.New("not a pdf"),
		}
		e := newTestExtractor(r, Config{})

		res, err := e.Extract(context.Background(), "/tmp/garbage.pdf")
		require.NoError(t, err)
		assert.Empty(t, res.Text)
		assert.Empty(t, res.Method)
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("ocr yields only whitespace", func(t *testing.T) {
		r := &mockRunner{
			pdftoppmPages: 1,
			tesseractOut:  map[int]string{1: "  \n "},
		}
		e := newTestExtractor(r, Config{})

		res, err := e.Extract(context.Background(), "/tmp/blank.pdf")
		require.NoError(t, err)
		assert.Empty(t, res.Text)
		assert.Empty(t, res.Method)
	})
}

func TestExtractMaxPagesCap(t *testing.T) {
	r := &mockRunner{
		pdftoppmPages: 3,
		tesseractOut:  map[int]string{1: "uno", 2: "dos", 3: "tres"},
	}
	e := newTestExtractor(r, Config{MaxPages: 2})

	res, err := e.Extract(context.Background(), "/tmp/long.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "uno\n\f\ndos", res.Text)
}

func TestNewExtractorWiresToolRunner(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewExtractor(Config{}, logger)

	tr, ok := e.runner.(toolRunner)
	require.True(t, ok)
	assert.Same(t, logger, tr.logger, "tool failures must land in the service log")
}

func TestClipStderr(t *testing.T) {
	assert.Equal(t, "warning: página 3 vacía", clipStderr("warning: página 3 vacía"))

	long := strings.Repeat("x", stderrLogCap+100)
	clipped := clipStderr(long)
	assert.Len(t, clipped, stderrLogCap+len("...(truncated)"))
	assert.True(t, strings.HasSuffix(clipped, "...(truncated)"))
}

func TestConfigDefaults(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	assert.Equal(t, "pdftotext", e.cfg.Pdftotext)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "spa", e.cfg.Language)
	assert.Equal(t, 300, e.cfg.DPI)
}
