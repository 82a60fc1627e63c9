package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, "pdftotext", cfg.OCR.Pdftotext)
	assert.Equal(t, "spa", cfg.OCR.Language)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, "./documents", cfg.Ingest.DocumentsDir)
	assert.Equal(t, 2*time.Second, cfg.Ingest.WatchDebounce)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/acervo")
	t.Setenv("GRPC_ADDR", ":7001")
	t.Setenv("OCR_DPI", "150")
	t.Setenv("OCR_MAX_PAGES", "25")
	t.Setenv("INGEST_WATCH", "true")
	t.Setenv("INGEST_WATCH_DEBOUNCE", "500ms")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/acervo", cfg.Database.DSN)
	assert.Equal(t, ":7001", cfg.Server.GRPCAddr)
	assert.Equal(t, 150, cfg.OCR.DPI)
	assert.Equal(t, 25, cfg.OCR.MaxPages)
	assert.True(t, cfg.Ingest.Watch)
	assert.Equal(t, 500*time.Millisecond, cfg.Ingest.WatchDebounce)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("OCR_DPI", "lots")
	t.Setenv("INGEST_WATCH", "yes please")

	cfg := LoadConfig()
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.False(t, cfg.Ingest.Watch)
}

func TestValidate(t *testing.T) {
	t.Run("missing DB_URL", func(t *testing.T) {
		cfg := LoadConfig()
		cfg.Database.DSN = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("complete", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/acervo")
		cfg := LoadConfig()
		require.NoError(t, cfg.Validate())
	})
}
