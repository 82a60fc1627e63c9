package files

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervo-dev/acervo/internal/common"
)

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	return NewService(root, slog.Default()), root
}

func TestResolve(t *testing.T) {
	svc, root := newService(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "escritura 123.pdf"), []byte("%PDF-1.4"), 0644))

	t.Run("plain name", func(t *testing.T) {
		path, err := svc.Resolve("escritura 123.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "escritura 123.pdf"), path)
	})

	t.Run("url-encoded name", func(t *testing.T) {
		path, err := svc.Resolve("escritura%20123.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "escritura 123.pdf"), path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.Resolve("inexistente.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.Resolve("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidInput))
	})

	t.Run("path traversal is confined to the root", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "secret.pdf")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))

		_, err := svc.Resolve("../secret.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestRead(t *testing.T) {
	svc, root := newService(t)
	content := []byte("%PDF-1.4 contenido")
	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.pdf"), content, 0644))

	data, contentType, err := svc.Read("doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, "application/pdf", contentType)
}
