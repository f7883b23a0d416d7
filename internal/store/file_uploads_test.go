package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFileStorage_Save(t *testing.T) {
	root := t.TempDir()
	s := NewUploadFileStorage(root, logger.Nop())
	assert.Equal(t, root, s.Root())

	n, err := s.Save(context.Background(), "documents", "1700000000000-rapport.pdf", strings.NewReader("%PDF-1.7"), 1024)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	data, err := os.ReadFile(filepath.Join(root, "documents", "1700000000000-rapport.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
}

func TestUploadFileStorage_SizeLimit(t *testing.T) {
	root := t.TempDir()
	s := NewUploadFileStorage(root, logger.Nop())
	ctx := context.Background()

	t.Run("exactly at limit", func(t *testing.T) {
		n, err := s.Save(ctx, "images", "exact.png", bytes.NewReader(make([]byte, 16)), 16)
		require.NoError(t, err)
		assert.Equal(t, int64(16), n)
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := s.Save(ctx, "images", "big.png", bytes.NewReader(make([]byte, 17)), 16)
		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.NoFileExists(t, filepath.Join(root, "images", "big.png"))

		entries, err := os.ReadDir(filepath.Join(root, "images"))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temporary file is left behind")
	})
}

func TestUploadFileStorage_RejectsBadNames(t *testing.T) {
	s := NewUploadFileStorage(t.TempDir(), logger.Nop())

	for _, name := range []string{"", "../escape.txt", `a\b.txt`, ".hidden"} {
		_, err := s.Save(context.Background(), "documents", name, strings.NewReader("x"), 10)
		assert.ErrorIs(t, err, ErrSavingFile, name)
	}
}

func TestUploadFileStorage_FolderCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	s := NewUploadFileStorage(root, logger.Nop())

	_, err := s.Save(context.Background(), "../../outside", "f.txt", strings.NewReader("x"), 10)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "outside", "f.txt"))
}

func TestUploadFileStorage_CancelledContext(t *testing.T) {
	s := NewUploadFileStorage(t.TempDir(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, "videos", "clip.mp4", strings.NewReader("data"), 10)
	assert.ErrorIs(t, err, ErrSavingFile)
	assert.ErrorIs(t, err, context.Canceled)
}
