package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/vitrine/internal/logger"
)

// uploadFileStorage keeps uploaded files under root/<folder>/<name>.
type uploadFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewUploadFileStorage returns a [FileStorage] rooted at the public directory.
func NewUploadFileStorage(root string, log *logger.Logger) FileStorage {
	log.Debug().Str("root", root).Msg("creating upload file storage")
	return &uploadFileStorage{root: root, logger: log}
}

func (u *uploadFileStorage) Root() string {
	return u.root
}

func (u *uploadFileStorage) Save(ctx context.Context, folder, name string, r io.Reader, limit int64) (int64, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return 0, fmt.Errorf("%w: invalid file name %q", ErrSavingFile, name)
	}

	dir := filepath.Join(u.root, filepath.Clean("/" + folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	// one extra byte tells an exact-limit file from an oversized one
	n, err := io.Copy(tmp, io.LimitReader(contextReader{ctx: ctx, r: r}, limit+1))
	closeErr := tmp.Close()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, closeErr)
	}
	if n > limit {
		return 0, ErrFileTooLarge
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	logger.FromContext(ctx).Info().Str("folder", folder).Str("name", name).Int64("size", n).Msg("file uploaded")
	return n, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, errors.Join(io.ErrUnexpectedEOF, err)
	}
	return c.r.Read(p)
}
