package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/rs/zerolog"
)

// fileDocumentStore is the JSON-file implementation of [DocumentStore].
// One mutex serialises every access to the backing file inside the process;
// writes go through a temporary file renamed over the target so that readers
// never observe a partial document.
type fileDocumentStore[T any] struct {
	contentType models.ContentType
	path        string
	shape       Shape
	defaults    func() T
	notifier    ChangeNotifier
	logger      *logger.Logger

	mu       sync.Mutex
	lastETag string
}

// NewFileDocumentStore returns the store of content type t, backed by
// dir/<t>.json. notifier may be nil.
func NewFileDocumentStore[T any](dir string, t models.ContentType, provider *DefaultProvider, notifier ChangeNotifier, log *logger.Logger) DocumentStore[T] {
	log.Debug().Str("type", string(t)).Msg("creating document store")
	return &fileDocumentStore[T]{
		contentType: t,
		path:        filepath.Join(dir, t.FileName()),
		shape:       provider.Shape(t),
		defaults:    defaultOf[T](provider, t),
		notifier:    notifier,
		logger:      log,
	}
}

func (s *fileDocumentStore[T]) Type() models.ContentType {
	return s.contentType
}

func (s *fileDocumentStore[T]) Read(ctx context.Context) T {
	doc, _ := s.ReadWithETag(ctx)
	return doc
}

func (s *fileDocumentStore[T]) ReadWithETag(ctx context.Context) (T, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, etag, _ := s.readLocked(ctx)
	return doc, etag
}

func (s *fileDocumentStore[T]) ETag(ctx context.Context) string {
	_, etag := s.ReadWithETag(ctx)
	return etag
}

func (s *fileDocumentStore[T]) Write(ctx context.Context, doc T) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(ctx, doc)
}

func (s *fileDocumentStore[T]) Update(ctx context.Context, ifMatch string, fn func(doc *T) error) (T, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, etag, _ := s.readLocked(ctx)
	if ifMatch != "" && ifMatch != etag {
		var zero T
		return zero, etag, ErrPreconditionFailed
	}

	if err := fn(&doc); err != nil {
		var zero T
		return zero, etag, err
	}

	// unchanged documents are neither rewritten nor announced
	if same, err := utils.ETag(doc); err == nil && same == etag {
		return doc, etag, nil
	}

	newETag, err := s.writeLocked(ctx, doc)
	if err != nil {
		var zero T
		return zero, etag, err
	}
	return doc, newETag, nil
}

func (s *fileDocumentStore[T]) Sync(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.lastETag
	_, etag, restored := s.readLocked(ctx)
	if previous == "" || previous == etag {
		return false, nil
	}
	if restored {
		// the restored default was already published by the write
		return true, nil
	}

	s.publish(etag)
	return true, nil
}

// readLocked loads the document, substituting and persisting the default
// when the file cannot be used. restored reports the substitution.
func (s *fileDocumentStore[T]) readLocked(ctx context.Context) (doc T, etag string, restored bool) {
	log := s.log(ctx)

	doc, err := s.load()
	if err == nil {
		etag, err = utils.ETag(doc)
		if err == nil {
			s.lastETag = etag
			return doc, etag, false
		}
	}

	log.Warn().Err(err).Str("type", string(s.contentType)).Str("path", s.path).
		Msg("content file unusable, restoring default document")

	doc = s.defaults()
	etag, writeErr := s.writeLocked(ctx, doc)
	if writeErr != nil {
		log.Err(writeErr).Str("type", string(s.contentType)).Msg("error persisting default document")
		etag, _ = utils.ETag(doc)
		s.lastETag = etag
	}
	return doc, etag, true
}

func (s *fileDocumentStore[T]) load() (T, error) {
	var doc T

	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc, fmt.Errorf("error reading %s: %w", s.path, err)
	}
	if !s.shape.Check(data) {
		return doc, fmt.Errorf("document %s has an invalid shape", s.path)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("error decoding %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *fileDocumentStore[T]) writeLocked(ctx context.Context, doc T) (string, error) {
	data, err := utils.CanonicalJSON(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		s.log(ctx).Err(err).Str("type", string(s.contentType)).Msg("error writing document")
		return "", fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	etag := utils.Hash(data)
	s.lastETag = etag
	s.publish(etag)
	return etag, nil
}

// log prefers the request-scoped logger and falls back to the store's own.
func (s *fileDocumentStore[T]) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

func (s *fileDocumentStore[T]) publish(etag string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(models.ContentChange{Type: s.contentType, ETag: etag, At: time.Now().UTC()})
}

// writeFileAtomic writes data to a temporary file in the directory of path
// and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
