package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/models"
)

// Storages groups every persistence component of the server.
type Storages struct {
	Pages         map[models.ContentType]DocumentStore[models.Document]
	Publications  DocumentStore[models.PublicationsDocument]
	News          DocumentStore[models.NewsDocument]
	SectionVideos DocumentStore[models.SectionVideosDocument]
	Contacts      ContactRepository
	Uploads       FileStorage

	db *DB
}

// NewStorages opens the content stores under the data directory, the upload
// storage under the public directory and the contacts database.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, notifier ChangeNotifier, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening contacts database: %w", err)
	}

	storages, err := NewFileStorages(cfg.Storage.Files, notifier, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	storages.db = db
	storages.Contacts = NewContactRepository(db, log)

	return storages, nil
}

// NewFileStorages builds the file-backed part of [Storages]. Contacts is
// left nil.
func NewFileStorages(cfg config.Files, notifier ChangeNotifier, log *logger.Logger) (*Storages, error) {
	provider, err := NewDefaultProvider()
	if err != nil {
		return nil, err
	}

	pages := make(map[models.ContentType]DocumentStore[models.Document], len(models.PageTypes))
	for _, t := range models.PageTypes {
		pages[t] = NewFileDocumentStore[models.Document](cfg.DataDir, t, provider, notifier, log)
	}

	return &Storages{
		Pages:         pages,
		Publications:  NewFileDocumentStore[models.PublicationsDocument](cfg.DataDir, models.Publications, provider, notifier, log),
		News:          NewFileDocumentStore[models.NewsDocument](cfg.DataDir, models.News, provider, notifier, log),
		SectionVideos: NewFileDocumentStore[models.SectionVideosDocument](cfg.DataDir, models.SectionVideos, provider, notifier, log),
		Uploads:       NewUploadFileStorage(cfg.PublicDir, log),
	}, nil
}

// Page returns the store of a page content type.
func (s *Storages) Page(t models.ContentType) (DocumentStore[models.Document], error) {
	page, ok := s.Pages[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContentType, t)
	}
	return page, nil
}

// Syncers lists every file-backed store, in [models.FileBackedTypes] order.
func (s *Storages) Syncers() []Syncer {
	syncers := make([]Syncer, 0, len(models.FileBackedTypes))
	for _, t := range models.PageTypes {
		if page, ok := s.Pages[t]; ok {
			syncers = append(syncers, page)
		}
	}
	return append(syncers, s.Publications, s.News, s.SectionVideos)
}

// Close releases the contacts database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
