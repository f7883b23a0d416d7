package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
)

type pageService struct {
	pages map[models.ContentType]store.DocumentStore[models.Document]

	logger *logger.Logger
}

func NewPageService(pages map[models.ContentType]store.DocumentStore[models.Document], logger *logger.Logger) PageService {
	return &pageService{
		pages:  pages,
		logger: logger,
	}
}

func (s *pageService) GetPage(ctx context.Context, t models.ContentType) (models.Document, string, error) {
	pageStore, err := s.page(t)
	if err != nil {
		return nil, "", err
	}

	doc, etag := pageStore.ReadWithETag(ctx)
	return doc, etag, nil
}

// UpdatePage replaces every top-level key of the stored page present in
// patch. The merged page must keep the keys the public site relies on; a
// patch setting one of them to null is rejected.
func (s *pageService) UpdatePage(ctx context.Context, t models.ContentType, ifMatch string, patch models.Document) (models.Document, string, error) {
	log := logger.FromContext(ctx)

	pageStore, err := s.page(t)
	if err != nil {
		return nil, "", err
	}
	if patch == nil {
		return nil, "", ErrInvalidDataProvided
	}

	shape := store.ShapeOf(t)
	doc, etag, err := pageStore.Update(ctx, ifMatch, func(doc *models.Document) error {
		merged := utils.ShallowMerge(*doc, patch)
		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		if !shape.Check(data) {
			return fmt.Errorf("%w: %s document lost a required key", ErrInvalidDataProvided, t)
		}
		*doc = merged
		return nil
	})
	if err != nil {
		log.Err(err).Str("type", string(t)).Msg("page update failed")
		return nil, "", err
	}

	log.Info().Str("type", string(t)).Str("etag", etag).Msg("page updated")
	return doc, etag, nil
}

func (s *pageService) page(t models.ContentType) (store.DocumentStore[models.Document], error) {
	pageStore, ok := s.pages[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPageType, t)
	}
	return pageStore, nil
}
