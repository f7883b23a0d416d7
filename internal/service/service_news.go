package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
)

type newsService struct {
	store     store.DocumentStore[models.NewsDocument]
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewNewsService(news store.DocumentStore[models.NewsDocument], ids IDGenerator, logger *logger.Logger) NewsService {
	return &newsService{
		store:     news,
		ids:       ids,
		validator: validators.NewContentValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *newsService) ListNews(ctx context.Context) (models.NewsDocument, string, error) {
	doc, etag := s.store.ReadWithETag(ctx)
	if doc.News == nil {
		doc.News = []models.NewsItem{}
	}
	if doc.Realisations == nil {
		doc.Realisations = []models.Realisation{}
	}
	return doc, etag, nil
}

// CreateNews decodes the request body as the record kind it names and
// prepends the record to its list. The date defaults to today.
func (s *newsService) CreateNews(ctx context.Context, request models.NewsRequest) (any, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now().UTC()
	var (
		created any
		err     error
	)
	switch request.Type {
	case models.KindNews:
		var item models.NewsItem
		if err = decodeNewsBody(request, &item); err != nil {
			return nil, err
		}
		item.ID, item.CreatedAt = s.ids.Generate(), now
		if item.Date == "" {
			item.Date = now.Format(dateFormat)
		}
		if err = s.validator.Validate(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		_, _, err = s.store.Update(ctx, "", func(doc *models.NewsDocument) error {
			doc.News = slices.Insert(doc.News, 0, item)
			return nil
		})
		created = item
	case models.KindRealisation:
		var realisation models.Realisation
		if err = decodeNewsBody(request, &realisation); err != nil {
			return nil, err
		}
		realisation.ID, realisation.CreatedAt = s.ids.Generate(), now
		if realisation.Date == "" {
			realisation.Date = now.Format(dateFormat)
		}
		if err = s.validator.Validate(ctx, realisation); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		_, _, err = s.store.Update(ctx, "", func(doc *models.NewsDocument) error {
			doc.Realisations = slices.Insert(doc.Realisations, 0, realisation)
			return nil
		})
		created = realisation
	}
	if err != nil {
		log.Err(err).Str("type", string(request.Type)).Msg("error saving news record")
		return nil, fmt.Errorf("error saving news record: %w", err)
	}

	log.Info().Str("type", string(request.Type)).Msg("news record created")
	return created, nil
}

// UpdateNews copies the non-zero fields of the request over the stored
// record of the same kind and id. The creation time is kept.
func (s *newsService) UpdateNews(ctx context.Context, request models.NewsRequest) (any, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request, validators.FieldID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var (
		updated any
		err     error
	)
	switch request.Type {
	case models.KindNews:
		var patch models.NewsItem
		if err = decodeNewsBody(request, &patch); err != nil {
			return nil, err
		}
		patch.ID, patch.CreatedAt = request.ID, time.Time{}
		_, _, err = s.store.Update(ctx, "", func(doc *models.NewsDocument) error {
			i := doc.FindNews(request.ID)
			if i < 0 {
				return ErrNewsNotFound
			}
			item := doc.News[i]
			if err := s.merge(ctx, &item, patch); err != nil {
				return err
			}
			doc.News[i], updated = item, item
			return nil
		})
	case models.KindRealisation:
		var patch models.Realisation
		if err = decodeNewsBody(request, &patch); err != nil {
			return nil, err
		}
		patch.ID, patch.CreatedAt = request.ID, time.Time{}
		_, _, err = s.store.Update(ctx, "", func(doc *models.NewsDocument) error {
			i := doc.FindRealisation(request.ID)
			if i < 0 {
				return ErrNewsNotFound
			}
			realisation := doc.Realisations[i]
			if err := s.merge(ctx, &realisation, patch); err != nil {
				return err
			}
			doc.Realisations[i], updated = realisation, realisation
			return nil
		})
	}
	if err != nil {
		log.Err(err).Str("id", request.ID).Str("type", string(request.Type)).Msg("news update failed")
		return nil, err
	}

	return updated, nil
}

func (s *newsService) DeleteNews(ctx context.Context, kind models.NewsKind, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}
	if kind != "" {
		if err := s.validator.Validate(ctx, kind); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	_, _, err := s.store.Update(ctx, "", func(doc *models.NewsDocument) error {
		if kind == "" || kind == models.KindNews {
			if i := doc.FindNews(id); i >= 0 {
				doc.News = slices.Delete(doc.News, i, i+1)
				return nil
			}
		}
		if kind == "" || kind == models.KindRealisation {
			if i := doc.FindRealisation(id); i >= 0 {
				doc.Realisations = slices.Delete(doc.Realisations, i, i+1)
				return nil
			}
		}
		return ErrNewsNotFound
	})
	if err != nil {
		log.Err(err).Str("id", id).Str("type", string(kind)).Msg("news deletion failed")
		return err
	}

	log.Info().Str("id", id).Msg("news record deleted")
	return nil
}

func (s *newsService) merge(ctx context.Context, dst any, patch any) error {
	var err error
	switch d := dst.(type) {
	case *models.NewsItem:
		err = utils.MergePatch(d, patch.(models.NewsItem))
	case *models.Realisation:
		err = utils.MergePatch(d, patch.(models.Realisation))
	}
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func decodeNewsBody(request models.NewsRequest, dst any) error {
	if len(request.Body) == 0 {
		return ErrInvalidDataProvided
	}
	if err := json.Unmarshal(request.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
