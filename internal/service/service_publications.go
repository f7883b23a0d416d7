package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
)

// dateFormat is the layout of the record "date" fields.
const dateFormat = "2006-01-02"

type publicationService struct {
	store     store.DocumentStore[models.PublicationsDocument]
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewPublicationService(publications store.DocumentStore[models.PublicationsDocument], ids IDGenerator, logger *logger.Logger) PublicationService {
	return &publicationService{
		store:     publications,
		ids:       ids,
		validator: validators.NewContentValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *publicationService) ListPublications(ctx context.Context) (models.PublicationsDocument, string, error) {
	doc, etag := s.store.ReadWithETag(ctx)
	if doc.Publications == nil {
		doc.Publications = []models.Publication{}
	}
	return doc, etag, nil
}

// CreatePublication appends a new publication. The id, the date and the
// download counter are always set by the server.
func (s *publicationService) CreatePublication(ctx context.Context, publication models.Publication) (models.Publication, error) {
	log := logger.FromContext(ctx)

	publication.ID = s.ids.Generate()
	publication.Date = s.now().UTC().Format(dateFormat)
	publication.DownloadCount = 0

	if err := s.validator.Validate(ctx, publication); err != nil {
		log.Err(err).Str("title", publication.Title).Msg("invalid publication")
		return models.Publication{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, _, err := s.store.Update(ctx, "", func(doc *models.PublicationsDocument) error {
		doc.Publications = append(doc.Publications, publication)
		return nil
	})
	if err != nil {
		log.Err(err).Msg("error saving publication")
		return models.Publication{}, fmt.Errorf("error saving publication: %w", err)
	}

	log.Info().Str("id", publication.ID).Msg("publication created")
	return publication, nil
}

// UpdatePublication copies the non-zero fields of patch over the stored
// publication with the same id. The download counter cannot be patched.
func (s *publicationService) UpdatePublication(ctx context.Context, patch models.Publication) (models.Publication, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, patch, validators.FieldID); err != nil {
		return models.Publication{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	patch.DownloadCount = 0

	var updated models.Publication
	_, _, err := s.store.Update(ctx, "", func(doc *models.PublicationsDocument) error {
		i := doc.Find(patch.ID)
		if i < 0 {
			return ErrPublicationNotFound
		}

		updated = doc.Publications[i]
		if err := utils.MergePatch(&updated, patch); err != nil {
			return err
		}
		if err := s.validator.Validate(ctx, updated); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		doc.Publications[i] = updated
		return nil
	})
	if err != nil {
		log.Err(err).Str("id", patch.ID).Msg("publication update failed")
		return models.Publication{}, err
	}

	return updated, nil
}

func (s *publicationService) DeletePublication(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}

	_, _, err := s.store.Update(ctx, "", func(doc *models.PublicationsDocument) error {
		i := doc.Find(id)
		if i < 0 {
			return ErrPublicationNotFound
		}
		doc.Publications = slices.Delete(doc.Publications, i, i+1)
		return nil
	})
	if err != nil {
		log.Err(err).Str("id", id).Msg("publication deletion failed")
		return err
	}

	log.Info().Str("id", id).Msg("publication deleted")
	return nil
}

func (s *publicationService) TrackDownload(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}

	var count int
	_, _, err := s.store.Update(ctx, "", func(doc *models.PublicationsDocument) error {
		i := doc.Find(id)
		if i < 0 {
			return ErrPublicationNotFound
		}
		doc.Publications[i].DownloadCount++
		count = doc.Publications[i].DownloadCount
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
