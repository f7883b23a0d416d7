package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
)

// sectionVideoService keeps the section videos in section-videos.json.
type sectionVideoService struct {
	store     store.DocumentStore[models.SectionVideosDocument]
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewSectionVideoService(videos store.DocumentStore[models.SectionVideosDocument], logger *logger.Logger) SectionVideoService {
	return &sectionVideoService{
		store:     videos,
		validator: validators.NewContentValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *sectionVideoService) ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error) {
	doc := s.store.Read(ctx)
	if doc.Videos == nil {
		return []models.SectionVideo{}, nil
	}
	return doc.Videos, nil
}

func (s *sectionVideoService) GetSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	doc := s.store.Read(ctx)
	i := doc.Find(section)
	if i < 0 {
		return models.SectionVideo{}, ErrSectionVideoNotFound
	}
	return doc.Videos[i], nil
}

// SaveSectionVideo replaces the video of video.Section, or adds it when the
// section has none yet.
func (s *sectionVideoService) SaveSectionVideo(ctx context.Context, video models.SectionVideo) (models.SectionVideo, error) {
	log := logger.FromContext(ctx)

	video.UpdatedAt = s.now().UTC()
	if err := s.validator.Validate(ctx, video); err != nil {
		return models.SectionVideo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, _, err := s.store.Update(ctx, "", func(doc *models.SectionVideosDocument) error {
		if i := doc.Find(video.Section); i >= 0 {
			doc.Videos[i] = video
			return nil
		}
		doc.Videos = append(doc.Videos, video)
		return nil
	})
	if err != nil {
		log.Err(err).Str("section", video.Section).Msg("error saving section video")
		return models.SectionVideo{}, fmt.Errorf("error saving section video: %w", err)
	}

	log.Info().Str("section", video.Section).Bool("active", video.Active).Msg("section video saved")
	return video, nil
}

// ToggleSectionVideo flips the active flag. Activating a video without a
// source is rejected.
func (s *sectionVideoService) ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	log := logger.FromContext(ctx)

	var toggled models.SectionVideo
	_, _, err := s.store.Update(ctx, "", func(doc *models.SectionVideosDocument) error {
		i := doc.Find(section)
		if i < 0 {
			return ErrSectionVideoNotFound
		}

		toggled = doc.Videos[i]
		toggled.Active = !toggled.Active
		toggled.UpdatedAt = s.now().UTC()
		if err := s.validator.Validate(ctx, toggled); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		doc.Videos[i] = toggled
		return nil
	})
	if err != nil {
		log.Err(err).Str("section", section).Msg("section video toggle failed")
		return models.SectionVideo{}, err
	}

	return toggled, nil
}

func (s *sectionVideoService) DeleteSectionVideo(ctx context.Context, section string) error {
	_, _, err := s.store.Update(ctx, "", func(doc *models.SectionVideosDocument) error {
		i := doc.Find(section)
		if i < 0 {
			return ErrSectionVideoNotFound
		}
		doc.Videos = slices.Delete(doc.Videos, i, i+1)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("section", section).Msg("section video deletion failed")
		return err
	}
	return nil
}

// sectionVideoProxyService forwards every call to the external section
// video service. Input is validated before it leaves the process.
type sectionVideoProxyService struct {
	backend   adapter.SectionVideoBackend
	validator validators.Validator

	logger *logger.Logger
}

func NewSectionVideoProxyService(backend adapter.SectionVideoBackend, logger *logger.Logger) SectionVideoService {
	return &sectionVideoProxyService{
		backend:   backend,
		validator: validators.NewContentValidator(),
		logger:    logger,
	}
}

func (p *sectionVideoProxyService) ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error) {
	videos, err := p.backend.ListSectionVideos(ctx)
	return videos, proxyError(err)
}

func (p *sectionVideoProxyService) GetSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	video, err := p.backend.GetSectionVideo(ctx, section)
	return video, proxyError(err)
}

func (p *sectionVideoProxyService) SaveSectionVideo(ctx context.Context, video models.SectionVideo) (models.SectionVideo, error) {
	if err := p.validator.Validate(ctx, video); err != nil {
		return models.SectionVideo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := p.backend.SaveSectionVideo(ctx, video)
	return saved, proxyError(err)
}

func (p *sectionVideoProxyService) ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	video, err := p.backend.ToggleSectionVideo(ctx, section)
	return video, proxyError(err)
}

func (p *sectionVideoProxyService) DeleteSectionVideo(ctx context.Context, section string) error {
	return proxyError(p.backend.DeleteSectionVideo(ctx, section))
}

// proxyError translates the backend's not-found and rejected-input answers
// to service errors. Everything else is kept as is.
func proxyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrSectionVideoNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return err
}
