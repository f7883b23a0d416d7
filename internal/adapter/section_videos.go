package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-resty/resty/v2"
)

type sectionVideoBackend struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewSectionVideoBackend returns a [SectionVideoBackend] calling the video
// service the client is rooted at (paths /api/section-videos[/{section}[/toggle]]).
func NewSectionVideoBackend(client *utils.HTTPClient, logger *logger.Logger) SectionVideoBackend {
	logger.Debug().Str("base_url", client.BaseURL).Msg("creating section video backend")
	return &sectionVideoBackend{client: client, logger: logger}
}

func (b *sectionVideoBackend) ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error) {
	var doc models.SectionVideosDocument
	resp, err := b.client.R().SetContext(ctx).SetResult(&doc).Get("/api/section-videos")
	if err := b.check(ctx, resp, err); err != nil {
		return nil, err
	}
	if doc.Videos == nil {
		doc.Videos = []models.SectionVideo{}
	}
	return doc.Videos, nil
}

func (b *sectionVideoBackend) GetSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	var video models.SectionVideo
	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParam("section", section).
		SetResult(&video).
		Get("/api/section-videos/{section}")
	if err := b.check(ctx, resp, err); err != nil {
		return models.SectionVideo{}, err
	}
	return video, nil
}

func (b *sectionVideoBackend) SaveSectionVideo(ctx context.Context, video models.SectionVideo) (models.SectionVideo, error) {
	var result models.SectionVideoResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParam("section", video.Section).
		SetHeader("Content-Type", "application/json").
		SetBody(video).
		SetResult(&result).
		Put("/api/section-videos/{section}")
	if err := b.check(ctx, resp, err); err != nil {
		return models.SectionVideo{}, err
	}
	return result.Video, nil
}

func (b *sectionVideoBackend) ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	var result models.SectionVideoResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParam("section", section).
		SetResult(&result).
		Post("/api/section-videos/{section}/toggle")
	if err := b.check(ctx, resp, err); err != nil {
		return models.SectionVideo{}, err
	}
	return result.Video, nil
}

func (b *sectionVideoBackend) DeleteSectionVideo(ctx context.Context, section string) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParam("section", section).
		Delete("/api/section-videos/{section}")
	return b.check(ctx, resp, err)
}

// check turns transport failures and 5xx answers into
// [ErrBackendUnavailable]; 4xx answers keep their mapped sentinel.
func (b *sectionVideoBackend) check(ctx context.Context, resp *resty.Response, err error) error {
	log := logger.FromContext(ctx)

	if err != nil {
		log.Err(err).Str("func", "*sectionVideoBackend.check").Msg("section video backend unreachable")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	mapped := mapHTTPError(resp)
	if mapped == nil {
		return nil
	}
	if resp.StatusCode() >= http.StatusInternalServerError || errors.Is(mapped, ErrBadGateway) {
		log.Error().Int("status", resp.StatusCode()).Msg("section video backend failed")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, mapped)
	}
	return mapped
}
