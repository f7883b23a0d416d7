package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/mock"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSectionVideoService(t *testing.T) *sectionVideoService {
	t.Helper()
	svc := NewSectionVideoService(newTestStorages(t).SectionVideos, logger.Nop()).(*sectionVideoService)
	svc.now = clock
	return svc
}

var heroVideo = models.SectionVideo{
	Section:  "home-hero",
	Title:    "Présentation",
	Active:   true,
	VideoURL: "https://videos.example.com/hero.mp4",
}

// ── local store ──

func TestSectionVideoService_SaveAndGet(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()

	saved, err := svc.SaveSectionVideo(ctx, heroVideo)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, saved.UpdatedAt)

	got, err := svc.GetSectionVideo(ctx, "home-hero")
	require.NoError(t, err)
	assert.Equal(t, heroVideo.VideoURL, got.VideoURL)

	videos, err := svc.ListSectionVideos(ctx)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestSectionVideoService_Save_Upserts(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()

	_, err := svc.SaveSectionVideo(ctx, heroVideo)
	require.NoError(t, err)

	replacement := heroVideo
	replacement.VideoURL = ""
	replacement.VideoPath = "/videos/hero-v2.mp4"
	_, err = svc.SaveSectionVideo(ctx, replacement)
	require.NoError(t, err)

	videos, err := svc.ListSectionVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "/videos/hero-v2.mp4", videos[0].VideoPath)
	assert.Empty(t, videos[0].VideoURL)
}

func TestSectionVideoService_Save_Validation(t *testing.T) {
	tests := []struct {
		name  string
		video models.SectionVideo
		want  error
	}{
		{
			name:  "active without source",
			video: models.SectionVideo{Section: "about-intro", Active: true},
			want:  validators.ErrVideoSourceRequired,
		},
		{
			name:  "active with both sources",
			video: models.SectionVideo{Section: "about-intro", Active: true, VideoURL: "https://v.example.com/a.mp4", VideoPath: "/videos/a.mp4"},
			want:  validators.ErrVideoSourceRequired,
		},
		{
			name:  "missing section",
			video: models.SectionVideo{VideoURL: "https://v.example.com/a.mp4"},
			want:  validators.ErrSectionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSectionVideoService(t)

			_, err := svc.SaveSectionVideo(context.Background(), tt.video)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSectionVideoService_Save_InactiveWithoutSource(t *testing.T) {
	svc := newTestSectionVideoService(t)

	_, err := svc.SaveSectionVideo(context.Background(), models.SectionVideo{Section: "about-intro"})

	assert.NoError(t, err)
}

func TestSectionVideoService_Toggle(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()
	_, err := svc.SaveSectionVideo(ctx, heroVideo)
	require.NoError(t, err)

	toggled, err := svc.ToggleSectionVideo(ctx, "home-hero")
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = svc.ToggleSectionVideo(ctx, "home-hero")
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestSectionVideoService_Toggle_CannotActivateWithoutSource(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()
	_, err := svc.SaveSectionVideo(ctx, models.SectionVideo{Section: "about-intro"})
	require.NoError(t, err)

	_, err = svc.ToggleSectionVideo(ctx, "about-intro")

	assert.ErrorIs(t, err, validators.ErrVideoSourceRequired)
	got, err := svc.GetSectionVideo(ctx, "about-intro")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestSectionVideoService_UnknownSection(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()

	_, err := svc.GetSectionVideo(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrSectionVideoNotFound)

	_, err = svc.ToggleSectionVideo(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrSectionVideoNotFound)

	assert.ErrorIs(t, svc.DeleteSectionVideo(ctx, "nowhere"), ErrSectionVideoNotFound)
}

func TestSectionVideoService_Delete(t *testing.T) {
	svc := newTestSectionVideoService(t)
	ctx := context.Background()
	_, err := svc.SaveSectionVideo(ctx, heroVideo)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSectionVideo(ctx, "home-hero"))

	videos, err := svc.ListSectionVideos(ctx)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

// ── proxy ──

func TestSectionVideoProxyService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockSectionVideoBackend(ctrl)
	svc := NewSectionVideoProxyService(backend, logger.Nop())
	ctx := context.Background()

	backend.EXPECT().ListSectionVideos(ctx).Return([]models.SectionVideo{heroVideo}, nil)
	backend.EXPECT().SaveSectionVideo(ctx, heroVideo).Return(heroVideo, nil)
	backend.EXPECT().ToggleSectionVideo(ctx, "home-hero").Return(models.SectionVideo{Section: "home-hero"}, nil)
	backend.EXPECT().DeleteSectionVideo(ctx, "home-hero").Return(nil)

	videos, err := svc.ListSectionVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SectionVideo{heroVideo}, videos)

	_, err = svc.SaveSectionVideo(ctx, heroVideo)
	require.NoError(t, err)

	toggled, err := svc.ToggleSectionVideo(ctx, "home-hero")
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	require.NoError(t, svc.DeleteSectionVideo(ctx, "home-hero"))
}

func TestSectionVideoProxyService_InvalidVideoNeverLeaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockSectionVideoBackend(ctrl)
	svc := NewSectionVideoProxyService(backend, logger.Nop())

	_, err := svc.SaveSectionVideo(context.Background(), models.SectionVideo{Section: "home-hero", Active: true})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSectionVideoProxyService_ErrorMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockSectionVideoBackend(ctrl)
	svc := NewSectionVideoProxyService(backend, logger.Nop())
	ctx := context.Background()

	backend.EXPECT().GetSectionVideo(ctx, "nowhere").Return(models.SectionVideo{}, fmt.Errorf("%w: 404", adapter.ErrNotFound))
	backend.EXPECT().ToggleSectionVideo(ctx, "home-hero").Return(models.SectionVideo{}, fmt.Errorf("%w: 400", adapter.ErrBadRequest))
	backend.EXPECT().DeleteSectionVideo(ctx, "home-hero").Return(adapter.ErrBackendUnavailable)

	_, err := svc.GetSectionVideo(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrSectionVideoNotFound)

	_, err = svc.ToggleSectionVideo(ctx, "home-hero")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.DeleteSectionVideo(ctx, "home-hero")
	assert.True(t, errors.Is(err, adapter.ErrBackendUnavailable))
}
