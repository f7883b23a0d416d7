package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublicationService(t *testing.T) *publicationService {
	t.Helper()
	svc := NewPublicationService(newTestStorages(t).Publications, &sequenceIDs{}, logger.Nop()).(*publicationService)
	svc.now = clock
	return svc
}

func seedPublication(t *testing.T, svc PublicationService) models.Publication {
	t.Helper()
	created, err := svc.CreatePublication(context.Background(), models.Publication{
		Title:       "Rapport Q1",
		Description: "Synthèse trimestrielle",
		Type:        models.PublicationDocument,
		Category:    "rapports",
		FileURL:     "/documents/rapport-q1.pdf",
	})
	require.NoError(t, err)
	return created
}

// ── ListPublications ──

func TestPublicationService_List_EmptyIsNotNil(t *testing.T) {
	svc := newTestPublicationService(t)

	doc, etag, err := svc.ListPublications(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, etag)
	assert.NotNil(t, doc.Publications)
	assert.Empty(t, doc.Publications)
}

// ── CreatePublication ──

func TestPublicationService_Create_SetsServerFields(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()

	created, err := svc.CreatePublication(ctx, models.Publication{
		ID:            "client-chosen",
		Title:         "Rapport Q1",
		FileURL:       "/documents/rapport-q1.pdf",
		Date:          "1999-01-01",
		DownloadCount: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "2026-03-14", created.Date)
	assert.Zero(t, created.DownloadCount)

	doc, _, err := svc.ListPublications(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Publications, 1)
	assert.Equal(t, created, doc.Publications[0])
}

func TestPublicationService_Create_DistinctIDs(t *testing.T) {
	svc := NewPublicationService(newTestStorages(t).Publications, utilsGenerator(), logger.Nop())
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 20 {
		p, err := svc.CreatePublication(ctx, models.Publication{Title: "Note", FileURL: "/documents/n.pdf"})
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestPublicationService_Create_Validation(t *testing.T) {
	tests := []struct {
		name        string
		publication models.Publication
		want        error
	}{
		{
			name:        "missing title",
			publication: models.Publication{FileURL: "/documents/a.pdf"},
			want:        validators.ErrTitleRequired,
		},
		{
			name:        "missing media url",
			publication: models.Publication{Title: "Sans fichier"},
			want:        validators.ErrMediaURLRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestPublicationService(t)

			_, err := svc.CreatePublication(context.Background(), tt.publication)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)

			doc, _, _ := svc.ListPublications(context.Background())
			assert.Empty(t, doc.Publications)
		})
	}
}

func TestPublicationService_Create_VideoURLIsEnough(t *testing.T) {
	svc := newTestPublicationService(t)

	created, err := svc.CreatePublication(context.Background(), models.Publication{
		Title:    "Webinaire",
		Type:     models.PublicationVideo,
		VideoURL: "https://videos.example.com/webinaire",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://videos.example.com/webinaire", created.VideoURL)
}

// ── UpdatePublication ──

func TestPublicationService_Update_PreservesOtherFields(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	original := seedPublication(t, svc)

	updated, err := svc.UpdatePublication(ctx, models.Publication{ID: original.ID, Title: "Rapport Q1 (révisé)"})

	require.NoError(t, err)
	assert.Equal(t, "Rapport Q1 (révisé)", updated.Title)
	assert.Equal(t, original.Description, updated.Description)
	assert.Equal(t, original.FileURL, updated.FileURL)
	assert.Equal(t, original.Date, updated.Date)

	doc, _, err := svc.ListPublications(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Publications, 1)
	assert.Equal(t, updated, doc.Publications[0])
}

func TestPublicationService_Update_DownloadCountIsServerOwned(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	original := seedPublication(t, svc)

	_, err := svc.TrackDownload(ctx, original.ID)
	require.NoError(t, err)

	updated, err := svc.UpdatePublication(ctx, models.Publication{ID: original.ID, DownloadCount: 1000})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.DownloadCount)
}

func TestPublicationService_Update_UnknownID(t *testing.T) {
	svc := newTestPublicationService(t)
	seedPublication(t, svc)

	_, err := svc.UpdatePublication(context.Background(), models.Publication{ID: "missing", Title: "x"})

	assert.ErrorIs(t, err, ErrPublicationNotFound)
}

func TestPublicationService_Update_MissingID(t *testing.T) {
	svc := newTestPublicationService(t)

	_, err := svc.UpdatePublication(context.Background(), models.Publication{Title: "x"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrIDRequired)
}

func TestPublicationService_Update_InvalidResultRejected(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	original := seedPublication(t, svc)

	_, err := svc.UpdatePublication(ctx, models.Publication{ID: original.ID, Date: "14/03/2026"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	doc, _, _ := svc.ListPublications(ctx)
	assert.Equal(t, original, doc.Publications[0])
}

// ── DeletePublication ──

func TestPublicationService_Delete(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	first := seedPublication(t, svc)
	second := seedPublication(t, svc)

	require.NoError(t, svc.DeletePublication(ctx, first.ID))

	doc, _, err := svc.ListPublications(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Publications, 1)
	assert.Equal(t, second.ID, doc.Publications[0].ID)
}

func TestPublicationService_Delete_UnknownIDKeepsCount(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	seedPublication(t, svc)
	seedPublication(t, svc)

	err := svc.DeletePublication(ctx, "missing")

	assert.ErrorIs(t, err, ErrPublicationNotFound)
	doc, _, _ := svc.ListPublications(ctx)
	assert.Len(t, doc.Publications, 2)
}

func TestPublicationService_Delete_EmptyID(t *testing.T) {
	svc := newTestPublicationService(t)

	err := svc.DeletePublication(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── TrackDownload ──

func TestPublicationService_TrackDownload(t *testing.T) {
	svc := newTestPublicationService(t)
	ctx := context.Background()
	p := seedPublication(t, svc)

	for want := 1; want <= 3; want++ {
		count, err := svc.TrackDownload(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	_, err := svc.TrackDownload(ctx, "missing")
	assert.ErrorIs(t, err, ErrPublicationNotFound)
}
