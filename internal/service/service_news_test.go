package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNewsService(t *testing.T) *newsService {
	t.Helper()
	svc := NewNewsService(newTestStorages(t).News, &sequenceIDs{}, logger.Nop()).(*newsService)
	svc.now = clock
	return svc
}

func newsRequest(t *testing.T, body string) models.NewsRequest {
	t.Helper()
	var request models.NewsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))
	return request
}

// ── CreateNews ──

func TestNewsService_Create_News(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	created, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Nouveau bureau","summary":"Lyon"}`))

	require.NoError(t, err)
	item, ok := created.(models.NewsItem)
	require.True(t, ok)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "2026-03-14", item.Date)
	assert.Equal(t, fixedNow, item.CreatedAt)
	assert.Equal(t, "Lyon", item.Summary)

	doc, _, err := svc.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, doc.News, 1)
	assert.Empty(t, doc.Realisations)
	assert.NotNil(t, doc.Realisations)
}

func TestNewsService_Create_KeepsGivenDate(t *testing.T) {
	svc := newTestNewsService(t)

	created, err := svc.CreateNews(context.Background(), newsRequest(t, `{"type":"realisation","title":"Refonte SI","client":"ACME","date":"2025-11-02"}`))

	require.NoError(t, err)
	realisation := created.(models.Realisation)
	assert.Equal(t, "2025-11-02", realisation.Date)
	assert.Equal(t, "ACME", realisation.Client)
}

func TestNewsService_Create_NewestFirst(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	_, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Premier"}`))
	require.NoError(t, err)
	_, err = svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Second"}`))
	require.NoError(t, err)

	doc, _, err := svc.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, doc.News, 2)
	assert.Equal(t, "Second", doc.News[0].Title)
}

func TestNewsService_Create_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "unknown type", body: `{"type":"event","title":"x"}`, want: validators.ErrInvalidNewsKind},
		{name: "missing type", body: `{"title":"x"}`, want: validators.ErrInvalidNewsKind},
		{name: "missing title", body: `{"type":"news"}`, want: validators.ErrTitleRequired},
		{name: "bad date", body: `{"type":"news","title":"x","date":"demain"}`, want: validators.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestNewsService(t)

			_, err := svc.CreateNews(context.Background(), newsRequest(t, tt.body))

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── UpdateNews ──

func TestNewsService_Update_PreservesOtherFields(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	created, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"realisation","title":"Audit","client":"ACME","results":["-20% de coûts"]}`))
	require.NoError(t, err)
	original := created.(models.Realisation)

	updated, err := svc.UpdateNews(ctx, newsRequest(t, `{"type":"realisation","id":"`+original.ID+`","title":"Audit financier"}`))

	require.NoError(t, err)
	realisation := updated.(models.Realisation)
	assert.Equal(t, "Audit financier", realisation.Title)
	assert.Equal(t, "ACME", realisation.Client)
	assert.Equal(t, original.Results, realisation.Results)
	assert.Equal(t, original.CreatedAt, realisation.CreatedAt)
}

func TestNewsService_Update_WrongKindIsNotFound(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	created, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Annonce"}`))
	require.NoError(t, err)
	id := created.(models.NewsItem).ID

	_, err = svc.UpdateNews(ctx, newsRequest(t, `{"type":"realisation","id":"`+id+`","title":"x"}`))

	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsService_Update_MissingID(t *testing.T) {
	svc := newTestNewsService(t)

	_, err := svc.UpdateNews(context.Background(), newsRequest(t, `{"type":"news","title":"x"}`))

	assert.ErrorIs(t, err, validators.ErrIDRequired)
}

// ── DeleteNews ──

func TestNewsService_Delete_WithoutKindSearchesBoth(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	_, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Annonce"}`))
	require.NoError(t, err)
	created, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"realisation","title":"Projet"}`))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNews(ctx, "", created.(models.Realisation).ID))

	doc, _, err := svc.ListNews(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.News, 1)
	assert.Empty(t, doc.Realisations)
}

func TestNewsService_Delete_KindRestrictsSearch(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	created, err := svc.CreateNews(ctx, newsRequest(t, `{"type":"news","title":"Annonce"}`))
	require.NoError(t, err)
	id := created.(models.NewsItem).ID

	err = svc.DeleteNews(ctx, models.KindRealisation, id)
	assert.ErrorIs(t, err, ErrNewsNotFound)

	require.NoError(t, svc.DeleteNews(ctx, models.KindNews, id))
}

func TestNewsService_Delete_Errors(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteNews(ctx, "", ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.DeleteNews(ctx, "event", "id-1"), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.DeleteNews(ctx, "", "missing"), ErrNewsNotFound)
}
