package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublications_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.publications.EXPECT().ListPublications(gomock.Any()).Return(models.PublicationsDocument{
		Publications: []models.Publication{{ID: "p1", Title: "Guide", Date: "2026-01-02"}},
	}, "tag", nil)

	rec := serve(router, newRequest(http.MethodGet, "/api/admin/publications", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"tag"`, rec.Header().Get("ETag"))

	var doc models.PublicationsDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Publications, 1)
	assert.Equal(t, "Guide", doc.Publications[0].Title)
}

func TestPublications_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.expectAdmin()
	m.publications.EXPECT().
		CreatePublication(gomock.Any(), models.Publication{Title: "Guide", FileURL: "/documents/g.pdf"}).
		Return(models.Publication{ID: "p1", Title: "Guide", FileURL: "/documents/g.pdf", Date: "2026-03-14"}, nil)

	rec := serve(router, newAdminRequest(http.MethodPost, "/api/admin/publications", `{"title":"Guide","fileUrl":"/documents/g.pdf"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body models.PublicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "p1", body.Publication.ID)
}

func TestPublications_Create_ValidationMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.expectAdmin()
	m.publications.EXPECT().CreatePublication(gomock.Any(), gomock.Any()).
		Return(models.Publication{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTitleRequired))

	rec := serve(router, newAdminRequest(http.MethodPost, "/api/admin/publications", `{"fileUrl":"/documents/g.pdf"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgTitleRequired+`"}`, rec.Body.String())
}

func TestPublications_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.expectAdmin()
	m.publications.EXPECT().UpdatePublication(gomock.Any(), models.Publication{ID: "ghost", Title: "x"}).
		Return(models.Publication{}, service.ErrPublicationNotFound)

	rec := serve(router, newAdminRequest(http.MethodPut, "/api/admin/publications", `{"id":"ghost","title":"x"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgPublicationNotFound+`"}`, rec.Body.String())
}

func TestPublications_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.expectAdmin()
	m.publications.EXPECT().DeletePublication(gomock.Any(), "p1").Return(nil)

	rec := serve(router, newAdminRequest(http.MethodDelete, "/api/admin/publications?id=p1", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestPublications_TrackDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router, m := newTestHandler(t, ctrl)
	m.publications.EXPECT().TrackDownload(gomock.Any(), "p1").Return(8, nil)

	rec := serve(router, newRequest(http.MethodPost, "/api/publications/p1/download", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"downloadCount":8}`, rec.Body.String())
}
