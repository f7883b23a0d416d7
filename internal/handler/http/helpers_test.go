package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/mock"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

const (
	validToken = "valid-token"
	adminEmail = "admin@cabinet.fr"
)

type serviceMocks struct {
	pages         *mock.MockPageService
	publications  *mock.MockPublicationService
	news          *mock.MockNewsService
	sectionVideos *mock.MockSectionVideoService
	contacts      *mock.MockContactService
	auth          *mock.MockAuthService
	uploads       *mock.MockUploadService
	appInfo       *mock.MockAppInfoService
}

// fakeChanges is a single-subscriber ChangeSubscriber.
type fakeChanges struct {
	ch           chan models.ContentChange
	unsubscribed chan struct{}
	once         sync.Once
}

func newFakeChanges() *fakeChanges {
	return &fakeChanges{
		ch:           make(chan models.ContentChange, 4),
		unsubscribed: make(chan struct{}),
	}
}

func (f *fakeChanges) Subscribe() (<-chan models.ContentChange, func()) {
	return f.ch, func() { f.once.Do(func() { close(f.unsubscribed) }) }
}

// newTestHandler builds a Handler over gomock services and returns its
// router.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *chi.Mux, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		pages:         mock.NewMockPageService(ctrl),
		publications:  mock.NewMockPublicationService(ctrl),
		news:          mock.NewMockNewsService(ctrl),
		sectionVideos: mock.NewMockSectionVideoService(ctrl),
		contacts:      mock.NewMockContactService(ctrl),
		auth:          mock.NewMockAuthService(ctrl),
		uploads:       mock.NewMockUploadService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		PageService:         m.pages,
		PublicationService:  m.publications,
		NewsService:         m.news,
		SectionVideoService: m.sectionVideos,
		ContactService:      m.contacts,
		AuthService:         m.auth,
		UploadService:       m.uploads,
		AppInfoService:      m.appInfo,
	}

	cfg := &config.StructuredConfig{
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			MaxUploadSize:  1 << 10,
		},
		Storage: config.Storage{
			Files: config.Files{PublicDir: t.TempDir()},
		},
	}

	h := NewHandler(services, newFakeChanges(), cfg, logger.Nop())
	return h, h.Init(), m
}

// expectAdmin makes validToken a valid admin session.
func (m serviceMocks) expectAdmin() {
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).
		Return(models.Token{Email: adminEmail}, nil).AnyTimes()
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func newAdminRequest(method, target, body string) *http.Request {
	req := newRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
