package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
)

type Services struct {
	PageService         PageService
	PublicationService  PublicationService
	NewsService         NewsService
	SectionVideoService SectionVideoService
	ContactService      ContactService
	AuthService         AuthService
	UploadService       UploadService
	AppInfoService      AppInfoService
}

// NewServices wires the services over storages. Section videos are proxied
// to BACKEND_URL when the adapter is configured to, and contact replies are
// e-mailed when a mail region is set.
func NewServices(ctx context.Context, storages *store.Storages, notifier store.ChangeNotifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	mailer, err := adapter.NewSESMailer(ctx, cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating mailer: %w", err)
	}

	sectionVideoService := NewSectionVideoService(storages.SectionVideos, logger)
	if cfg.Adapter.SectionVideosProxy {
		backend := adapter.NewSectionVideoBackend(utils.NewHTTPClient(cfg.BackendURL, cfg.Adapter.RequestTimeout), logger)
		sectionVideoService = NewSectionVideoProxyService(backend, logger)
		logger.Info().Str("backend", cfg.BackendURL).Msg("section videos are proxied")
	}

	ids := utils.NewUUIDGenerator()
	return &Services{
		PageService:         NewPageService(storages.Pages, logger),
		PublicationService:  NewPublicationService(storages.Publications, ids, logger),
		NewsService:         NewNewsService(storages.News, ids, logger),
		SectionVideoService: sectionVideoService,
		ContactService:      NewContactValidationService().Wrap(NewContactService(storages.Contacts, mailer, notifier, ids, logger)),
		AuthService:         NewAuthService(cfg.App, logger),
		UploadService:       NewUploadService(storages.Uploads, cfg.Server.MaxUploadSize, logger),
		AppInfoService:      appInfoService,
	}, nil
}
