package service

import (
	"context"
	"io"

	"github.com/MKhiriev/vitrine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ContactServiceWrapper

// PageService serves the free-form page documents (homepage, about...).
type PageService interface {
	// GetPage returns the document of t and its ETag.
	GetPage(ctx context.Context, t models.ContentType) (models.Document, string, error)
	// UpdatePage shallow-merges patch over the stored document of t. A
	// non-empty ifMatch must equal the current ETag.
	UpdatePage(ctx context.Context, t models.ContentType, ifMatch string, patch models.Document) (models.Document, string, error)
}

type PublicationService interface {
	ListPublications(ctx context.Context) (models.PublicationsDocument, string, error)
	CreatePublication(ctx context.Context, publication models.Publication) (models.Publication, error)
	UpdatePublication(ctx context.Context, patch models.Publication) (models.Publication, error)
	DeletePublication(ctx context.Context, id string) error
	// TrackDownload increments the download counter of a publication and
	// returns its new value.
	TrackDownload(ctx context.Context, id string) (int, error)
}

// NewsService manages news items and realisations. Both live in the same
// document and are told apart by [models.NewsKind].
type NewsService interface {
	ListNews(ctx context.Context) (models.NewsDocument, string, error)
	CreateNews(ctx context.Context, request models.NewsRequest) (any, error)
	UpdateNews(ctx context.Context, request models.NewsRequest) (any, error)
	// DeleteNews removes the record with the given id. An empty kind
	// searches both lists.
	DeleteNews(ctx context.Context, kind models.NewsKind, id string) error
}

type SectionVideoService interface {
	ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error)
	GetSectionVideo(ctx context.Context, section string) (models.SectionVideo, error)
	SaveSectionVideo(ctx context.Context, video models.SectionVideo) (models.SectionVideo, error)
	ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error)
	DeleteSectionVideo(ctx context.Context, section string) error
}

type ContactService interface {
	SubmitContact(ctx context.Context, contact models.Contact) (string, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	// OpenContact returns a contact, marking it read if it was new.
	OpenContact(ctx context.Context, id string) (models.Contact, error)
	ReplyToContact(ctx context.Context, id string, reply models.ContactReply) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UploadService interface {
	// Upload stores r under the public folder of kind and returns where it
	// is served from. fileName is the name sent by the client.
	Upload(ctx context.Context, kind models.UploadKind, fileName string, r io.Reader) (models.UploadedFile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// sanitizing or validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService // returns a decorated ContactService applying additional behavior
}
