// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of vitrine.
//
//   - [ServerAdapter] lets the terminal admin client talk to the vitrine HTTP
//     API ([NewHTTPServerAdapter]).
//   - [SectionVideoBackend] proxies section-video calls to the external video
//     service ([NewSectionVideoBackend]).
//   - [Mailer] sends contact replies by e-mail through Amazon SES
//     ([NewSESMailer]).
//
// HTTP status codes are mapped by mapHTTPError to the sentinel values of
// errors.go so that callers can use [errors.Is] (e.g. [ErrPreconditionFailed]
// for 412, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/vitrine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the admin client's view of the vitrine API. The session
// token obtained by Login is attached to every later call.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated calls.
	SetToken(token string)
	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Login exchanges the admin credentials for a session token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	// Logout ends the server session and forgets the stored token.
	Logout(ctx context.Context) error
	Session(ctx context.Context) (models.SessionResponse, error)
	GetVersion(ctx context.Context) (string, error)

	// GetPage returns a page document and its ETag.
	GetPage(ctx context.Context, t models.ContentType) (models.Document, string, error)
	// SavePage replaces a page document. A non-empty ifMatch makes the save
	// fail with [ErrPreconditionFailed] when the page changed meanwhile.
	SavePage(ctx context.Context, t models.ContentType, doc models.Document, ifMatch string) (models.Document, string, error)

	ListPublications(ctx context.Context) ([]models.Publication, error)
	DeletePublication(ctx context.Context, id string) error

	ListNews(ctx context.Context) (models.NewsDocument, error)
	DeleteNews(ctx context.Context, kind models.NewsKind, id string) error

	ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error)
	ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error)
	DeleteSectionVideo(ctx context.Context, section string) error

	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	// GetContact opens a contact; the server marks it read.
	GetContact(ctx context.Context, id string) (models.Contact, error)
	ReplyContact(ctx context.Context, id, message string) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// SectionVideoBackend is the external service owning section videos when
// the proxy mode is enabled.
type SectionVideoBackend interface {
	ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error)
	GetSectionVideo(ctx context.Context, section string) (models.SectionVideo, error)
	SaveSectionVideo(ctx context.Context, video models.SectionVideo) (models.SectionVideo, error)
	ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error)
	DeleteSectionVideo(ctx context.Context, section string) error
}

// Mailer sends plain-text e-mails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
