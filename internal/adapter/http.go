package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerAddress and bounds every request by
// cfg.RequestTimeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.AdminConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid admin server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The token is read from the
// Authorization response header, falling back to the body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		if result.Token == "" {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		token = result.Token
	}

	h.SetToken(token)
	result.Token = token
	return result, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	h.SetToken("")
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionResponse, error) {
	var session models.SessionResponse
	resp, err := h.authedRequest(ctx).SetResult(&session).Get("/api/auth/session")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}
	return session, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// GetPage implements [ServerAdapter].
func (h *httpServerAdapter) GetPage(ctx context.Context, t models.ContentType) (models.Document, string, error) {
	var doc models.Document
	resp, err := h.client.R().SetContext(ctx).SetResult(&doc).Get(pagePath(t))
	if err != nil {
		return nil, "", fmt.Errorf("get page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}
	return doc, utils.UnquoteETag(resp.Header().Get("ETag")), nil
}

// SavePage implements [ServerAdapter]. The server merges top-level keys, so
// sending the whole document replaces it.
func (h *httpServerAdapter) SavePage(ctx context.Context, t models.ContentType, doc models.Document, ifMatch string) (models.Document, string, error) {
	var saved models.Document

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		SetResult(&saved)
	if ifMatch != "" {
		req.SetHeader("If-Match", utils.QuoteETag(ifMatch))
	}

	resp, err := req.Put(pagePath(t))
	if err != nil {
		return nil, "", fmt.Errorf("save page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}
	return saved, utils.UnquoteETag(resp.Header().Get("ETag")), nil
}

func (h *httpServerAdapter) ListPublications(ctx context.Context) ([]models.Publication, error) {
	var doc models.PublicationsDocument
	if err := h.getJSON(ctx, "/api/admin/publications", &doc); err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return doc.Publications, nil
}

func (h *httpServerAdapter) DeletePublication(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).SetQueryParam("id", id).Delete("/api/admin/publications")
	if err != nil {
		return fmt.Errorf("delete publication request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListNews(ctx context.Context) (models.NewsDocument, error) {
	var doc models.NewsDocument
	if err := h.getJSON(ctx, "/api/admin/news", &doc); err != nil {
		return models.NewsDocument{}, fmt.Errorf("list news: %w", err)
	}
	return doc, nil
}

func (h *httpServerAdapter) DeleteNews(ctx context.Context, kind models.NewsKind, id string) error {
	req := h.authedRequest(ctx).SetQueryParam("id", id)
	if kind != "" {
		req.SetQueryParam("type", string(kind))
	}
	resp, err := req.Delete("/api/admin/news")
	if err != nil {
		return fmt.Errorf("delete news request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListSectionVideos(ctx context.Context) ([]models.SectionVideo, error) {
	var doc models.SectionVideosDocument
	if err := h.getJSON(ctx, "/api/admin/section-videos", &doc); err != nil {
		return nil, fmt.Errorf("list section videos: %w", err)
	}
	return doc.Videos, nil
}

func (h *httpServerAdapter) ToggleSectionVideo(ctx context.Context, section string) (models.SectionVideo, error) {
	var result models.SectionVideoResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("section", section).
		SetResult(&result).
		Post("/api/admin/section-videos/{section}/toggle")
	if err != nil {
		return models.SectionVideo{}, fmt.Errorf("toggle section video request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SectionVideo{}, err
	}
	return result.Video, nil
}

func (h *httpServerAdapter) DeleteSectionVideo(ctx context.Context, section string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("section", section).
		Delete("/api/admin/section-videos/{section}")
	if err != nil {
		return fmt.Errorf("delete section video request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	var result models.ContactsResponse

	req := h.authedRequest(ctx).SetResult(&result)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	resp, err := req.Get("/api/admin/contacts")
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return result.Contacts, nil
}

func (h *httpServerAdapter) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var contact models.Contact
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&contact).
		Get("/api/admin/contacts/{id}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (h *httpServerAdapter) ReplyContact(ctx context.Context, id, message string) (models.Contact, error) {
	var result models.ContactResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ContactReply{Message: message}).
		SetResult(&result).
		Post("/api/admin/contacts/{id}/reply")
	if err != nil {
		return models.Contact{}, fmt.Errorf("reply contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}
	return result.Contact, nil
}

func (h *httpServerAdapter) DeleteContact(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/admin/contacts/{id}")
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).SetResult(result).Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func pagePath(t models.ContentType) string {
	return "/api/admin/" + url.PathEscape(string(t))
}
