package http

import (
	"net/http"

	"github.com/MKhiriev/vitrine/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const eventsPath = "/api/events"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	router.NotFound(notFound)

	// long-lived or large requests, never cut by the request timeout
	router.Get(eventsPath, h.events)
	router.With(h.auth).Post("/api/admin/upload", h.upload)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(h.requestTimeout))

		// routes without authorization
		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/contact", h.submitContact)
		r.Post("/api/publications/{id}/download", h.trackDownload)

		r.Get("/api/admin/publications", h.listPublications)
		r.Get("/api/admin/news", h.listNews)
		r.Get("/api/admin/section-videos", h.listSectionVideos)
		r.Get("/api/admin/section-videos/{section}", h.getSectionVideo)
		r.Get("/api/admin/{type}", h.getPage)

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/auth/session", h.session)

			r.Post("/api/admin/{type}", h.updatePage)
			r.Put("/api/admin/{type}", h.updatePage)

			r.Post("/api/admin/publications", h.createPublication)
			r.Put("/api/admin/publications", h.updatePublication)
			r.Delete("/api/admin/publications", h.deletePublication)

			r.Post("/api/admin/news", h.createNews)
			r.Put("/api/admin/news", h.updateNews)
			r.Delete("/api/admin/news", h.deleteNews)

			r.Put("/api/admin/section-videos/{section}", h.saveSectionVideo)
			r.Post("/api/admin/section-videos/{section}/toggle", h.toggleSectionVideo)
			r.Delete("/api/admin/section-videos/{section}", h.deleteSectionVideo)

			r.Get("/api/admin/contacts", h.listContacts)
			r.Get("/api/admin/contacts/{id}", h.getContact)
			r.Post("/api/admin/contacts/{id}/reply", h.replyContact)
			r.Delete("/api/admin/contacts/{id}", h.deleteContact)
		})
	})

	// uploaded files
	files := h.staticFiles()
	for _, folder := range models.UploadFolders {
		router.Get("/"+folder+"/*", files)
		router.Head("/"+folder+"/*", files)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// staticFiles serves the public directory without directory listings.
func (h *Handler) staticFiles() http.HandlerFunc {
	fs := http.FileServer(http.Dir(h.publicDir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			notFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}
}
