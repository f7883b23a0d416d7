package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/vitrine/internal/utils"
)

// writeWithETag answers body with its ETag, or 304 without a body when the
// client's If-None-Match already names it.
func writeWithETag(w http.ResponseWriter, r *http.Request, body any, etag string) {
	w.Header().Set("ETag", utils.QuoteETag(etag))
	w.Header().Set("Cache-Control", "no-cache")

	if etagListMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	utils.WriteJSON(w, body, http.StatusOK)
}

// writeHashed is writeWithETag for bodies that do not come with a stored
// ETag, such as section videos served by the proxy backend. The tag is the
// hash of the body itself; for a locally stored list it equals the store's.
func writeHashed(w http.ResponseWriter, r *http.Request, body any) {
	etag, err := utils.ETag(body)
	if err != nil {
		writeError(w, r, err, "error hashing response")
		return
	}
	writeWithETag(w, r, body, etag)
}

// etagListMatches reports whether an If-None-Match value names etag.
func etagListMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || utils.UnquoteETag(candidate) == etag {
			return true
		}
	}
	return false
}

// ifMatch returns the ETag an update is conditioned on. An absent header
// or "*" imposes no condition.
func ifMatch(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("If-Match"))
	if header == "*" {
		return ""
	}
	return utils.UnquoteETag(header)
}
