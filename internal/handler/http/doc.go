// Package http implements the HTTP transport layer of vitrine.
//
// It exposes the public content API read by the marketing site, the admin
// API used by the editor, the contact form endpoint, the server-sent events
// stream and the statically served uploads. Cross-cutting concerns such as
// session checks, request tracing, access logging, compression and request
// timeouts are handled here before requests reach the service layer.
//
// Every failed call answers {"error": "<message>"}; the status code and the
// French message are derived from the sentinel error returned by the
// service layer (see errors_mapper.go).
package http
