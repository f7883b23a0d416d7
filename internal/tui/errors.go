// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vitrine/internal/adapter"
)

// humanizeError turns adapter failures into messages for the editor. The
// server's own French message, when present, follows the sentinel.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Réseau absent ou serveur injoignable"
	}

	if _, detail, ok := strings.Cut(err.Error(), ": "); ok && strings.TrimSpace(detail) != "" {
		return detail
	}

	switch {
	case errors.Is(err, adapter.ErrPreconditionFailed):
		return "Le contenu a été modifié entre-temps"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expirée, veuillez vous reconnecter"
	}
	return err.Error()
}
