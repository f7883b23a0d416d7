// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContentType names one editable content document of the site. Every
// file-backed type owns exactly one JSON file under the data directory.
type ContentType string

const (
	Homepage      ContentType = "homepage"
	About         ContentType = "about"
	Values        ContentType = "values"
	Expertise     ContentType = "expertise"
	KitEntreprise ContentType = "kit-entreprise"
	Settings      ContentType = "settings"
	Publications  ContentType = "publications"
	News          ContentType = "news"
	SectionVideos ContentType = "section-videos"

	// Contacts is not file-backed; it is only used to tag change events
	// emitted when a visitor submits the contact form.
	Contacts ContentType = "contacts"
)

// PageTypes lists the free-form page documents. They share one handler and
// are updated by shallow merge.
var PageTypes = []ContentType{
	Homepage,
	About,
	Values,
	Expertise,
	KitEntreprise,
	Settings,
}

// FileBackedTypes lists every content type persisted as a JSON file.
var FileBackedTypes = append(append([]ContentType{}, PageTypes...), Publications, News, SectionVideos)

// IsPage reports whether t is one of [PageTypes].
func (t ContentType) IsPage() bool {
	for _, p := range PageTypes {
		if p == t {
			return true
		}
	}
	return false
}

// FileName returns the name of the JSON file backing t.
func (t ContentType) FileName() string {
	return string(t) + ".json"
}

// ParsePageType converts a URL segment to a page [ContentType].
func ParsePageType(s string) (ContentType, bool) {
	t := ContentType(s)
	return t, t.IsPage()
}

// Document is a schema-less page document (about, homepage, kit-entreprise...).
// Nested items carry their own string "id" chosen by the editor.
type Document map[string]any
