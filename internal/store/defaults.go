package store

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/vitrine/models"
)

//go:embed defaults/*.json
var embeddedDefaults embed.FS

// Shape lists the top-level keys a stored document must carry. Keys in
// Arrays must additionally hold a JSON array; an empty array is valid.
type Shape struct {
	Required []string
	Arrays   []string
}

var shapes = map[models.ContentType]Shape{
	models.Homepage:      {Required: []string{"hero", "sections"}},
	models.About:         {Required: []string{"title", "description", "values"}},
	models.Values:        {Required: []string{"title", "values"}},
	models.Expertise:     {Required: []string{"title", "domains"}},
	models.KitEntreprise: {Required: []string{"title", "categories"}},
	models.Settings:      {Required: []string{"siteName", "contactEmail"}},
	models.Publications:  {Arrays: []string{"publications"}},
	models.News:          {Arrays: []string{"news", "realisations"}},
	models.SectionVideos: {Arrays: []string{"videos"}},
}

// DefaultProvider serves the fallback document of every content type. The
// documents are compiled into the binary.
type DefaultProvider struct {
	raw map[models.ContentType][]byte
}

// NewDefaultProvider loads the embedded defaults. It fails only when a
// default is missing or does not satisfy its own shape.
func NewDefaultProvider() (*DefaultProvider, error) {
	p := &DefaultProvider{raw: make(map[models.ContentType][]byte, len(models.FileBackedTypes))}
	for _, t := range models.FileBackedTypes {
		data, err := embeddedDefaults.ReadFile("defaults/" + t.FileName())
		if err != nil {
			return nil, fmt.Errorf("missing default for %s: %w", t, err)
		}
		if !p.Shape(t).Check(data) {
			return nil, fmt.Errorf("default for %s does not match its shape", t)
		}
		p.raw[t] = data
	}
	return p, nil
}

// Raw returns the default document of t as JSON.
func (p *DefaultProvider) Raw(t models.ContentType) []byte {
	return bytes.Clone(p.raw[t])
}

// Shape returns the shape check of t.
func (p *DefaultProvider) Shape(t models.ContentType) Shape {
	return ShapeOf(t)
}

// ShapeOf returns the shape every stored document of t must keep.
func ShapeOf(t models.ContentType) Shape {
	return shapes[t]
}

// Check reports whether data is a JSON object carrying every required key
// with a non-null value and an array under every array key.
func (s Shape) Check(data []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return false
	}

	for _, key := range s.Required {
		v, ok := fields[key]
		if !ok || string(bytes.TrimSpace(v)) == "null" {
			return false
		}
	}
	for _, key := range s.Arrays {
		v, ok := fields[key]
		if !ok {
			return false
		}
		v = bytes.TrimSpace(v)
		if len(v) == 0 || v[0] != '[' {
			return false
		}
	}
	return true
}

// defaultOf returns a constructor decoding a fresh copy of t's default on
// every call, so callers never share the canonical value.
func defaultOf[T any](p *DefaultProvider, t models.ContentType) func() T {
	return func() T {
		var doc T
		// defaults are validated at start-up
		_ = json.Unmarshal(p.raw[t], &doc)
		return doc
	}
}
