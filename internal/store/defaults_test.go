// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultProvider_EveryTypeHasDefault(t *testing.T) {
	p, err := NewDefaultProvider()
	require.NoError(t, err)

	for _, ct := range models.FileBackedTypes {
		t.Run(string(ct), func(t *testing.T) {
			raw := p.Raw(ct)
			require.NotEmpty(t, raw)
			assert.True(t, json.Valid(raw))
			assert.True(t, p.Shape(ct).Check(raw))
		})
	}
}

func TestDefaultProvider_RawIsACopy(t *testing.T) {
	p, err := NewDefaultProvider()
	require.NoError(t, err)

	raw := p.Raw(models.Homepage)
	raw[0] = 'X'

	assert.True(t, json.Valid(p.Raw(models.Homepage)))
}

func TestDefaultOf_ReturnsFreshDocuments(t *testing.T) {
	p, err := NewDefaultProvider()
	require.NoError(t, err)

	newDefault := defaultOf[models.Document](p, models.Settings)
	first := newDefault()
	first["siteName"] = "modifié"

	assert.NotEqual(t, "modifié", newDefault()["siteName"])
}

func TestShape_Check(t *testing.T) {
	shape := Shape{Required: []string{"title"}, Arrays: []string{"items"}}

	tests := []struct {
		name string
		data string
		want bool
	}{
		{name: "valid", data: `{"title": "t", "items": [1]}`, want: true},
		{name: "empty array", data: `{"title": "t", "items": []}`, want: true},
		{name: "missing array", data: `{"title": "t"}`, want: false},
		{name: "array is object", data: `{"title": "t", "items": {}}`, want: false},
		{name: "array is null", data: `{"title": "t", "items": null}`, want: false},
		{name: "missing required", data: `{"items": []}`, want: false},
		{name: "null document", data: `null`, want: false},
		{name: "garbage", data: `<html>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape.Check([]byte(tt.data)))
		})
	}
}
