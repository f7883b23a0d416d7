package utils

import (
	"fmt"
	"maps"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/vitrine/models"
)

// timeTransformer copies a time.Time only when the source is set. mergo
// cannot walk time.Time's unexported fields on its own.
type timeTransformer struct{}

func (timeTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}

// MergePatch copies every non-zero field of patch over dst. Both must be
// the same struct type; dst must be a pointer. Zero fields of patch leave dst
// untouched, so a patch cannot clear a field.
func MergePatch[T any](dst *T, patch T) error {
	if err := mergo.Merge(dst, patch, mergo.WithOverride, mergo.WithTransformers(timeTransformer{})); err != nil {
		return fmt.Errorf("error merging patch: %w", err)
	}
	return nil
}

// ShallowMerge returns a copy of base with every top-level key of patch
// replacing the key of base. Nested objects and arrays are replaced
// wholesale, never merged.
func ShallowMerge(base, patch models.Document) models.Document {
	merged := make(models.Document, len(base)+len(patch))
	maps.Copy(merged, base)
	maps.Copy(merged, patch)
	return merged
}
