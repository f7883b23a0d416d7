package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// hasherPool keeps SHA-256 instances around; ETags are computed on every
// content read.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// CanonicalJSON marshals v the way documents are stored on disk: indented
// with two spaces, map keys sorted, trailing newline.
func CanonicalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling document: %w", err)
	}
	return append(data, '\n'), nil
}

// ETag returns the strong validator of v: the hex SHA-256 of its canonical
// JSON form.
func ETag(v any) (string, error) {
	data, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

// QuoteETag formats tag for the ETag response header.
func QuoteETag(tag string) string {
	return `"` + tag + `"`
}

// UnquoteETag strips the quotes and the weak prefix from a client supplied
// If-Match / If-None-Match value.
func UnquoteETag(header string) string {
	if len(header) > 2 && header[:2] == "W/" {
		header = header[2:]
	}
	if len(header) >= 2 && header[0] == '"' && header[len(header)-1] == '"' {
		header = header[1 : len(header)-1]
	}
	return header
}
