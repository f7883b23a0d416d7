package models

import "time"

// ContentChange is published every time a content document is replaced,
// either by an admin call or by an edit made to the file on disk.
type ContentChange struct {
	Type ContentType `json:"type"`
	ETag string      `json:"etag"`
	At   time.Time   `json:"at"`
}
