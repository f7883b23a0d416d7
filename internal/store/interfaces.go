package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/vitrine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore persists one content document of type T as a JSON file.
//
// Read never fails: a missing, unreadable, unparsable or malformed file is
// replaced on disk by the default document, which is then returned.
type DocumentStore[T any] interface {
	// Type returns the content type served by the store.
	Type() models.ContentType
	// Read returns the current document.
	Read(ctx context.Context) T
	// ReadWithETag returns the current document and its ETag, read under
	// the same lock.
	ReadWithETag(ctx context.Context) (T, string)
	// Write replaces the document and returns its new ETag.
	Write(ctx context.Context, doc T) (string, error)
	// Update applies fn to the current document and writes the result.
	// A non-empty ifMatch must equal the current ETag or
	// [ErrPreconditionFailed] is returned without calling fn. An error
	// returned by fn aborts the update and is returned unchanged.
	Update(ctx context.Context, ifMatch string, fn func(doc *T) error) (T, string, error)
	// ETag returns the strong validator of the current document.
	ETag(ctx context.Context) string
	Syncer
}

// Syncer is implemented by stores able to notice edits made to their
// backing file by another process.
type Syncer interface {
	// Sync reloads the backing file and reports whether the document
	// changed since the last read or write of this store.
	Sync(ctx context.Context) (bool, error)
}

// ChangeNotifier receives a [models.ContentChange] after every write.
// Publish must not block.
type ChangeNotifier interface {
	Publish(change models.ContentChange)
}

// ContactRepository stores the messages left through the contact form.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) error
	// ListContacts returns contacts matching filter, newest first.
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	// MarkContactRead moves a contact from new to read. It reports false
	// when the contact was not new, leaving it untouched.
	MarkContactRead(ctx context.Context, id string, at time.Time) (bool, error)
	// SaveContactReply stores the reply text and moves the contact to replied.
	SaveContactReply(ctx context.Context, id, reply string, at time.Time) error
	DeleteContact(ctx context.Context, id string) error
}

// FileStorage keeps uploaded files under the public directory.
type FileStorage interface {
	// Save copies at most limit bytes of r to folder/name and returns the
	// number of bytes written. [ErrFileTooLarge] is returned, and nothing
	// is kept, when r holds more than limit bytes.
	Save(ctx context.Context, folder, name string, r io.Reader, limit int64) (int64, error)
	// Root returns the directory the files are served from.
	Root() string
}
