package store

import "errors"

// Sentinel errors returned by the content stores and the contacts
// repository. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreconditionFailed is returned by an update carrying an If-Match
	// value that no longer matches the stored document.
	ErrPreconditionFailed = errors.New("document was modified since it was read")

	// ErrWritingDocument is returned when a document cannot be persisted
	// (directory not writable, disk full...).
	ErrWritingDocument = errors.New("error writing document")

	// ErrUnknownContentType is returned when no store is registered for a
	// content type.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrContactNotFound is returned when a contact id matches no row.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactAlreadyExists is returned when a contact id is reused.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrFileTooLarge is returned when an upload exceeds its size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrSavingFile is returned when an uploaded file cannot be written.
	ErrSavingFile = errors.New("error saving file")
)

// Low-level database operation errors. These wrap driver errors so that
// callers can tell a query failure from a missing row.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan contact row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan contact rows")
)
