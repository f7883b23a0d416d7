package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &contactRepository{
		db: &DB{
			DB:                 db,
			driver:             DriverSQLite,
			builder:            question,
			errorClassificator: NewSQLiteErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock
}

var contactRowColumns = []string{
	"id", "name", "email", "phone", "company", "subject", "message",
	"status", "reply", "created_at", "read_at", "replied_at",
}

// ── CreateContact ──

func TestCreateContact_Success(t *testing.T) {
	repo, mock := newTestContactRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs("c-1", "Awa", "awa@example.com", "", "", "", "Bonjour", "new", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateContact(context.Background(), models.Contact{
		ID: "c-1", Name: "Awa", Email: "awa@example.com", Message: "Bonjour",
		Status: models.ContactNew, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_DuplicateID(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("INSERT INTO contacts").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})

	err := repo.CreateContact(context.Background(), models.Contact{ID: "c-1"})
	assert.ErrorIs(t, err, ErrContactAlreadyExists)
}

func TestCreateContact_RetriesBusyDatabase(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("INSERT INTO contacts").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateContact(context.Background(), models.Contact{ID: "c-1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_DriverError(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("INSERT INTO contacts").WillReturnError(errors.New("disk I/O error"))

	err := repo.CreateContact(context.Background(), models.Contact{ID: "c-1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── ListContacts ──

func TestListContacts_NewestFirstWithFilter(t *testing.T) {
	repo, mock := newTestContactRepo(t)
	now := time.Now().UTC()
	readAt := now.Add(time.Minute)

	rows := sqlmock.NewRows(contactRowColumns).
		AddRow("c-2", "Moussa", "m@example.com", "", "", "", "Devis", "read", "", now, readAt, nil).
		AddRow("c-1", "Awa", "a@example.com", "0102", "Acme", "Audit", "Bonjour", "read", "", now.Add(-time.Hour), readAt, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE status = ? ORDER BY created_at DESC")).
		WithArgs("read").
		WillReturnRows(rows)

	contacts, err := repo.ListContacts(context.Background(), models.ContactFilter{Status: models.ContactRead})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "c-2", contacts[0].ID)
	assert.Equal(t, models.ContactRead, contacts[0].Status)
	require.NotNil(t, contacts[0].ReadAt)
	assert.True(t, readAt.Equal(*contacts[0].ReadAt))
	assert.Nil(t, contacts[0].RepliedAt)
	assert.Equal(t, "Acme", contacts[1].Company)
}

func TestListContacts_Empty(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("FROM contacts").WillReturnRows(sqlmock.NewRows(contactRowColumns))

	contacts, err := repo.ListContacts(context.Background(), models.ContactFilter{})
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestListContacts_QueryError(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("FROM contacts").WillReturnError(errors.New("boom"))

	_, err := repo.ListContacts(context.Background(), models.ContactFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── GetContact ──

func TestGetContact_NotFound(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("FROM contacts WHERE id").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetContact(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

// ── status transitions ──

func TestMarkContactRead_FirstView(t *testing.T) {
	repo, mock := newTestContactRepo(t)
	at := time.Now()

	mock.ExpectExec("UPDATE contacts SET status").
		WithArgs("read", at.UTC(), "c-1", "new").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.MarkContactRead(context.Background(), "c-1", at)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestMarkContactRead_AlreadyRead(t *testing.T) {
	repo, mock := newTestContactRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE contacts SET status").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM contacts WHERE id").WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(contactRowColumns).
			AddRow("c-1", "Awa", "a@example.com", "", "", "", "Bonjour", "read", "", now, now, nil))

	changed, err := repo.MarkContactRead(context.Background(), "c-1", now)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMarkContactRead_Unknown(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("UPDATE contacts SET status").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM contacts WHERE id").WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkContactRead(context.Background(), "missing", time.Now())
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestSaveContactReply(t *testing.T) {
	repo, mock := newTestContactRepo(t)
	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("COALESCE(read_at, ?)")).
		WithArgs("replied", "Merci", at, at, "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE contacts").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SaveContactReply(context.Background(), "c-1", "Merci", at))
	assert.ErrorIs(t, repo.SaveContactReply(context.Background(), "missing", "Merci", at), ErrContactNotFound)
}

// ── DeleteContact ──

func TestDeleteContact(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = ?")).WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM contacts").WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteContact(context.Background(), "c-1"))
	assert.ErrorIs(t, repo.DeleteContact(context.Background(), "c-1"), ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── error classifiers ──

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.True(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.False(t, c.IsUniqueViolation(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost:5432/vitrine"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/vitrine"))
	assert.False(t, IsPostgresDSN("data/contacts.db"))
}
