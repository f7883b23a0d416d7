package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/models"
)

// contactRepository is the SQL implementation of [ContactRepository] backed
// by the "contacts" table. Queries are rendered by squirrel with the
// placeholder format of the connected engine.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] over db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact inserts a new contact.
//
// Error handling:
//   - unique or primary key clash → [ErrContactAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	query, args, err := insertContactQuery(r.db.builder, contact).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error inserting contact")
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrContactAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectContactsQuery(r.db.builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error selecting contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) GetContact(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectContactByIDQuery(r.db.builder, id).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Msg("error selecting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

// MarkContactRead runs a conditional UPDATE restricted to new contacts: only
// the first view of a contact changes it. When nothing was updated the
// contact either is already read or does not exist; the latter is reported
// as [ErrContactNotFound].
func (r *contactRepository) MarkContactRead(ctx context.Context, id string, at time.Time) (bool, error) {
	query, args, err := markContactReadQuery(r.db.builder, id, at.UTC()).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*contactRepository.MarkContactRead", query, args)
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	if _, err := r.GetContact(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *contactRepository) SaveContactReply(ctx context.Context, id, reply string, at time.Time) error {
	query, args, err := saveContactReplyQuery(r.db.builder, id, reply, at.UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*contactRepository.SaveContactReply", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, id string) error {
	query, args, err := deleteContactQuery(r.db.builder, id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*contactRepository.DeleteContact", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// exec runs a statement with retries and returns the number of affected rows.
func (r *contactRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var (
		contact   models.Contact
		status    string
		readAt    sql.NullTime
		repliedAt sql.NullTime
	)
	err := row.Scan(
		&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Company,
		&contact.Subject, &contact.Message, &status, &contact.Reply, &contact.CreatedAt,
		&readAt, &repliedAt,
	)
	if err != nil {
		return models.Contact{}, err
	}

	contact.Status = models.ContactStatus(status)
	if readAt.Valid {
		t := readAt.Time
		contact.ReadAt = &t
	}
	if repliedAt.Valid {
		t := repliedAt.Time
		contact.RepliedAt = &t
	}
	return contact, nil
}
