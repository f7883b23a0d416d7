package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/models"
)

// defaultReplySubject is used when the visitor left no subject.
const defaultReplySubject = "Votre message"

type contactService struct {
	repository store.ContactRepository
	// mailer is nil when no mail transport is configured; replies are
	// then only stored.
	mailer   adapter.Mailer
	notifier store.ChangeNotifier
	ids      IDGenerator
	now      func() time.Time

	logger *logger.Logger
}

func NewContactService(repository store.ContactRepository, mailer adapter.Mailer, notifier store.ChangeNotifier, ids IDGenerator, logger *logger.Logger) ContactService {
	return &contactService{
		repository: repository,
		mailer:     mailer,
		notifier:   notifier,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// SubmitContact stores a new message with status new and returns its id.
func (s *contactService) SubmitContact(ctx context.Context, contact models.Contact) (string, error) {
	log := logger.FromContext(ctx)

	contact.ID = s.ids.Generate()
	contact.Status = models.ContactNew
	contact.CreatedAt = s.now().UTC()
	contact.Reply, contact.ReadAt, contact.RepliedAt = "", nil, nil

	if err := s.repository.CreateContact(ctx, contact); err != nil {
		log.Err(err).Msg("error saving contact")
		return "", fmt.Errorf("error saving contact: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Publish(models.ContentChange{Type: models.Contacts, ETag: contact.ID, At: contact.CreatedAt})
	}

	log.Info().Str("id", contact.ID).Msg("contact received")
	return contact.ID, nil
}

func (s *contactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, filter.Status)
	}

	contacts, err := s.repository.ListContacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return contacts, nil
}

// OpenContact moves a new contact to read before returning it. The
// transition is conditional in the repository, so concurrent views set
// readAt only once.
func (s *contactService) OpenContact(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	changed, err := s.repository.MarkContactRead(ctx, id, s.now().UTC())
	if err != nil {
		return models.Contact{}, err
	}
	if changed {
		log.Info().Str("id", id).Msg("contact marked read")
	}

	return s.repository.GetContact(ctx, id)
}

// ReplyToContact e-mails the reply to the visitor, then stores it. A
// failed send leaves the contact untouched.
func (s *contactService) ReplyToContact(ctx context.Context, id string, reply models.ContactReply) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := s.repository.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	if s.mailer != nil {
		subject := contact.Subject
		if subject == "" {
			subject = defaultReplySubject
		}
		if err = s.mailer.Send(ctx, contact.Email, "Re: "+subject, reply.Message); err != nil {
			log.Err(err).Str("id", id).Msg("reply was not sent")
			return models.Contact{}, err
		}
	}

	if err = s.repository.SaveContactReply(ctx, id, reply.Message, s.now().UTC()); err != nil {
		log.Err(err).Str("id", id).Msg("error saving reply")
		return models.Contact{}, err
	}

	log.Info().Str("id", id).Bool("mailed", s.mailer != nil).Msg("contact replied")
	return s.repository.GetContact(ctx, id)
}

func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	if err := s.repository.DeleteContact(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("contact deletion failed")
		return err
	}
	return nil
}
