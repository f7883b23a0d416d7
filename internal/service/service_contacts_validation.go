package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/microcosm-cc/bluemonday"
)

// ContactValidationService strips markup from visitor input and validates it
// before it reaches the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
	policy    *bluemonday.Policy
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContentValidator(),
		policy:    bluemonday.StrictPolicy(),
	}
}

func (v *ContactValidationService) SubmitContact(ctx context.Context, contact models.Contact) (string, error) {
	contact.Name = v.sanitize(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = v.sanitize(contact.Phone)
	contact.Company = v.sanitize(contact.Company)
	contact.Subject = v.sanitize(contact.Subject)
	contact.Message = v.sanitize(contact.Message)

	if err := v.validator.Validate(ctx, contact); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SubmitContact(ctx, contact)
}

func (v *ContactValidationService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return v.inner.ListContacts(ctx, filter)
}

func (v *ContactValidationService) OpenContact(ctx context.Context, id string) (models.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}
	return v.inner.OpenContact(ctx, id)
}

func (v *ContactValidationService) ReplyToContact(ctx context.Context, id string, reply models.ContactReply) (models.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}

	reply.Message = strings.TrimSpace(reply.Message)
	if err := v.validator.Validate(ctx, reply); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReplyToContact(ctx, id, reply)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrIDRequired)
	}
	return v.inner.DeleteContact(ctx, id)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}

// sanitize drops every HTML tag. The policy escapes what it keeps, so
// entities are decoded back; the value is stored as text, not HTML.
func (v *ContactValidationService) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(v.policy.Sanitize(s)))
}
