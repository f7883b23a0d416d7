package models

import "time"

// ContactStatus is the triage state of a contact message.
type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

// Valid reports whether s is a known status.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied:
		return true
	}
	return false
}

// Contact is a message left by a visitor through the public contact form.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Company   string        `json:"company,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Reply     string        `json:"reply,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	ReadAt    *time.Time    `json:"readAt,omitempty"`
	RepliedAt *time.Time    `json:"repliedAt,omitempty"`
}

// ContactReply is the body of POST /api/admin/contacts/{id}/reply.
type ContactReply struct {
	Message string `json:"message"`
}

// ContactFilter narrows the inbox listing. Zero value lists everything.
type ContactFilter struct {
	Status ContactStatus
}

// ContactCreatedResponse is returned to the visitor after submission.
type ContactCreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ContactsResponse is the admin inbox listing.
type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

// ContactResponse wraps a single contact after a status change.
type ContactResponse struct {
	Success bool    `json:"success"`
	Contact Contact `json:"contact"`
}
