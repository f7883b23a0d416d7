package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vitrine/models"
)

const contactsTable = "contacts"

var contactColumns = []string{
	"id", "name", "email", "phone", "company", "subject", "message",
	"status", "reply", "created_at", "read_at", "replied_at",
}

func insertContactQuery(b sq.StatementBuilderType, c models.Contact) sq.InsertBuilder {
	return b.Insert(contactsTable).
		Columns(contactColumns[:10]...).
		Values(c.ID, c.Name, c.Email, c.Phone, c.Company, c.Subject, c.Message, string(c.Status), c.Reply, c.CreatedAt)
}

func selectContactsQuery(b sq.StatementBuilderType, filter models.ContactFilter) sq.SelectBuilder {
	query := b.Select(contactColumns...).From(contactsTable)
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	return query.OrderBy("created_at DESC", "id DESC")
}

func selectContactByIDQuery(b sq.StatementBuilderType, id string) sq.SelectBuilder {
	return b.Select(contactColumns...).From(contactsTable).Where(sq.Eq{"id": id})
}

// markContactReadQuery only touches contacts still in the new state, so
// concurrent views transition a contact exactly once.
func markContactReadQuery(b sq.StatementBuilderType, id string, at any) sq.UpdateBuilder {
	return b.Update(contactsTable).
		Set("status", string(models.ContactRead)).
		Set("read_at", at).
		Where(sq.Eq{"id": id, "status": string(models.ContactNew)})
}

// saveContactReplyQuery keeps the first read_at when the contact was
// answered straight from the list.
func saveContactReplyQuery(b sq.StatementBuilderType, id, reply string, at any) sq.UpdateBuilder {
	return b.Update(contactsTable).
		Set("status", string(models.ContactReplied)).
		Set("reply", reply).
		Set("replied_at", at).
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", at)).
		Where(sq.Eq{"id": id})
}

func deleteContactQuery(b sq.StatementBuilderType, id string) sq.DeleteBuilder {
	return b.Delete(contactsTable).Where(sq.Eq{"id": id})
}
