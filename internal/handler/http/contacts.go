package http

import (
	"net/http"

	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if !decodeJSON(w, r, &contact) {
		return
	}

	id, err := h.services.ContactService.SubmitContact(r.Context(), contact)
	if err != nil {
		writeError(w, r, err, "error submitting contact message")
		return
	}

	utils.WriteJSON(w, models.ContactCreatedResponse{Success: true, ID: id}, http.StatusCreated)
}

// listContacts returns the inbox, optionally narrowed with ?status=.
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	filter := models.ContactFilter{Status: models.ContactStatus(r.URL.Query().Get("status"))}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "error listing contacts")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, models.ContactsResponse{Contacts: contacts}, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.ContactService.OpenContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error opening contact")
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) replyContact(w http.ResponseWriter, r *http.Request) {
	var reply models.ContactReply
	if !decodeJSON(w, r, &reply) {
		return
	}

	contact, err := h.services.ContactService.ReplyToContact(r.Context(), chi.URLParam(r, "id"), reply)
	if err != nil {
		writeError(w, r, err, "error replying to contact")
		return
	}

	utils.WriteJSON(w, models.ContactResponse{Success: true, Contact: contact}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting contact")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
