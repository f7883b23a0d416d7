package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// inboxFilters is the cycle walked by the filter key. The empty status lists
// every message.
var inboxFilters = []models.ContactStatus{"", models.ContactNew, models.ContactRead, models.ContactReplied}

var statusLabels = map[models.ContactStatus]string{
	"":                    "tous",
	models.ContactNew:     "nouveau",
	models.ContactRead:    "lu",
	models.ContactReplied: "répondu",
}

type inboxModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	contacts   []models.Contact
	idx        int
	filter     int
	selected   *models.Contact
	replying   bool
	reply      textarea.Model
	confirming bool
	loading    bool
	busy       bool
	status     string
	errMsg     string
}

func newInboxModel(ctx context.Context, api adapter.ServerAdapter) inboxModel {
	reply := textarea.New()
	reply.Placeholder = "Votre réponse..."
	reply.CharLimit = 0
	reply.SetWidth(80)
	reply.SetHeight(8)

	return inboxModel{
		ctx:     ctx,
		api:     api,
		reply:   reply,
		loading: true,
	}
}

func (m inboxModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m inboxModel) Update(msg tea.Msg) (inboxModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.contacts = msg.contacts
		m.clampIndex()
		return m, nil
	case contactOpenedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.replace(msg.contact)
		opened := msg.contact
		m.selected = &opened
		return m, nil
	case contactRepliedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Réponse non envoyée : " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Réponse envoyée à " + msg.contact.Email
		m.replying = false
		m.reply.Reset()
		m.reply.Blur()
		m.replace(msg.contact)
		replied := msg.contact
		m.selected = &replied
		return m, nil
	case contactDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Erreur de suppression : " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Message supprimé"
		m.remove(msg.id)
		if m.selected != nil && m.selected.ID == msg.id {
			m.selected = nil
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.replying {
			var cmd tea.Cmd
			m.reply, cmd = m.reply.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirming = false
			c, ok := m.target()
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, m.cmdDelete(c.ID)
		case key.Matches(keyMsg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	if m.replying {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.replying = false
			m.reply.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			text := strings.TrimSpace(m.reply.Value())
			if text == "" {
				m.errMsg = "La réponse est vide"
				return m, nil
			}
			if m.selected == nil || m.busy {
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, m.cmdReply(m.selected.ID, text)
		}
		var cmd tea.Cmd
		m.reply, cmd = m.reply.Update(msg)
		return m, cmd
	}

	if m.selected != nil {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.selected = nil
			m.status = ""
		case key.Matches(keyMsg, keys.reply):
			m.replying = true
			m.status = ""
			return m, m.reply.Focus()
		case key.Matches(keyMsg, keys.delete):
			m.confirming = true
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return navigateMsg{to: screenMenu} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.contacts)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.filter):
		m.filter = (m.filter + 1) % len(inboxFilters)
		m.idx = 0
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.enter):
		c, ok := m.target()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdOpen(c.ID)
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.target(); ok {
			m.confirming = true
		}
	}

	return m, nil
}

func (m inboxModel) View() string {
	var b strings.Builder

	if m.selected != nil {
		c := m.selected
		b.WriteString("De      : " + c.Name + " <" + c.Email + ">\n")
		b.WriteString("Tél.    : " + valueOrDash(c.Phone) + "\n")
		b.WriteString("Société : " + valueOrDash(c.Company) + "\n")
		b.WriteString("Objet   : " + valueOrDash(c.Subject) + "\n")
		b.WriteString("Reçu le : " + c.CreatedAt.Local().Format("02/01/2006 15:04") + "\n")
		b.WriteString("Statut  : " + statusLabels[c.Status] + "\n\n")
		b.WriteString(c.Message)
		b.WriteString("\n")
		if c.Reply != "" {
			b.WriteString("\nRéponse :\n")
			b.WriteString(c.Reply)
			b.WriteString("\n")
		}
		if m.replying {
			b.WriteString("\n")
			b.WriteString(m.reply.View())
			b.WriteString("\n")
		}
	} else {
		b.WriteString("Filtre : " + statusLabels[inboxFilters[m.filter]] + "\n\n")
		switch {
		case m.loading:
			b.WriteString("Chargement...\n")
		case len(m.contacts) == 0:
			b.WriteString("Aucun message\n")
		default:
			for i, c := range m.contacts {
				line := fmt.Sprintf("%s %-9s │ %-24s │ %s", cursor(i == m.idx), statusLabels[c.Status], fitText(c.Name, 24), fitText(valueOrDash(c.Subject), 40))
				if i == m.idx {
					line = selectedStyle.Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	if m.busy {
		b.WriteString("\nEnvoi...\n")
	}
	renderFeedback(&b, m.status, m.errMsg)

	if m.confirming {
		if c, ok := m.target(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: "message de " + c.Name}.View())
		}
	}

	var hotKeys string
	switch {
	case m.replying:
		hotKeys = "ctrl+s : envoyer │ esc : annuler"
	case m.selected != nil:
		hotKeys = "a : répondre │ d : supprimer │ esc : retour"
	default:
		hotKeys = "enter : lire │ f : filtrer │ d : supprimer │ r : actualiser │ esc : retour"
	}
	return renderPage("MESSAGES DE CONTACT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// target is the open message, or the highlighted one in the list.
func (m inboxModel) target() (models.Contact, bool) {
	if m.selected != nil {
		return *m.selected, true
	}
	if m.idx < 0 || m.idx >= len(m.contacts) {
		return models.Contact{}, false
	}
	return m.contacts[m.idx], true
}

func (m *inboxModel) replace(c models.Contact) {
	for i := range m.contacts {
		if m.contacts[i].ID == c.ID {
			m.contacts[i] = c
			return
		}
	}
}

func (m *inboxModel) remove(id string) {
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			break
		}
	}
	m.clampIndex()
}

func (m *inboxModel) clampIndex() {
	if m.idx >= len(m.contacts) {
		m.idx = len(m.contacts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m inboxModel) cmdLoad() tea.Cmd {
	ctx, api := m.ctx, m.api
	filter := models.ContactFilter{Status: inboxFilters[m.filter]}
	return func() tea.Msg {
		contacts, err := api.ListContacts(ctx, filter)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

func (m inboxModel) cmdOpen(id string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		contact, err := api.GetContact(ctx, id)
		return contactOpenedMsg{contact: contact, err: err}
	}
}

func (m inboxModel) cmdReply(id, message string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		contact, err := api.ReplyContact(ctx, id, message)
		return contactRepliedMsg{contact: contact, err: err}
	}
}

func (m inboxModel) cmdDelete(id string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return contactDeletedMsg{id: id, err: api.DeleteContact(ctx, id)}
	}
}
