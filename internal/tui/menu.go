package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/vitrine/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuEntry struct {
	label   string
	target  screen
	page    models.ContentType
	records recordKind
}

var pageLabels = map[models.ContentType]string{
	models.Homepage:      "Page d'accueil",
	models.About:         "À propos",
	models.Values:        "Valeurs",
	models.Expertise:     "Expertise",
	models.KitEntreprise: "Kit entreprise",
	models.Settings:      "Paramètres du site",
}

type menuModel struct {
	entries []menuEntry
	idx     int
	email   string
}

func newMenuModel(email string) menuModel {
	entries := make([]menuEntry, 0, len(models.PageTypes)+5)
	for _, t := range models.PageTypes {
		entries = append(entries, menuEntry{label: pageLabels[t], target: screenPageEditor, page: t})
	}
	entries = append(entries,
		menuEntry{label: "Publications", target: screenRecords, records: recordPublications},
		menuEntry{label: "Actualités et réalisations", target: screenRecords, records: recordNews},
		menuEntry{label: "Vidéos de section", target: screenRecords, records: recordVideos},
		menuEntry{label: "Messages de contact", target: screenInbox},
		menuEntry{label: "Déconnexion", target: screenLogin},
	)
	return menuModel{entries: entries, email: email}
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry := m.entries[m.idx]
		return m, func() tea.Msg {
			return navigateMsg{to: entry.target, page: entry.page, records: entry.records}
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	numWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.entries))) + 2

	if m.email != "" {
		b.WriteString("Connecté : ")
		b.WriteString(m.email)
		b.WriteString("\n\n")
	}

	for i, entry := range m.entries {
		line := fmt.Sprintf("%-*s │ %s", numWidth, fmt.Sprintf("%s %d", cursor(i == m.idx), i+1), entry.label)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("ADMINISTRATION DU SITE", strings.TrimRight(b.String(), "\n"), "enter : ouvrir │ ↑/↓ : naviguer │ v : version")
}
