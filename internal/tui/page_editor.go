package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// pageEditorModel edits one page document as indented JSON. The whole
// document is saved with the ETag it was loaded with, so a concurrent edit
// is reported instead of overwritten.
type pageEditorModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	page     models.ContentType
	etag     string
	editor   textarea.Model
	loading  bool
	saving   bool
	conflict bool
	status   string
	errMsg   string
}

func newPageEditorModel(ctx context.Context, api adapter.ServerAdapter, page models.ContentType) pageEditorModel {
	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.ShowLineNumbers = true
	editor.SetWidth(100)
	editor.SetHeight(20)
	editor.Focus()

	return pageEditorModel{
		ctx:     ctx,
		api:     api,
		page:    page,
		editor:  editor,
		loading: true,
	}
}

func (m pageEditorModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m pageEditorModel) Update(msg tea.Msg) (pageEditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setDocument(msg.doc, msg.etag)
		m.conflict = false
		m.errMsg = ""
		m.status = "Contenu chargé"
		return m, nil
	case pageSavedMsg:
		m.saving = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrPreconditionFailed) {
				m.conflict = true
				m.errMsg = "Le contenu a été modifié entre-temps. ctrl+r pour recharger (vos modifications seront perdues)"
				return m, nil
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setDocument(msg.doc, msg.etag)
		m.errMsg = ""
		m.status = "Modifications enregistrées"
		return m, nil
	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(msg.Width-8, 20))
		m.editor.SetHeight(max(msg.Height-14, 5))
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return navigateMsg{to: screenMenu} }
		case key.Matches(keyMsg, keys.reload):
			if m.loading || m.saving {
				return m, nil
			}
			m.loading = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdLoad()
		case key.Matches(keyMsg, keys.save):
			if m.loading || m.saving {
				return m, nil
			}
			doc, err := parseDocument(m.editor.Value())
			if err != nil {
				m.errMsg = "JSON invalide : " + err.Error()
				return m, nil
			}
			m.saving = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdSave(doc)
		}
	}

	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m pageEditorModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Chargement...\n")
	default:
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString("\nEnregistrement...\n")
	}
	renderFeedback(&b, m.status, m.errMsg)

	title := "PAGE : " + strings.ToUpper(pageLabels[m.page])
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s : enregistrer │ ctrl+r : recharger │ esc : retour")
}

func (m *pageEditorModel) setDocument(doc models.Document, etag string) {
	m.etag = etag
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.editor.SetValue(string(text))
}

// parseDocument accepts only a JSON object.
func parseDocument(text string) (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("un objet JSON est attendu")
	}
	return doc, nil
}

func (m pageEditorModel) cmdLoad() tea.Cmd {
	ctx, api, page := m.ctx, m.api, m.page
	return func() tea.Msg {
		doc, etag, err := api.GetPage(ctx, page)
		return pageLoadedMsg{doc: doc, etag: etag, err: err}
	}
}

func (m pageEditorModel) cmdSave(doc models.Document) tea.Cmd {
	ctx, api, page, etag := m.ctx, m.api, m.page, m.etag
	return func() tea.Msg {
		saved, newETag, err := api.SavePage(ctx, page, doc, etag)
		return pageSavedMsg{doc: saved, etag: newETag, err: err}
	}
}
