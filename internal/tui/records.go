package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type recordKind int

const (
	recordPublications recordKind = iota
	recordNews
	recordVideos
)

func (k recordKind) title() string {
	switch k {
	case recordNews:
		return "ACTUALITÉS ET RÉALISATIONS"
	case recordVideos:
		return "VIDÉOS DE SECTION"
	default:
		return "PUBLICATIONS"
	}
}

// recordRow is one line of a record list, whatever the record family.
type recordRow struct {
	id       string
	title    string
	detail   string
	url      string
	newsKind models.NewsKind
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// recordsModel lists publications, news records or section videos, with
// delete, toggle and copy actions.
type recordsModel struct {
	ctx  context.Context
	api  adapter.ServerAdapter
	kind recordKind

	rows       []recordRow
	idx        int
	loading    bool
	busy       bool
	confirming bool
	status     string
	errMsg     string
}

func newRecordsModel(ctx context.Context, api adapter.ServerAdapter, kind recordKind) recordsModel {
	return recordsModel{
		ctx:     ctx,
		api:     api,
		kind:    kind,
		loading: true,
	}
}

func (m recordsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m recordsModel) Update(msg tea.Msg) (recordsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.clampIndex()
		return m, nil
	case recordDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Erreur de suppression : " + humanizeError(msg.err)
			return m, nil
		}
		m.status = "Élément supprimé"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case videoToggledMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.video.Active {
			m.status = "Vidéo activée"
		} else {
			m.status = "Vidéo désactivée"
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirming = false
			row, ok := m.current()
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, m.cmdDelete(row)
		case key.Matches(keyMsg, keys.no):
			m.confirming = false
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
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok || m.busy {
			m.status = "Aucun élément"
			return m, nil
		}
		m.confirming = true
	case key.Matches(keyMsg, keys.toggle):
		row, ok := m.current()
		if m.kind != recordVideos || !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdToggle(row.id)
	case key.Matches(keyMsg, keys.copyID):
		row, ok := m.current()
		if !ok {
			m.status = "Aucun élément"
			return m, nil
		}
		m.copy(row.id, "Identifiant copié")
	case key.Matches(keyMsg, keys.copyURL):
		row, ok := m.current()
		if !ok || row.url == "" {
			m.status = "Aucune URL à copier"
			return m, nil
		}
		m.copy(row.url, "URL copiée")
	}

	return m, nil
}

func (m recordsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Chargement...\n")
	case len(m.rows) == 0:
		b.WriteString("Aucun élément\n")
	default:
		b.WriteString(fmt.Sprintf("  %-38s │ %-40s │ %s\n", "ID", "Titre", "Détail"))
		for i, row := range m.rows {
			line := fmt.Sprintf("%s %-38s │ %-40s │ %s", cursor(i == m.idx), fitText(row.id, 38), fitText(row.title, 40), row.detail)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	renderFeedback(&b, m.status, m.errMsg)

	if m.confirming {
		if row, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: valueOrDash(row.title)}.View())
		}
	}

	hotKeys := "↑/↓ : naviguer │ d : supprimer │ c : copier l'id │ u : copier l'URL │ r : actualiser │ esc : retour"
	if m.kind == recordVideos {
		hotKeys = "t : activer/désactiver │ " + hotKeys
	}
	return renderPage(m.kind.title(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m recordsModel) current() (recordRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return recordRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *recordsModel) clampIndex() {
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *recordsModel) copy(text, done string) {
	if err := writeClipboard(text); err != nil {
		m.errMsg = "Erreur de copie : " + err.Error()
		return
	}
	m.errMsg = ""
	m.status = done
}

func (m recordsModel) cmdLoad() tea.Cmd {
	ctx, api, kind := m.ctx, m.api, m.kind
	return func() tea.Msg {
		rows, err := loadRecords(ctx, api, kind)
		return recordsLoadedMsg{rows: rows, err: err}
	}
}

func (m recordsModel) cmdDelete(row recordRow) tea.Cmd {
	ctx, api, kind := m.ctx, m.api, m.kind
	return func() tea.Msg {
		var err error
		switch kind {
		case recordPublications:
			err = api.DeletePublication(ctx, row.id)
		case recordNews:
			err = api.DeleteNews(ctx, row.newsKind, row.id)
		case recordVideos:
			err = api.DeleteSectionVideo(ctx, row.id)
		}
		return recordDeletedMsg{id: row.id, err: err}
	}
}

func (m recordsModel) cmdToggle(section string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		video, err := api.ToggleSectionVideo(ctx, section)
		return videoToggledMsg{video: video, err: err}
	}
}

func loadRecords(ctx context.Context, api adapter.ServerAdapter, kind recordKind) ([]recordRow, error) {
	switch kind {
	case recordNews:
		doc, err := api.ListNews(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]recordRow, 0, len(doc.News)+len(doc.Realisations))
		for _, n := range doc.News {
			rows = append(rows, recordRow{
				id:       n.ID,
				title:    n.Title,
				detail:   "actualité · " + n.Date,
				url:      firstNonEmpty(n.ImageURL, n.VideoURL),
				newsKind: models.KindNews,
			})
		}
		for _, r := range doc.Realisations {
			rows = append(rows, recordRow{
				id:       r.ID,
				title:    r.Title,
				detail:   "réalisation · " + r.Date,
				url:      firstNonEmpty(r.ImageURL, r.VideoURL),
				newsKind: models.KindRealisation,
			})
		}
		return rows, nil
	case recordVideos:
		videos, err := api.ListSectionVideos(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]recordRow, 0, len(videos))
		for _, v := range videos {
			state := "inactive"
			if v.Active {
				state = "active"
			}
			rows = append(rows, recordRow{
				id:     v.Section,
				title:  v.Title,
				detail: state,
				url:    firstNonEmpty(v.VideoURL, v.VideoPath),
			})
		}
		return rows, nil
	default:
		publications, err := api.ListPublications(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]recordRow, 0, len(publications))
		for _, p := range publications {
			rows = append(rows, recordRow{
				id:     p.ID,
				title:  p.Title,
				detail: fmt.Sprintf("%s · %d téléchargement(s)", p.Date, p.DownloadCount),
				url:    firstNonEmpty(p.FileURL, p.VideoURL, p.PodcastURL),
			})
		}
		return rows, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
