package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenPageEditor
	screenRecords
	screenInbox
	screenBuildInfo
)

// appModel is the root model. It owns the current screen and routes
// messages to the matching sub-model; navigation and session handling
// live here so sub-models stay unaware of each other.
type appModel struct {
	ctx   context.Context
	api   adapter.ServerAdapter
	build models.AppBuildInfo

	screen        screen
	previous      screen
	login         loginModel
	menu          menuModel
	editor        pageEditorModel
	records       recordsModel
	inbox         inboxModel
	email         string
	serverVersion string
	size          tea.WindowSizeMsg
}

func newAppModel(ctx context.Context, api adapter.ServerAdapter, build models.AppBuildInfo) appModel {
	return appModel{
		ctx:    ctx,
		api:    api,
		build:  build,
		screen: screenLogin,
		login:  newLoginModel(ctx, api),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if err := msgError(msg); err != nil && errors.Is(err, adapter.ErrUnauthorized) {
		if _, isLogout := msg.(loggedOutMsg); !isLogout {
			return m.toLogin("Session expirée, veuillez vous reconnecter"), nil
		}
	}

	switch msg := msg.(type) {
	case loginDoneMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if msg.err != nil {
			return m, cmd
		}
		m.email = msg.email
		m.menu = newMenuModel(msg.email)
		m.screen = screenMenu
		return m, m.cmdVersion()
	case loggedOutMsg:
		return m.toLogin(""), nil
	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case navigateMsg:
		return m.navigate(msg)
	case tea.WindowSizeMsg:
		m.size = msg
		if m.screen == screenPageEditor {
			m.editor, _ = m.editor.Update(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
	case screenMenu:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.info) {
			m.previous = m.screen
			m.screen = screenBuildInfo
			return m, nil
		}
		m.menu, cmd = m.menu.Update(msg)
	case screenPageEditor:
		m.editor, cmd = m.editor.Update(msg)
	case screenRecords:
		m.records, cmd = m.records.Update(msg)
	case screenInbox:
		m.inbox, cmd = m.inbox.Update(msg)
	case screenBuildInfo:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.screen = m.previous
		}
	}
	return m, cmd
}

func (m appModel) View() string {
	switch m.screen {
	case screenMenu:
		return m.menu.View()
	case screenPageEditor:
		return m.editor.View()
	case screenRecords:
		return m.records.View()
	case screenInbox:
		return m.inbox.View()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.build, m.serverVersion)
	default:
		return m.login.View()
	}
}

func (m appModel) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.to {
	case screenLogin:
		// Leaving through the menu is a logout.
		return m, m.cmdLogout()
	case screenMenu:
		m.screen = screenMenu
		return m, nil
	case screenPageEditor:
		m.editor = newPageEditorModel(m.ctx, m.api, msg.page)
		if m.size.Width > 0 {
			m.editor, _ = m.editor.Update(m.size)
		}
		m.screen = screenPageEditor
		return m, m.editor.Init()
	case screenRecords:
		m.records = newRecordsModel(m.ctx, m.api, msg.records)
		m.screen = screenRecords
		return m, m.records.Init()
	case screenInbox:
		m.inbox = newInboxModel(m.ctx, m.api)
		m.screen = screenInbox
		return m, m.inbox.Init()
	}
	return m, nil
}

func (m appModel) toLogin(notice string) appModel {
	m.login = newLoginModel(m.ctx, m.api)
	m.login.notice = notice
	m.email = ""
	m.screen = screenLogin
	return m
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return loggedOutMsg{err: api.Logout(ctx)}
	}
}

func (m appModel) cmdVersion() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		version, err := api.GetVersion(ctx)
		return versionMsg{version: version, err: err}
	}
}
