package tui

import (
	"github.com/MKhiriev/vitrine/models"
)

type navigateMsg struct {
	to      screen
	page    models.ContentType
	records recordKind
}

type loginDoneMsg struct {
	email string
	resp  models.LoginResponse
	err   error
}

type loggedOutMsg struct {
	err error
}

type versionMsg struct {
	version string
	err     error
}

type pageLoadedMsg struct {
	doc  models.Document
	etag string
	err  error
}

type pageSavedMsg struct {
	doc  models.Document
	etag string
	err  error
}

type recordsLoadedMsg struct {
	rows []recordRow
	err  error
}

type recordDeletedMsg struct {
	id  string
	err error
}

type videoToggledMsg struct {
	video models.SectionVideo
	err   error
}

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

type contactOpenedMsg struct {
	contact models.Contact
	err     error
}

type contactRepliedMsg struct {
	contact models.Contact
	err     error
}

type contactDeletedMsg struct {
	id  string
	err error
}

// msgError returns the error carried by a command result, if any.
func msgError(msg any) error {
	switch msg := msg.(type) {
	case loggedOutMsg:
		return msg.err
	case versionMsg:
		return msg.err
	case pageLoadedMsg:
		return msg.err
	case pageSavedMsg:
		return msg.err
	case recordsLoadedMsg:
		return msg.err
	case recordDeletedMsg:
		return msg.err
	case videoToggledMsg:
		return msg.err
	case contactsLoadedMsg:
		return msg.err
	case contactOpenedMsg:
		return msg.err
	case contactRepliedMsg:
		return msg.err
	case contactDeletedMsg:
		return msg.err
	}
	return nil
}
