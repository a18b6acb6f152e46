package tui

import (
	"github.com/dockflow/lawyer-console/models"
)

type loginDoneMsg struct {
	session models.Session
	err     error
}

type chatsLoadedMsg struct {
	chats []models.Chat
	err   error
}

type messagesLoadedMsg struct {
	chatID int64
	items  []models.Message
	err    error
}

type messageSentMsg struct {
	chatID int64
	items  []models.Message
	err    error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
