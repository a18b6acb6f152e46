package service

import (
	"github.com/dockflow/lawyer-console/internal/adapter"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/internal/store"
)

// ClientServices bundles the business services consumed by the presentation
// layer.
type ClientServices struct {
	AuthService    ClientAuthService
	ChatService    ChatService
	MessageService MessageService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(sessions, serverAdapter, log),
		ChatService:    NewChatService(serverAdapter, log),
		MessageService: NewMessageService(serverAdapter, log),
	}
}
