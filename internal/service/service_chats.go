package service

import (
	"context"
	"fmt"

	"github.com/dockflow/lawyer-console/internal/adapter"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/models"
)

type chatService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewChatService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ChatService {
	return &chatService{adapter: serverAdapter, logger: log}
}

func (c *chatService) ListChats(ctx context.Context) ([]models.Chat, error) {
	if c.adapter.Token() == "" {
		return nil, ErrUnauthorized
	}

	chats, err := c.adapter.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", mapAdapterError(err))
	}

	c.logger.Debug().Int("count", len(chats)).Msg("chat list fetched")

	// server order is authoritative, no re-sorting
	return chats, nil
}
