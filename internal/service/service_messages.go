package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dockflow/lawyer-console/internal/adapter"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/models"
)

// messageThread is the per-conversation synchronization state: the ordered
// server-confirmed history and the ordered local echoes awaiting confirmation.
// The composed view is always confirmed followed by pending, never interleaved.
type messageThread struct {
	confirmed []models.Message
	pending   []models.Message
}

type messageService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu      sync.RWMutex
	threads map[int64]*messageThread
}

func NewMessageService(serverAdapter adapter.ServerAdapter, log *logger.Logger) MessageService {
	return &messageService{
		adapter: serverAdapter,
		logger:  log,
		threads: make(map[int64]*messageThread),
	}
}

func (m *messageService) FetchMessages(ctx context.Context, chatID int64) ([]models.Message, error) {
	if chatID <= 0 {
		return nil, ErrInvalidChat
	}
	if m.adapter.Token() == "" {
		return nil, ErrUnauthorized
	}

	fetched, err := m.adapter.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", mapAdapterError(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	th := m.thread(chatID)
	th.confirmed = fetched
	th.pending = pruneConfirmedEchoes(th.pending, fetched)

	m.logger.Debug().
		Int64("chat_id", chatID).
		Int("confirmed", len(th.confirmed)).
		Int("pending", len(th.pending)).
		Msg("messages fetched")

	return th.composedView(), nil
}

func (m *messageService) SendMessage(ctx context.Context, chatID int64, text, sender string) (models.Message, error) {
	if chatID <= 0 {
		return models.Message{}, ErrInvalidChat
	}
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyText
	}

	// Optimistic echo: the provisional entry becomes visible before the
	// request is even issued, so typing latency never depends on the network.
	echo := models.Message{
		Sender:  sender,
		Text:    text,
		LocalID: uuid.NewString(),
	}

	m.mu.Lock()
	th := m.thread(chatID)
	th.pending = append(th.pending, echo)
	m.mu.Unlock()

	resp, err := m.adapter.SendMessage(ctx, chatID, models.SendMessageRequest{Sender: sender, Text: text})
	if err != nil {
		// The echo stays pending: the user still sees what they typed, and
		// the error tells them the delivery is unconfirmed.
		m.logger.Warn().Int64("chat_id", chatID).Err(err).Msg("send failed, echo left pending")
		return models.Message{}, fmt.Errorf("send message: %w", mapAdapterError(err))
	}

	confirmed := models.Message{
		ID:        resp.ID,
		Sender:    sender,
		Text:      text,
		CreatedAt: resp.CreatedAt,
		LocalID:   echo.LocalID,
	}

	// Stamp the provisional entry with the server identity so the next fetch
	// can drop it instead of duplicating the message.
	m.mu.Lock()
	th = m.thread(chatID)
	for i := range th.pending {
		if th.pending[i].LocalID == echo.LocalID {
			th.pending[i] = confirmed
			break
		}
	}
	m.mu.Unlock()

	return confirmed, nil
}

func (m *messageService) Messages(chatID int64) []models.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	th, ok := m.threads[chatID]
	if !ok {
		return nil
	}
	return th.composedView()
}

func (m *messageService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threads = make(map[int64]*messageThread)
}

// thread returns the state of one conversation, creating it on first use.
// Caller must hold m.mu.
func (m *messageService) thread(chatID int64) *messageThread {
	th, ok := m.threads[chatID]
	if !ok {
		th = &messageThread{}
		m.threads[chatID] = th
	}
	return th
}

func (th *messageThread) composedView() []models.Message {
	view := make([]models.Message, 0, len(th.confirmed)+len(th.pending))
	view = append(view, th.confirmed...)
	view = append(view, th.pending...)
	return view
}

// pruneConfirmedEchoes drops pending entries the fetched history already
// contains: by server id for echoes whose send was acknowledged, and by
// sender+text for echoes whose acknowledgement was lost in transit. Order of
// the survivors is preserved.
func pruneConfirmedEchoes(pending, fetched []models.Message) []models.Message {
	if len(pending) == 0 {
		return pending
	}

	byID := make(map[int64]struct{}, len(fetched))
	type senderText struct{ sender, text string }
	byContent := make(map[senderText]int, len(fetched))
	for _, msg := range fetched {
		if msg.ID != 0 {
			byID[msg.ID] = struct{}{}
		}
		byContent[senderText{msg.Sender, msg.Text}]++
	}

	kept := pending[:0:0]
	for _, echo := range pending {
		if _, ok := byID[echo.ID]; ok && echo.ID != 0 {
			continue
		}
		key := senderText{echo.Sender, echo.Text}
		if byContent[key] > 0 {
			byContent[key]--
			continue
		}
		kept = append(kept, echo)
	}
	return kept
}
