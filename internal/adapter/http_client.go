package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/dockflow/lawyer-console/internal/config"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking JSON over HTTP
// against the DockFlow chat service described by cfg.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("decode login response: empty token")
	}

	h.logger.Debug().Int64("user_id", lr.User.ID).Str("role", string(lr.User.Role)).Msg("login accepted by server")
	return lr, nil
}

func (h *httpServerAdapter) ListChats(ctx context.Context) ([]models.Chat, error) {
	resp, err := h.authedRequest(ctx).Get("/api/chats")
	if err != nil {
		return nil, fmt.Errorf("list chats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var chats []models.Chat
	if err = json.Unmarshal(resp.Body(), &chats); err != nil {
		return nil, fmt.Errorf("decode chats response: %w", err)
	}

	return chats, nil
}

func (h *httpServerAdapter) ListMessages(ctx context.Context, chatID int64) ([]models.Message, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/chats/%d/messages", chatID))
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return messages, nil
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, chatID int64, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/api/chats/%d/messages", chatID))
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendMessageResponse{}, err
	}

	var sr models.SendMessageResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("decode send message response: %w", err)
	}

	return sr, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
