// Package service contains the client-side business logic of the lawyer
// console: session lifecycle with role-gated login, the conversation list, and
// message synchronization with optimistic local echo.
package service

import (
	"context"

	"github.com/dockflow/lawyer-console/models"
)

// ClientAuthService owns the session lifecycle: credential exchange, the staff
// role gate, and the persisted token slot.
type ClientAuthService interface {
	// Login exchanges credentials for a session. The account role must be one
	// of lawyer, admin or owner; any other role fails with [ErrAccessDenied]
	// and nothing is persisted. On success the token is durably saved and
	// attached to all subsequent requests.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// CurrentSession returns the active session, restoring the persisted
	// token if the process was restarted. Returns [ErrNoSession] when the
	// user is logged out; the caller routes to the login flow.
	CurrentSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted token and drops the in-memory session.
	Logout(ctx context.Context) error
}

// ChatService fetches the list of support conversations visible to the
// current session.
type ChatService interface {
	// ListChats returns the conversations in the exact order the server
	// supplies them. Fails with [ErrUnauthorized] when the token is rejected,
	// which the caller must treat as a forced logout.
	ListChats(ctx context.Context) ([]models.Chat, error)
}

// MessageService keeps the per-conversation message state: the server-
// confirmed sequence plus locally pending echoes appended at the end.
type MessageService interface {
	// FetchMessages refreshes the confirmed sequence of one conversation and
	// returns the composed view (confirmed followed by pending). A zero or
	// negative chatID fails fast with [ErrInvalidChat] before any network
	// call. Pending echoes are kept, minus those the fetch confirms.
	FetchMessages(ctx context.Context, chatID int64) ([]models.Message, error)

	// SendMessage posts text to a conversation on behalf of sender. The
	// message is appended to the pending sequence immediately, before the
	// network round-trip, so the caller can render it without waiting.
	// Empty or whitespace-only text fails with [ErrEmptyText] and leaves
	// pending untouched. On transport failure the echo stays pending.
	SendMessage(ctx context.Context, chatID int64, text, sender string) (models.Message, error)

	// Messages returns the current composed view of one conversation without
	// touching the network.
	Messages(chatID int64) []models.Message

	// Reset drops all per-conversation state. Called on logout.
	Reset()
}
