package adapter

import (
	"context"

	"github.com/dockflow/lawyer-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the DockFlow
// chat service. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login, or with an empty string to drop the credential.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a bearer token and the user record it
	// was issued for. The adapter does NOT store the token itself: the auth
	// service decides whether the account passes the role gate before the
	// credential may be kept.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// ListChats fetches the conversations visible to the current token, in
	// the exact order the server supplies them.
	ListChats(ctx context.Context) ([]models.Chat, error)

	// ListMessages fetches the full message history of one conversation, in
	// server order.
	ListMessages(ctx context.Context, chatID int64) ([]models.Message, error)

	// SendMessage posts a new message to a conversation and returns the
	// identifier and timestamp the server assigned to it.
	SendMessage(ctx context.Context, chatID int64, req models.SendMessageRequest) (models.SendMessageResponse, error)
}
