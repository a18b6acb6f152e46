package service

import "errors"

var (
	// ErrInvalidCredentials indicates the server rejected the email/password
	// pair. The user must re-enter credentials; never retried automatically.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccessDenied indicates a successful authentication for an account
	// whose role is outside {lawyer, admin, owner}. The token is discarded.
	ErrAccessDenied = errors.New("access denied: staff role required")

	// ErrUnauthorized indicates the stored token was rejected by the server.
	// The caller must clear the session and return to the login flow.
	ErrUnauthorized = errors.New("session token rejected")

	// ErrNoSession indicates no token is persisted: the user is logged out.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidChat indicates a missing or non-positive chat identifier.
	// Raised before any network call.
	ErrInvalidChat = errors.New("invalid chat id")

	// ErrEmptyText indicates an empty or whitespace-only message body.
	// Raised before any network call.
	ErrEmptyText = errors.New("message text is empty")
)
